package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Audio plays clips from sounds/ inside its file system. Every Play starts
// a new channel; finished channels are dropped lazily.
type Audio struct {
	ctx     *audio.Context
	fsys    fs.FS
	clips   map[string][]byte
	players map[string][]*audio.Player
}

func NewAudio(fsys fs.FS) *Audio {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Audio{
		ctx:     ctx,
		fsys:    fsys,
		clips:   make(map[string][]byte),
		players: make(map[string][]*audio.Player),
	}
}

// clip decodes name once. Missing clips are remembered as nil.
func (a *Audio) clip(name string) []byte {
	if pcm, ok := a.clips[name]; ok {
		return pcm
	}
	pcm, err := a.decode(name)
	if err != nil {
		log.Debug("sound unavailable", "name", name, "error", err)
	}
	a.clips[name] = pcm
	return pcm
}

func (a *Audio) decode(name string) ([]byte, error) {
	if a.fsys == nil {
		return nil, fs.ErrNotExist
	}
	for _, ext := range []string{".wav", ".ogg"} {
		b, err := fs.ReadFile(a.fsys, path.Join("sounds", name+ext))
		if err != nil {
			continue
		}
		var stream io.Reader
		switch ext {
		case ".wav":
			stream, err = wav.DecodeWithSampleRate(a.ctx.SampleRate(), bytes.NewReader(b))
		default:
			stream, err = vorbis.DecodeWithSampleRate(a.ctx.SampleRate(), bytes.NewReader(b))
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s%s: %w", name, ext, err)
		}
		return io.ReadAll(stream)
	}
	return nil, fs.ErrNotExist
}

func (a *Audio) live(name string) []*audio.Player {
	kept := a.players[name][:0]
	for _, p := range a.players[name] {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		p.Close()
	}
	a.players[name] = kept
	return kept
}

func (a *Audio) Play(name string, volume float64) {
	pcm := a.clip(name)
	if pcm == nil {
		return
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()
	a.players[name] = append(a.live(name), p)
}

func (a *Audio) Stop(name string) {
	for _, p := range a.players[name] {
		p.Pause()
		p.Close()
	}
	delete(a.players, name)
}

func (a *Audio) IsPlaying(name string) bool {
	return len(a.live(name)) > 0
}

func (a *Audio) Channels(name string) int {
	return len(a.live(name))
}
