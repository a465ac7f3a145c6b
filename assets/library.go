// Package assets resolves sprite frames, collision masks and sound clips
// from a file system laid out as <sheet>/<frame>.png and sounds/<name>.wav
// (or .ogg). Anything missing resolves to nil so the game still runs
// without art.
package assets

import (
	"bytes"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shifty/ecs/component"
)

// Library caches frames and masks by sheet and frame name, misses included.
type Library struct {
	fsys   fs.FS
	images map[string]image.Image
	frames map[string]*ebiten.Image
	masks  map[string]*component.Mask
}

func NewLibrary(fsys fs.FS) *Library {
	return &Library{
		fsys:   fsys,
		images: make(map[string]image.Image),
		frames: make(map[string]*ebiten.Image),
		masks:  make(map[string]*component.Mask),
	}
}

func framePath(sheet, name string) string {
	return path.Join(cleanAssetPath(sheet), name+".png")
}

func (l *Library) decode(p string) image.Image {
	if img, ok := l.images[p]; ok {
		return img
	}
	var img image.Image
	if l.fsys != nil {
		if b, err := fs.ReadFile(l.fsys, p); err == nil {
			decoded, _, err := image.Decode(bytes.NewReader(b))
			if err != nil {
				log.Warn("bad image asset", "path", p, "error", err)
			} else {
				img = decoded
			}
		}
	}
	l.images[p] = img
	return img
}

// Frame returns the named frame or nil.
func (l *Library) Frame(sheet, name string) *ebiten.Image {
	if l == nil {
		return nil
	}
	p := framePath(sheet, name)
	if img, ok := l.frames[p]; ok {
		return img
	}
	var frame *ebiten.Image
	if src := l.decode(p); src != nil {
		frame = ebiten.NewImageFromImage(src)
	}
	l.frames[p] = frame
	return frame
}

// Mask builds a pixel mask from the frame's alpha channel, or nil.
func (l *Library) Mask(sheet, frame string) *component.Mask {
	if l == nil {
		return nil
	}
	p := framePath(sheet, frame)
	if m, ok := l.masks[p]; ok {
		return m
	}
	m := component.NewMaskFromImage(l.decode(p))
	l.masks[p] = m
	return m
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if filepath.IsAbs(p) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return path.Base(s)
	}
	return strings.TrimPrefix(s, "assets/")
}
