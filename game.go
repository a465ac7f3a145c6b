package main

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/shifty/assets"
	"github.com/milk9111/shifty/common"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/ecs/entity"
	"github.com/milk9111/shifty/ecs/system"
	"github.com/milk9111/shifty/levels"
	"github.com/milk9111/shifty/prefabs"
	"github.com/milk9111/shifty/storage"
)

// Config is everything the launcher resolved before the window opens.
type Config struct {
	Level    string
	Seed     int64
	Timer    int
	Debug    bool
	Tuning   *prefabs.Tuning
	Store    *storage.Store
	Settings *storage.SettingsStore
	Assets   fs.FS
	Watcher  *prefabs.Watcher
}

type Game struct {
	cfg      Config
	tuning   *prefabs.Tuning
	library  *assets.Library
	audio    system.AudioPlayer
	render   *system.RenderSystem
	bindings system.KeyBindings

	world     *ecs.World
	level     string
	run       *storage.Run
	highScore int
	loads     int64

	clockMs     float64
	paused      bool
	pauseUI     *ebitenui.UI
	tuningDirty bool
	quit        bool
}

func NewGame(cfg Config) (*Game, error) {
	if cfg.Settings == nil {
		cfg.Settings = storage.NewSettingsStore(nil)
	}
	g := &Game{
		cfg:      cfg,
		tuning:   cfg.Tuning,
		library:  assets.NewLibrary(cfg.Assets),
		audio:    assets.NewAudio(cfg.Assets),
		bindings: cfg.Settings.Bindings(system.DefaultKeyBindings()),
	}
	g.render = system.NewRenderSystem(g.library)
	g.render.Debug = cfg.Debug
	g.pauseUI = NewPauseUI(g)

	if cfg.Store != nil {
		best, err := cfg.Store.HighScore()
		if err != nil {
			log.Warn("high score unavailable", "error", err)
		}
		g.highScore = best
	}

	if err := g.startRun(); err != nil {
		return nil, err
	}
	return g, nil
}

// startRun begins a fresh run at the configured level.
func (g *Game) startRun() error {
	level := g.cfg.Level
	if level == "" {
		level = levels.Order[0]
	}
	if g.cfg.Store != nil {
		g.run = g.cfg.Store.NewRun(level)
	}
	return g.loadLevel(level, nil)
}

func (g *Game) now() int64 {
	return int64(g.clockMs)
}

func (g *Game) loadLevel(name string, carry *entity.Carry) error {
	if g.tuningDirty {
		g.reloadTuning()
	}
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return err
	}
	b, err := entity.NewBuilder(g.tuning)
	if err != nil {
		return err
	}
	b.Masks = g.library
	b.GunUpgrade = g.cfg.Settings.Settings().GunUpgrade

	g.loads++
	w := ecs.NewSeededWorld(g.cfg.Seed + g.loads)
	if _, err := b.LoadLevelToWorld(w, lvl, entity.LevelOptions{
		Carry:        carry,
		HighScore:    g.highScore,
		TimerSeconds: g.cfg.Timer,
		NowMillis:    g.now(),
	}); err != nil {
		return err
	}

	deps := system.Deps{
		Builder:  b,
		Bindings: g.bindings,
		Audio:    g.audio,
		Sounds:   g.cfg.Settings,
	}
	if g.run != nil {
		g.run.Level = name
		deps.Scores = g.run
	}
	system.Register(w, deps)

	g.world = w
	g.level = name
	log.Info("level started", "level", name, "carry", carry != nil)
	return nil
}

func (g *Game) reloadTuning() {
	g.tuningDirty = false
	t, err := prefabs.LoadTuning()
	if err != nil {
		log.Error("tuning reload failed, keeping the previous values", "error", err)
		return
	}
	g.tuning = t
	log.Info("tuning reloaded")
}

func (g *Game) session() *component.Session {
	e, ok := ecs.First(g.world, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(g.world, e, component.SessionComponent.Kind())
	return s
}

func (g *Game) player() *component.Player {
	e, ok := ecs.First(g.world, component.PlayerComponent.Kind())
	if !ok {
		return nil
	}
	p, _ := ecs.Get(g.world, e, component.PlayerComponent.Kind())
	return p
}

func (g *Game) drainWatcher() {
	if g.cfg.Watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.cfg.Watcher.Changes:
			if !ok {
				g.cfg.Watcher = nil
				return
			}
			log.Debug("prefab changed, applies on next level", "file", change.Path)
			if change.Tuning {
				g.tuningDirty = true
			}
			if change.Script {
				g.reloadScripts(change.Path)
			}
		case err, ok := <-g.cfg.Watcher.Errors:
			if !ok {
				g.cfg.Watcher = nil
				return
			}
			log.Warn("prefab watcher", "error", err)
		default:
			return
		}
	}
}

type scriptReloader interface {
	ReloadScript(src []byte) error
}

// reloadScripts hands the changed script to the running systems, so zombies
// pick up new behavior mid-level.
func (g *Game) reloadScripts(path string) {
	src, err := prefabs.LoadScript(filepath.Base(path))
	if err != nil {
		log.Error("script reload failed", "file", path, "error", err)
		return
	}
	for _, s := range g.world.Systems() {
		r, ok := s.(scriptReloader)
		if !ok {
			continue
		}
		if err := r.ReloadScript(src); err != nil {
			log.Error("script rejected, keeping the previous one", "file", path, "error", err)
			continue
		}
		log.Info("script reloaded", "file", path)
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if s := g.session(); s != nil {
		s.Paused = paused
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainWatcher()

	session := g.session()
	if session == nil {
		return fmt.Errorf("level %s has no session", g.level)
	}

	if inpututil.IsKeyJustPressed(g.bindings.Pause) && !session.GameOver {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if session.GameOver {
		g.highScore = max(g.highScore, session.HighScore)
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return g.startRun()
		}
		// Effects and audio keep running behind the game over screen.
		g.step()
		return nil
	}

	g.step()

	if session.LevelUp {
		return g.advance()
	}
	return nil
}

// step advances the simulation by one tick of the fixed frame clock.
func (g *Game) step() {
	g.clockMs += 1000 / float64(ebiten.TPS())
	g.world.Step(g.now(), 1)
}

// advance carries the player into the next level, or ends the campaign
// after the last one.
func (g *Game) advance() error {
	p := g.player()
	if p == nil {
		return nil
	}
	carry := &entity.Carry{Health: p.Health, Score: p.Score}

	next, ok := levels.Next(g.level)
	if ok {
		return g.loadLevel(next, carry)
	}

	p.AddPoints(g.tuning.Points.GameCompleted)
	g.finish(p.Score)
	return nil
}

func (g *Game) finish(score int) {
	s := g.session()
	if s == nil || s.GameOver {
		return
	}
	s.GameOver = true
	s.FinalScore = score
	s.HighScore = max(s.HighScore, score)
	if !s.ScoreSaved && g.run != nil {
		s.ScoreSaved = true
		if err := g.run.SaveScore(score); err != nil {
			log.Error("save score", "score", score, "error", err)
		}
	}
	log.Info("campaign complete", "score", score)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
