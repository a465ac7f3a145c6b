// preview loops one animation clip from the asset directory using the frame
// timing in tuning.yaml, for checking sprite sheets without starting a level.
package main

import (
	"fmt"
	"image/color"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"

	"github.com/milk9111/shifty/assets"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/prefabs"
)

const previewSize = 512

type clip struct {
	sheet string
	name  string
	spec  prefabs.ClipSpec
}

func clips(a prefabs.AnimationSpec) map[string]clip {
	return map[string]clip{
		"player_idle":       {"player", "idle", a.PlayerIdle},
		"player_run":        {"player", "run", a.PlayerRun},
		"player_jump":       {"player", "jump", a.PlayerJump},
		"player_jump_shoot": {"player", "jump_shoot", a.PlayerJumpShoot},
		"player_shoot":      {"player", "shoot", a.PlayerShoot},
		"player_run_shoot":  {"player", "run_shoot", a.PlayerRunShoot},
		"player_slide":      {"player", "slide", a.PlayerSlide},
		"zombie_idle":       {"zombie", "idle", a.ZombieIdle},
		"zombie_walk":       {"zombie", "walk", a.ZombieWalk},
		"zombie_attack":     {"zombie", "attack", a.ZombieAttack},
		"bullet_spin":       {"player", "bullet", a.BulletSpin},
	}
}

type previewGame struct {
	library *assets.Library
	clip    clip
	anim    component.Animation
	start   time.Time
	scale   float64
}

func (g *previewGame) Update() error {
	now := time.Since(g.start).Milliseconds()
	g.anim.Step(now, g.clip.spec.Interval, g.clip.name, g.clip.spec.Frames)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{A: 0xff})
	frame := fmt.Sprintf("%s_%d", g.clip.name, g.anim.Frame)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s/%s", g.clip.sheet, frame))

	img := g.library.Frame(g.clip.sheet, frame)
	if img == nil {
		return
	}
	fw := float64(img.Bounds().Dx()) * g.scale
	fh := float64(img.Bounds().Dy()) * g.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((previewSize-fw)/2, (previewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

var (
	flagAssets string
	flagScale  float64
)

var rootCmd = &cobra.Command{
	Use:   "preview <clip>",
	Short: "Loop an animation clip",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding sprites")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 2, "Draw scale")
}

func runPreview(cmd *cobra.Command, args []string) error {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}
	all := clips(tuning.Animation)
	c, ok := all[args[0]]
	if !ok {
		names := make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
		slices.Sort(names)
		return fmt.Errorf("unknown clip %q, want one of: %s", args[0], strings.Join(names, ", "))
	}
	if c.spec.Frames <= 0 {
		log.Warn("clip has no frames", "clip", args[0])
	}

	g := &previewGame{
		library: assets.NewLibrary(os.DirFS(flagAssets)),
		clip:    c,
		anim:    component.Animation{Name: c.name, Frames: c.spec.Frames},
		start:   time.Now(),
		scale:   flagScale,
	}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("preview " + args[0])
	return ebiten.RunGame(g)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
