package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/shifty/common"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"golang.org/x/image/colornames"
)

// FrameSource fetches a named frame from a sprite sheet. It returns nil for
// frames it does not have.
type FrameSource interface {
	Frame(sheet, name string) *ebiten.Image
}

// RenderSystem draws every sprite by layer, then the HUD. Sprites whose frame
// is missing are drawn as flat boxes so levels stay playable without art.
type RenderSystem struct {
	Frames FrameSource
	Debug  bool
}

func NewRenderSystem(frames FrameSource) *RenderSystem {
	return &RenderSystem{Frames: frames}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Darkslategray)

	camX, camY := 0.0, 0.0
	if e, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
			camX, camY = cam.OffsetX, cam.OffsetY
		}
	}

	entities := ecs.Query(w, component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		return li < lj
	})

	for _, e := range entities {
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		p, ok := placedOf(w, e)
		if !ok || s == nil || s.Hidden {
			continue
		}
		x, y := p.Rect.X+camX, p.Rect.Y+camY

		var img *ebiten.Image
		if r.Frames != nil {
			img = r.Frames.Frame(s.Sheet, s.Frame)
		}
		if img == nil {
			vector.FillRect(screen, float32(x), float32(y), float32(p.Rect.Width), float32(p.Rect.Height), placeholderColor(w, e), false)
			continue
		}

		op := &ebiten.DrawImageOptions{}
		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		if s.FlipX {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(iw, 0)
		}
		if saw, ok := ecs.Get(w, e, component.SawComponent.Kind()); ok {
			op.GeoM.Translate(-iw/2, -ih/2)
			op.GeoM.Rotate(saw.Rotation * math.Pi / 180)
			op.GeoM.Translate(iw/2, ih/2)
		}
		// Art is anchored on the collider's bottom center.
		op.GeoM.Translate(x+(p.Rect.Width-iw)/2, y+p.Rect.Height-ih)
		screen.DrawImage(img, op)
	}

	if r.Debug {
		r.drawColliders(w, screen, camX, camY)
	}
	drawHUD(w, screen)
}

func placeholderColor(w *ecs.World, e ecs.Entity) color.Color {
	switch {
	case ecs.Has(w, e, component.PlayerComponent.Kind()):
		return colornames.Crimson
	case ecs.Has(w, e, component.ZombieComponent.Kind()):
		return colornames.Olivedrab
	case ecs.Has(w, e, component.BulletComponent.Kind()), ecs.Has(w, e, component.LaserBulletComponent.Kind()):
		return colornames.Gold
	case ecs.Has(w, e, component.SawComponent.Kind()):
		return colornames.Silver
	case ecs.Has(w, e, component.LaserBeamComponent.Kind()):
		return colornames.Orangered
	case ecs.Has(w, e, component.ItemComponent.Kind()):
		return colornames.Deepskyblue
	case ecs.Has(w, e, component.DoorComponent.Kind()), ecs.Has(w, e, component.DoorSwitchComponent.Kind()), ecs.Has(w, e, component.LeverComponent.Kind()):
		return colornames.Sandybrown
	case ecs.Has(w, e, component.EffectComponent.Kind()):
		return colornames.Orange
	default:
		return colornames.Lightgrey
	}
}

func (r *RenderSystem) drawColliders(w *ecs.World, screen *ebiten.Image, camX, camY float64) {
	ecs.ForEach(w, component.ColliderComponent.Kind(), func(e ecs.Entity, _ *component.Collider) {
		p, ok := placedOf(w, e)
		if !ok {
			return
		}
		clr := color.RGBA{R: 255, A: 200}
		if ecs.Has(w, e, component.ObstacleComponent.Kind()) {
			clr = color.RGBA{G: 255, A: 200}
		}
		vector.StrokeRect(screen, float32(p.Rect.X+camX), float32(p.Rect.Y+camY), float32(p.Rect.Width), float32(p.Rect.Height), 1, clr, false)
	})
	if ref, ok := playerOf(w); ok {
		text := fmt.Sprintf("Pos: %.1f, %.1f\nVel: %.2f, %.2f\nGround: %v\nCooldown: %.1f",
			ref.Body.Pos.X, ref.Body.Pos.Y, ref.Body.Vel.X, ref.Body.Vel.Y, ref.Player.OnGround, ref.Player.GunCooldown)
		ebitenutil.DebugPrintAt(screen, text, 10, 90)
	}
}

const (
	hudPadding  = 12.0
	gunBarWidth = 200.0
	gunBarH     = 10.0
)

func drawHUD(w *ecs.World, screen *ebiten.Image) {
	session := sessionOf(w)
	if session == nil {
		return
	}

	score := session.FinalScore
	if ref, ok := playerOf(w); ok {
		score = ref.Player.Score
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Health: %d", max(ref.Player.Health, 0)), hudPadding, hudPadding)

		fill := gunBarWidth * common.Clamp(ref.Player.GunCooldown/100, 0, 1)
		vector.FillRect(screen, hudPadding, 34, gunBarWidth, gunBarH, colornames.Dimgray, false)
		vector.FillRect(screen, hudPadding, 34, float32(fill), gunBarH, colornames.Gold, false)
		if ref.Player.HasKey {
			ebitenutil.DebugPrintAt(screen, "Key", hudPadding, 50)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", score), common.ScreenWidth/2-40, hudPadding)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %d", session.TimerSeconds), common.ScreenWidth-120, hudPadding)

	if session.GameOver {
		msg := fmt.Sprintf("GAME OVER\nScore: %d\nBest: %d", session.FinalScore, session.HighScore)
		switch {
		case session.TimeUp:
			msg = "TIME UP\n" + msg
		case session.DeadCause != "":
			msg += "\nKilled by " + session.DeadCause
		}
		ebitenutil.DebugPrintAt(screen, msg, common.ScreenWidth/2-60, common.ScreenHeight/2-30)
	}
}
