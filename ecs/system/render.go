package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const cameraFollow = 0.15

// RenderSystem draws the world with a camera centered on the player. World
// units are scaled by PixelsPerUnit and Y is flipped for the screen.
type RenderSystem struct {
	PixelsPerUnit float64
	ShowHUD       bool

	face       text.Face
	camX, camY float64
	camReady   bool
}

func NewRenderSystem(pixelsPerUnit float64) *RenderSystem {
	return &RenderSystem{
		PixelsPerUnit: pixelsPerUnit,
		ShowHUD:       true,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)

	player, hasPlayer := w.First(component.PlayerComponent.Kind().ID(), component.TransformComponent.Kind().ID())
	if hasPlayer {
		t, _ := ecs.Get(w, player, component.TransformComponent)
		if !r.camReady {
			r.camX, r.camY, r.camReady = t.X, t.Y, true
		}
		r.camX = common.Lerp(r.camX, t.X, cameraFollow)
		r.camY = common.Lerp(r.camY, t.Y, cameraFollow)
	}

	ecs.ForEach(w, component.SolidComponent, func(_ ecs.Entity, s *component.Solid) {
		r.fillBox(screen, s.X, s.Y, s.W, s.H, colornames.Slategray)
	})
	ecs.ForEach(w, component.SignComponent, func(_ ecs.Entity, s *component.Sign) {
		r.fillBox(screen, s.X, s.Y, s.W, s.H, colornames.Goldenrod)
	})

	for _, e := range w.Query(component.SpriteComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		r.drawSprite(screen, t, sprite)
	}

	if r.ShowHUD && hasPlayer {
		r.drawHUD(w, screen, player)
	}
}

func (r *RenderSystem) toScreen(screen *ebiten.Image, x, y float64) (float32, float32) {
	b := screen.Bounds()
	sx := (x-r.camX)*r.PixelsPerUnit + float64(b.Dx())/2
	sy := float64(b.Dy())/2 - (y-r.camY)*r.PixelsPerUnit
	return float32(sx), float32(sy)
}

// fillBox draws a box given by its bottom-left corner in world units.
func (r *RenderSystem) fillBox(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	sx, sy := r.toScreen(screen, x, y+h)
	ppu := float32(r.PixelsPerUnit)
	vector.DrawFilledRect(screen, sx, sy, float32(w)*ppu, float32(h)*ppu, clr, false)
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, t *component.Transform, s *component.Sprite) {
	clr := s.Color
	if clr == nil {
		clr = colornames.Tomato
	}
	left, bottom := t.X-s.Width/2, t.Y-s.Height/2
	r.fillBox(screen, left, bottom, s.Width, s.Height, clr)

	// the eye marks the facing side
	eye := s.Width / 4
	eyeX := t.X + s.Width/4 - eye/2
	if s.FacingLeft {
		eyeX = t.X - s.Width/4 - eye/2
	}
	r.fillBox(screen, eyeX, t.Y+s.Height/4-eye/2, eye, eye, colornames.White)
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image, player ecs.Entity) {
	lines := []string{fmt.Sprintf("FPS %.0f", ebiten.ActualFPS())}
	if mover, ok := ecs.Get(w, player, component.MoverComponent); ok && mover.Motion != nil {
		s := mover.Motion.State()
		lines = append(lines,
			fmt.Sprintf("dir %s axis %+d", s.Direction, s.Axis),
			fmt.Sprintf("speed %+.3f acc %.3f/%.2f", s.Speed, s.Acceleration, s.MaxAcceleration),
			fmt.Sprintf("grounded %v jumping %v t=%.2f", s.Grounded, s.Jumping, s.JumpTime),
			fmt.Sprintf("vy %+.2f wall %v long fall %v", mover.Motion.VerticalVelocity(), s.StuckInWall, s.LongFall),
		)
	}
	if p, ok := ecs.Get(w, player, component.PlayerComponent); ok && p.Interactor != nil && p.Interactor.Touching() {
		lines = append(lines, "[E] read sign")
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*16))
		op.ColorScale.ScaleWithColor(colornames.White)
		text.Draw(screen, line, r.face, op)
	}
}
