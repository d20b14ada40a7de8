package main

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"gallop/internal/game"
)

// Particle is a fading dust puff kicked up behind the horse.
type Particle struct {
	X, Y     float64
	Radius   float64
	Velocity float64
	Opacity  float64
}

// updateParticles spawns dust at the hooves while the horse moves fast
// on the ground and ages the existing puffs.
func (g *App) updateParticles(s *game.Session, dt float64) {
	if s.Motion.Speed > 100 && s.Progress() < 1 {
		b := s.HorseBounds()
		g.particles = append(g.particles, Particle{
			X:        b.X + rand.Float64()*20,
			Y:        b.Y + b.H - 6,
			Radius:   6 + rand.Float64()*6,
			Velocity: 120 + rand.Float64()*40,
			Opacity:  1.0,
		})
	}

	for i := 0; i < len(g.particles); i++ {
		p := &g.particles[i]
		p.X -= p.Velocity * dt
		p.Opacity -= 1.5 * dt
		p.Radius *= 1 + 0.4*dt

		if p.Opacity <= 0 {
			g.particles = append(g.particles[:i], g.particles[i+1:]...)
			i--
		}
	}
}

func (g *App) drawParticles(screen *ebiten.Image) {
	for _, p := range g.particles {
		alpha := uint8(p.Opacity * 255)
		drawCircle(screen, p.X, p.Y, p.Radius, color.RGBA{214, 196, 158, alpha})
	}
}

func drawCircle(dst *ebiten.Image, x, y, r float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	scale := r / float64(dustImg.Bounds().Dx()/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-r, y-r)
	op.ColorM.ScaleWithColor(clr)
	dst.DrawImage(dustImg, op)
}
