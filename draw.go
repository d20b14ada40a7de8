package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"gallop/internal/game"
)

func (g *App) Draw(screen *ebiten.Image) {
	s := g.session
	progress := s.Progress()

	g.drawBackground(screen, s, progress)
	g.drawObstacles(screen, s)
	g.drawParticles(screen)
	g.drawHorse(screen, s, progress)
	g.drawHUD(screen, s)
	if g.debug {
		g.drawMeters(screen, s)
	}
}

func (g *App) drawBackground(screen *ebiten.Image, s *game.Session, progress float64) {
	// Ground layer scrolls with traveled distance; two tiles wrap.
	w := bgMeadow.Bounds().Dx()
	off := -math.Mod(s.Motion.Distance*game.PixelsPerMeter, float64(w))

	for _, x := range []float64{off, off + float64(w)} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(bgMeadow, op)
	}

	// Cross-fade into the sky as the flight transition progresses.
	if progress > 0 {
		op := &ebiten.DrawImageOptions{}
		op.ColorM.Scale(1, 1, 1, progress)
		screen.DrawImage(bgSky, op)
	}
}

func (g *App) drawObstacles(screen *ebiten.Image, s *game.Session) {
	for _, o := range s.Field.Obstacles {
		drawSprite(screen, obstacleImgs[o.Kind], o.Bounds(), 1)
	}
}

func (g *App) drawHorse(screen *ebiten.Image, s *game.Session, progress float64) {
	b := s.HorseBounds()
	if progress < 1 {
		frame := sheetFrame(horseRunSheet, int(g.runTimer)%horseRunFrames, horseRunFrames)
		drawSprite(screen, frame, b, 1-progress)
	}
	if progress > 0 {
		frame := sheetFrame(horseFlySheet, int(g.flyTimer)%horseFlyFrames, horseFlyFrames)
		drawSprite(screen, frame, b, progress)
	}
}

// drawSprite fits img into the box b with the given opacity.
func drawSprite(dst, img *ebiten.Image, b game.Rect, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.W/float64(img.Bounds().Dx()), b.H/float64(img.Bounds().Dy()))
	op.GeoM.Translate(b.X, b.Y)
	if alpha < 1 {
		op.ColorM.Scale(1, 1, 1, alpha)
	}
	dst.DrawImage(img, op)
}

func (g *App) drawHUD(screen *ebiten.Image, s *game.Session) {
	switch s.Phase {
	case game.PhaseNotStarted:
		drawCentered(screen, "GALLOP", 220)
		drawCentered(screen, "Scream to run - press Space to start", 300)
		mode := "off"
		if g.challenge {
			mode = "on"
		}
		drawCentered(screen, fmt.Sprintf("Flying challenge (C): %s", mode), 360)
		if g.micErr != nil {
			drawCentered(screen, "Microphone unavailable - press M to retry", 440)
		}

	case game.PhaseRunning:
		drawCentered(screen, fmt.Sprintf("%.1fs", s.Motion.ScreamTime), 80)
		dist := fmt.Sprintf("%.0fm", s.Motion.Distance)
		drawTextWithOutline(screen, dist, 40, game.ScreenHeight-40, color.White, color.Black)

	case game.PhasePaused:
		drawCentered(screen, "Paused - press P to resume", 300)

	case game.PhaseGameOver:
		msg := "The silence caught you"
		if s.Cause == game.OverCollision {
			msg = "You hit something!"
		}
		drawCentered(screen, msg, 240)
		drawCentered(screen, fmt.Sprintf("Scream time: %.1fs", s.Motion.ScreamTime), 320)
		drawCentered(screen, fmt.Sprintf("Best: %.1fs", g.best), 380)
		drawCentered(screen, "Press Space to run again", 460)
	}
}

func (g *App) drawMeters(screen *ebiten.Image, s *game.Session) {
	barWidth := 300.0
	barHeight := 20.0
	barX := (float64(game.ScreenWidth) - barWidth) / 2
	barY := 660.0

	ebitenutil.DrawRect(screen, barX, barY, barWidth, barHeight, color.RGBA{0, 0, 0, 180})
	fill := (barWidth - 4) * s.Volume
	ebitenutil.DrawRect(screen, barX+2, barY+2, fill, barHeight-4, color.RGBA{255, 165, 0, 255})

	// Scream threshold tick.
	tickX := barX + 2 + (barWidth-4)*game.VolumeThreshold
	ebitenutil.DrawRect(screen, tickX, barY, 2, barHeight, color.RGBA{255, 0, 0, 255})

	info := fmt.Sprintf("pitch %3.0fHz  ref %3.0fHz  speed %4.0f", s.Pitch, s.Flight.Reference, s.Motion.Speed)
	text.Draw(screen, info, myFont, int(barX), int(barY)-12, color.White)
}

func drawCentered(dst *ebiten.Image, str string, y int) {
	bounds := text.BoundString(myFont, str)
	x := (game.ScreenWidth - bounds.Dx()) / 2
	drawTextWithOutline(dst, str, x, y, color.White, color.Black)
}

func drawTextWithOutline(dst *ebiten.Image, str string, x, y int, textColor, outlineColor color.Color) {
	thickness := 3

	for dx := -thickness; dx <= thickness; dx++ {
		for dy := -thickness; dy <= thickness; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}

			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist <= float64(thickness) {
				text.Draw(dst, str, myFont, x+dx, y+dy, outlineColor)
			}
		}
	}

	text.Draw(dst, str, myFont, x, y, textColor)
}
