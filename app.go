package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gallop/internal/game"
	"gallop/internal/mic"
)

// App adapts the simulation core to ebiten's run loop. It owns the
// microphone capture, the wall clock, and the animation counters; the
// session itself stays platform-free.
type App struct {
	cal     game.Calibration
	source  game.Source
	capture *mic.Capture
	micErr  error

	session   *game.Session
	challenge bool    // read once at session start
	best      float64 // best scream-time across restarts

	lastTick     time.Time
	autoPaused   bool    // paused by focus loss, resumes on refocus
	runTimer     float64 // run animation clock, speed-scaled
	flyTimer     float64 // fly animation clock, fixed rate
	prevProgress float64
	particles    []Particle

	debug    bool
	prevKeys map[ebiten.Key]bool
}

func newApp(debug bool, cal game.Calibration) *App {
	return &App{
		cal:      cal,
		source:   game.NoSignal{},
		session:  game.NewIdle(),
		debug:    debug,
		lastTick: time.Now(),
		prevKeys: make(map[ebiten.Key]bool),
	}
}

// acquireMic requests the device once. On failure the game still opens;
// the start screen offers a retry on M.
func (g *App) acquireMic() {
	c, err := mic.Open(g.cal)
	if err != nil {
		log.Println("microphone unavailable:", err)
		g.micErr = err
		g.source = game.NoSignal{}
		return
	}
	g.capture = c
	g.source = c
	g.micErr = nil
}

// Close releases the microphone stream and its audio host.
func (g *App) Close() {
	if g.capture != nil {
		g.capture.Close()
		g.capture = nil
		g.source = game.NoSignal{}
	}
}

func (g *App) startSession() {
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9E3779B97F4A7C15))
	g.session = game.NewSession(g.challenge, rng)
	g.runTimer = 0
	g.flyTimer = 0
	g.prevProgress = 0
	g.particles = g.particles[:0]
	log.Printf("session started, challenge=%v", g.challenge)
}

func (g *App) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now
	if dt > game.DtMax {
		dt = game.DtMax
	}

	g.handleInput()

	s := g.session
	if s.Phase == game.PhaseRunning && !ebiten.IsFocused() {
		s.Pause()
		g.autoPaused = true
	}
	if s.Phase == game.PhasePaused && g.autoPaused && ebiten.IsFocused() {
		s.Resume()
		g.autoPaused = false
	}
	if s.Phase != game.PhaseRunning {
		// The clock above keeps re-anchoring every frame, so a resumed
		// session never sees the paused time as one giant step.
		g.latchKeys()
		return nil
	}

	s.Advance(g.source.Signal(), dt)
	g.animate(s, dt)
	g.updateParticles(s, dt)

	p := s.Progress()
	if g.prevProgress == 0 && p > 0 {
		playSFX(sfxTakeoffData)
	}
	g.prevProgress = p

	if s.Phase == game.PhaseGameOver {
		playSFX(sfxGameOverData)
		if s.Motion.ScreamTime > g.best {
			g.best = s.Motion.ScreamTime
		}
		log.Printf("game over: cause=%d score=%.2fs distance=%.0fm",
			s.Cause, s.Motion.ScreamTime, s.Motion.Distance)
	}

	g.latchKeys()
	return nil
}

func (g *App) handleInput() {
	if g.justPressed(ebiten.KeyM) && g.micErr != nil {
		g.acquireMic()
	}

	start := g.justPressed(ebiten.KeySpace) || g.justPressed(ebiten.KeyEnter)

	switch g.session.Phase {
	case game.PhaseNotStarted:
		if g.justPressed(ebiten.KeyC) {
			g.challenge = !g.challenge
		}
		if start && g.micErr == nil {
			g.startSession()
		}
	case game.PhaseGameOver:
		if start {
			g.startSession()
		}
	case game.PhaseRunning:
		if g.justPressed(ebiten.KeyP) {
			g.session.Pause()
			g.autoPaused = false
		}
	case game.PhasePaused:
		if g.justPressed(ebiten.KeyP) {
			g.session.Resume()
			g.autoPaused = false
		}
	}
}

// animate advances the sprite-frame clocks. The run gait speeds up with
// the horse; the fly flap rate is constant.
func (g *App) animate(s *game.Session, dt float64) {
	g.runTimer += dt * (4 + s.Motion.Speed/60)
	g.flyTimer += dt * 8
}

func (g *App) justPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key) && !g.prevKeys[key]
}

func (g *App) latchKeys() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		g.prevKeys[k] = ebiten.IsKeyPressed(k)
	}
}

func (g *App) Layout(outsideWidth, outsideHeight int) (w, h int) {
	return game.ScreenWidth, game.ScreenHeight
}
