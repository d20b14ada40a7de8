package game

import (
	"testing"
)

func TestIdleSessionIgnoresAdvance(t *testing.T) {
	s := NewIdle()
	s.Advance(Signal{Volume: 1}, dt)

	if s.Phase != PhaseNotStarted {
		t.Errorf("Phase = %v, want PhaseNotStarted", s.Phase)
	}
	if s.Motion.Distance != 0 || s.Motion.ScreamTime != 0 {
		t.Error("idle session accumulated state")
	}
}

func TestNewSessionStartsFresh(t *testing.T) {
	s := NewSession(true, testRNG())

	if s.Phase != PhaseRunning {
		t.Errorf("Phase = %v, want PhaseRunning", s.Phase)
	}
	if s.Cause != OverNone {
		t.Errorf("Cause = %v, want OverNone", s.Cause)
	}
	if s.Motion.Distance != 0 || s.Motion.Speed != 0 || s.Motion.ScreamTime != 0 {
		t.Error("new session carries motion state")
	}
	if s.Flight.Reference != 0 || s.Flight.Height != 0 {
		t.Error("new session carries flight state")
	}
	if len(s.Field.Obstacles) != 0 {
		t.Error("new session carries obstacles")
	}
}

func TestScreamingRunAccumulates(t *testing.T) {
	s := NewSession(false, testRNG())

	for i := 0; i < 60; i++ {
		s.Advance(Signal{Volume: 0.8}, dt)
	}

	if s.Phase != PhaseRunning {
		t.Fatalf("Phase = %v, want PhaseRunning", s.Phase)
	}
	if s.Motion.Distance <= 0 {
		t.Error("distance did not grow during a scream")
	}
	wantScream := 60 * dt
	if diff := s.Motion.ScreamTime - wantScream; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ScreamTime = %v, want %v", s.Motion.ScreamTime, wantScream)
	}
}

func TestSilenceEndsRunWithSilenceCause(t *testing.T) {
	s := NewSession(false, testRNG())
	s.Advance(Signal{Volume: 0.8}, dt)

	for i := 0; i < 60 && s.Phase == PhaseRunning; i++ {
		s.Advance(Signal{}, dt)
	}

	if s.Phase != PhaseGameOver {
		t.Fatalf("Phase = %v, want PhaseGameOver", s.Phase)
	}
	if s.Cause != OverSilence {
		t.Errorf("Cause = %v, want OverSilence", s.Cause)
	}
}

func TestCollisionEndsRunWithCollisionCause(t *testing.T) {
	s := NewSession(true, testRNG())

	// Park an obstacle on top of the horse; the next frame must end the run.
	b := s.HorseBounds()
	s.Field.Obstacles = []Obstacle{{Kind: ObstacleBlimp, X: b.X, Y: b.Y, W: b.W, H: b.H}}

	s.Advance(Signal{Volume: 0.8}, dt)

	if s.Phase != PhaseGameOver {
		t.Fatalf("Phase = %v, want PhaseGameOver", s.Phase)
	}
	if s.Cause != OverCollision {
		t.Errorf("Cause = %v, want OverCollision", s.Cause)
	}
}

func TestCollisionNeverFiresWithoutChallenge(t *testing.T) {
	s := NewSession(false, testRNG())
	b := s.HorseBounds()
	s.Field.Obstacles = []Obstacle{{Kind: ObstacleBlimp, X: b.X, Y: b.Y, W: b.W, H: b.H}}

	for i := 0; i < 120; i++ {
		s.Advance(Signal{Volume: 0.8}, dt)
	}
	if s.Phase != PhaseRunning {
		t.Errorf("Phase = %v, want PhaseRunning with challenge off", s.Phase)
	}
}

func TestPauseFreezesState(t *testing.T) {
	s := NewSession(false, testRNG())
	for i := 0; i < 30; i++ {
		s.Advance(Signal{Volume: 0.8}, dt)
	}

	s.Pause()
	if s.Phase != PhasePaused {
		t.Fatalf("Phase = %v, want PhasePaused", s.Phase)
	}

	d, st := s.Motion.Distance, s.Motion.ScreamTime
	for i := 0; i < 120; i++ {
		s.Advance(Signal{Volume: 0.8}, dt)
	}
	if s.Motion.Distance != d || s.Motion.ScreamTime != st {
		t.Error("paused session kept advancing")
	}

	s.Resume()
	s.Advance(Signal{Volume: 0.8}, dt)
	if s.Motion.Distance <= d {
		t.Error("resumed session did not continue from frozen state")
	}
}

func TestPauseOnlyFromRunning(t *testing.T) {
	s := NewSession(false, testRNG())
	s.Advance(Signal{Volume: 0.8}, dt)
	for s.Phase == PhaseRunning {
		s.Advance(Signal{}, dt)
	}

	s.Pause()
	if s.Phase != PhaseGameOver {
		t.Errorf("Pause moved a terminal session to %v", s.Phase)
	}
	s.Resume()
	if s.Phase != PhaseGameOver {
		t.Errorf("Resume moved a terminal session to %v", s.Phase)
	}
}

func TestHorseBoundsLiftWithFlight(t *testing.T) {
	s := NewSession(true, testRNG())
	ground := s.HorseBounds()

	s.Flight.Height = 100
	lifted := s.HorseBounds()

	if lifted.Y != ground.Y-100 {
		t.Errorf("lifted Y = %v, want %v", lifted.Y, ground.Y-100)
	}
	if lifted.X != ground.X || lifted.W != ground.W || lifted.H != ground.H {
		t.Error("flight height changed more than the vertical position")
	}
}
