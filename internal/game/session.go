package game

import "math/rand/v2"

// Phase is the top-level game phase.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// OverCause says why a run ended. The two causes are equivalent terminal
// transitions; the cause only picks the message on the game-over screen.
type OverCause int

const (
	OverNone OverCause = iota
	OverSilence
	OverCollision
)

// Session is one play-through's complete state. Start and restart build a
// fresh Session; nothing carries over between runs.
type Session struct {
	Phase  Phase
	Cause  OverCause
	Motion Motion
	Flight *Flight
	Field  *Field

	// Last sampled signal, kept for the HUD only.
	Volume float64
	Pitch  float64
}

// NewIdle returns the pre-start session shown behind the title screen.
// Advance is a no-op until a real session replaces it.
func NewIdle() *Session {
	return &Session{Phase: PhaseNotStarted, Flight: NewFlight(false), Field: NewField(nil)}
}

// NewSession returns a running session. The challenge flag is read once
// here; the rng drives obstacle spawning.
func NewSession(challenge bool, rng *rand.Rand) *Session {
	return &Session{
		Phase:  PhaseRunning,
		Flight: NewFlight(challenge),
		Field:  NewField(rng),
	}
}

// HorseBounds is the horse's current box, consumed read-only by the
// renderer and inset for collision.
func (s *Session) HorseBounds() Rect {
	return Rect{
		X: HorseX,
		Y: GroundY - HorseHeight - s.Flight.Height,
		W: HorseWidth,
		H: HorseHeight,
	}
}

// Progress is the current run-to-fly blend factor.
func (s *Session) Progress() float64 {
	return s.Flight.Progress(s.Motion.Distance)
}

// Advance runs one frame: motion, then flight, then obstacles. Within a
// frame the stages never reorder; each consumes state the previous one
// decided. A frame that triggers game over still integrates distance.
func (s *Session) Advance(sig Signal, dt float64) {
	if s.Phase != PhaseRunning || dt <= 0 {
		return
	}
	s.Volume, s.Pitch = sig.Volume, sig.Pitch

	s.Motion.Step(sig.Volume, dt)
	if s.Motion.State == MotionOver {
		s.Phase = PhaseGameOver
		s.Cause = OverSilence
		return
	}

	s.Flight.Step(s.Motion.Distance, sig.Pitch, s.Motion.State == MotionScreaming, dt)

	if s.Flight.Enabled {
		horse := s.HorseBounds().Inset(CollisionPadding)
		if s.Field.Step(s.Motion.Distance, s.Motion.Speed, dt, horse) {
			s.Phase = PhaseGameOver
			s.Cause = OverCollision
		}
	}
}

// Pause freezes the session. Frame deltas accumulated while paused must
// not reach Advance; the driver re-anchors its clock on resume.
func (s *Session) Pause() {
	if s.Phase == PhaseRunning {
		s.Phase = PhasePaused
	}
}

func (s *Session) Resume() {
	if s.Phase == PhasePaused {
		s.Phase = PhaseRunning
	}
}
