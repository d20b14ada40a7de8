package game

// MotionState labels the motion model's per-frame decision.
type MotionState int

const (
	MotionIdle MotionState = iota
	MotionScreaming
	MotionSilent
	MotionOver
)

// Motion integrates speed and traveled distance from the volume signal
// and tracks the silence timeout that ends a run.
type Motion struct {
	State        MotionState
	Speed        float64
	Distance     float64 // meters, monotonic while running
	ScreamTime   float64 // seconds above threshold; the score
	SilenceTimer float64 // seconds since volume last exceeded threshold
}

// Step advances the model by dt given this frame's volume. The order is
// fixed: threshold decision, then silence/scream bookkeeping, then the
// speed update, then distance integration — each stage consumes state
// decided earlier in the same frame.
func (m *Motion) Step(volume, dt float64) {
	if m.State == MotionOver {
		return
	}

	if volume > VolumeThreshold {
		m.State = MotionScreaming
		m.SilenceTimer = 0
		m.ScreamTime += dt
		n := clamp01((volume - VolumeThreshold) / (1 - VolumeThreshold))
		m.Speed = BaseSpeed + MaxBoost*n
	} else {
		m.State = MotionSilent
		m.SilenceTimer += dt
		m.Speed -= SpeedDecayRate * dt
		if m.Speed < 0 {
			m.Speed = 0
		}
		// The ScreamTime guard keeps a run from ending before it began;
		// the grace period rides out brief mic dropouts.
		if m.SilenceTimer >= SilenceGrace && m.ScreamTime > 0 {
			m.State = MotionOver
		}
	}

	m.Distance += m.Speed * dt
}
