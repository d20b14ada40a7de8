package game

import "github.com/charmbracelet/harmonica"

// Flight owns the run-to-fly transition and the pitch-driven altitude.
// Absolute pitch varies by speaker, so each session latches its own
// reference while the player screams just before the transition and maps
// later pitch relative to it.
type Flight struct {
	Enabled bool

	Reference float64 // latched baseline pitch in Hz; 0 until latched
	refSum    float64
	refCount  int

	Height    float64 // smoothed altitude above the ground line, pixels
	heightVel float64
}

func NewFlight(enabled bool) *Flight {
	return &Flight{Enabled: enabled}
}

// Progress is the 0..1 blend between running and flying. Pure in
// distance; always 0 when the challenge mode is disabled.
func (f *Flight) Progress(distance float64) float64 {
	if !f.Enabled {
		return 0
	}
	return clamp01((distance - FlightStartDistance) / FlightSpan)
}

// Step latches the reference pitch inside the pre-transition window and,
// once the transition has begun, springs the height toward the target
// implied by the current pitch. The spring is critically damped and
// rebuilt with the frame's dt so smoothing tracks real time.
func (f *Flight) Step(distance, pitch float64, screaming bool, dt float64) {
	if !f.Enabled || dt <= 0 {
		return
	}

	if distance < FlightStartDistance {
		if distance >= FlightStartDistance-PitchLatchWindow && screaming && pitch > 0 {
			f.refSum += pitch
			f.refCount++
			f.Reference = f.refSum / float64(f.refCount)
		}
		return
	}

	// Past the transition start the reference is frozen for the session.
	if f.Reference == 0 {
		return
	}
	target := 0.0
	if pitch > 0 {
		target = clampF(MaxFlightHeight*(pitch/f.Reference-1), 0, MaxFlightHeight)
	}
	spring := harmonica.NewSpring(dt, HeightSpringFreq, 1.0)
	f.Height, f.heightVel = spring.Update(f.Height, f.heightVel, target)
}
