package game

// Signal is one frame's worth of analyzed microphone input.
type Signal struct {
	Volume float64 // normalized 0..1
	Pitch  float64 // dominant pitch in Hz, 0 when undetected
}

// Source yields the current signal. Reads never fail: a source without a
// live device reports zero values, so the simulation needs no defensive
// branches.
type Source interface {
	Signal() Signal
}

// NoSignal is the Source used when no microphone is available.
type NoSignal struct{}

func (NoSignal) Signal() Signal { return Signal{} }
