package mic

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"gallop/internal/game"
)

// Analyzer reduces one raw sample window to the per-frame Signal.
//
// Volume is the window's RMS amplitude mapped linearly from the
// calibrated silence floor to the loud ceiling and clamped to [0,1].
// Pitch is the frequency of the strongest FFT bin inside the vocal band,
// reported only when that bin's normalized magnitude clears the
// confidence floor.
type Analyzer struct {
	sampleRate int
	cal        game.Calibration
	buf        []float64
}

func NewAnalyzer(sampleRate int, cal game.Calibration) *Analyzer {
	return &Analyzer{sampleRate: sampleRate, cal: cal}
}

// Analyze never fails; an empty window yields a zero signal.
func (a *Analyzer) Analyze(samples []float32) game.Signal {
	if len(samples) == 0 {
		return game.Signal{}
	}
	a.buf = a.buf[:0]
	for _, s := range samples {
		a.buf = append(a.buf, float64(s))
	}
	return game.Signal{
		Volume: a.volume(a.buf),
		Pitch:  a.pitch(a.buf),
	}
}

func (a *Analyzer) volume(buf []float64) float64 {
	var sum float64
	for _, v := range buf {
		sum += v * v
	}
	rms := math.Sqrt(sum / float64(len(buf)))

	span := a.cal.VolumeCeiling - a.cal.VolumeFloor
	if span <= 0 {
		return 0
	}
	v := (rms - a.cal.VolumeFloor) / span
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (a *Analyzer) pitch(buf []float64) float64 {
	spectrum := fft.FFTReal(buf)
	binHz := float64(a.sampleRate) / float64(len(buf))

	lo := int(a.cal.PitchMinHz / binHz)
	if lo < 1 {
		lo = 1 // skip DC
	}
	hi := int(a.cal.PitchMaxHz / binHz)
	if hi > len(spectrum)/2 {
		hi = len(spectrum) / 2
	}

	best, bestMag := 0, 0.0
	for i := lo; i <= hi; i++ {
		// Normalize so a full-scale sine reads as magnitude 1 regardless
		// of window length.
		m := cmplx.Abs(spectrum[i]) * 2 / float64(len(buf))
		if m > bestMag {
			best, bestMag = i, m
		}
	}
	if bestMag < a.cal.PitchMinMag {
		return 0
	}
	return float64(best) * binHz
}
