// Package mic owns the microphone for the lifetime of a play session:
// it captures raw samples from the default input device and reduces each
// analysis window to the volume/pitch signal the game consumes. No other
// package reads device data.
package mic

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"gallop/internal/game"
)

const (
	sampleRate      = 44100
	framesPerBuffer = 2048
)

// Capture is a live microphone stream. Open reports acquisition failure
// exactly once; after that, Signal never fails.
type Capture struct {
	mu       sync.Mutex
	latest   []float32 // most recent callback window
	scratch  []float32
	stream   *portaudio.Stream
	analyzer *Analyzer
}

// Open initializes the audio host and starts the default input stream.
// The caller owns retry; a failed Open leaves nothing to release.
func Open(cal game.Calibration) (*Capture, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("audio host init: %w", err)
	}
	c := &Capture{
		latest:   make([]float32, 0, framesPerBuffer),
		analyzer: NewAnalyzer(sampleRate, cal),
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, framesPerBuffer, c.capture)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("open input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("start input stream: %w", err)
	}
	c.stream = stream
	return c, nil
}

// capture runs on the audio host's thread.
func (c *Capture) capture(in []float32) {
	c.mu.Lock()
	c.latest = append(c.latest[:0], in...)
	c.mu.Unlock()
}

// Signal analyzes the most recent window. Implements game.Source.
func (c *Capture) Signal() game.Signal {
	c.mu.Lock()
	c.scratch = append(c.scratch[:0], c.latest...)
	c.mu.Unlock()
	return c.analyzer.Analyze(c.scratch)
}

// Close stops the stream and releases the device and the audio host.
func (c *Capture) Close() {
	if c.stream != nil {
		c.stream.Stop()
		c.stream.Close()
		c.stream = nil
	}
	portaudio.Terminate()
}
