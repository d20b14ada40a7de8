package game

import (
	"os"
	"strconv"
)

// Play field (logical pixels).
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	GroundY      = 600 // top of the ground line
)

// Horse placement and footprint.
const (
	HorseX      = 160.0
	HorseWidth  = 130.0
	HorseHeight = 96.0
	// CollisionPadding insets the horse bounds before the overlap test so
	// near misses read as misses.
	CollisionPadding = 10.0
)

// Motion model. Volume at the threshold gives BaseSpeed; full volume
// gives BaseSpeed+MaxBoost.
const (
	VolumeThreshold = 0.3
	BaseSpeed       = 10.0
	MaxBoost        = 1000.0
	SpeedDecayRate  = 400.0 // per second while silent
	SilenceGrace    = 0.3   // seconds of silence tolerated mid-run
)

// Flight transition. The reference pitch is latched while the player
// screams inside the PitchLatchWindow meters before FlightStartDistance.
const (
	FlightStartDistance = 1000.0
	FlightSpan          = 200.0
	PitchLatchWindow    = 300.0
	MaxFlightHeight     = 360.0
	HeightSpringFreq    = 6.0 // angular frequency of the height spring
)

// Obstacles (challenge mode).
const (
	ObstacleStartDistance = 1300.0
	SpawnGapMin           = 120.0 // meters between spawns
	SpawnGapMax           = 320.0
	ForegroundMult        = 1.6 // obstacles scroll faster than the background
	PixelsPerMeter        = 0.9
)

// DtMax clamps the wall-clock frame delta after a hitch or resume.
const DtMax = 0.1

// Calibration holds the externally tuned signal constants. These are
// deployment configuration, not runtime-adaptive values.
type Calibration struct {
	VolumeFloor   float64 // RMS at or below this reads as silence
	VolumeCeiling float64 // RMS at or above this reads as full volume
	PitchMinHz    float64 // low edge of the vocal band
	PitchMaxHz    float64 // high edge of the vocal band
	PitchMinMag   float64 // minimum normalized bin magnitude to trust a pitch
}

func DefaultCalibration() Calibration {
	return Calibration{
		VolumeFloor:   0.01,
		VolumeCeiling: 0.25,
		PitchMinHz:    80,
		PitchMaxHz:    600,
		PitchMinMag:   0.05,
	}
}

// ApplyEnv overrides calibration from the environment (typically a .env
// file loaded at startup). Unset or malformed variables keep the default.
func (c *Calibration) ApplyEnv() {
	envFloat("GALLOP_VOLUME_FLOOR", &c.VolumeFloor)
	envFloat("GALLOP_VOLUME_CEILING", &c.VolumeCeiling)
	envFloat("GALLOP_PITCH_MIN_HZ", &c.PitchMinHz)
	envFloat("GALLOP_PITCH_MAX_HZ", &c.PitchMaxHz)
	envFloat("GALLOP_PITCH_MIN_MAG", &c.PitchMinMag)
}

func envFloat(name string, dst *float64) {
	s := os.Getenv(name)
	if s == "" {
		return
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return
	}
	*dst = v
}
