package game

import "math/rand/v2"

// ObstacleKind selects the sprite and footprint of a hazard.
type ObstacleKind int

const (
	ObstacleBalloon ObstacleKind = iota
	ObstacleBird
	ObstacleBlimp
	obstacleKindCount
)

// obstacleSizes gives each kind its bounding box in play-field pixels.
var obstacleSizes = [obstacleKindCount]struct{ w, h float64 }{
	ObstacleBalloon: {64, 88},
	ObstacleBird:    {72, 48},
	ObstacleBlimp:   {140, 64},
}

// Obstacle is one hazard scrolling toward the horse. X/Y is the top-left
// corner.
type Obstacle struct {
	Kind       ObstacleKind
	X, Y, W, H float64
}

func (o Obstacle) Bounds() Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Field spawns, advances, and collision-tests obstacles once the run is
// far enough along. Spawn spacing is measured in traveled meters so the
// field density is independent of frame rate.
type Field struct {
	Obstacles []Obstacle
	nextSpawn float64 // distance at which the next obstacle appears
	rng       *rand.Rand
}

func NewField(rng *rand.Rand) *Field {
	return &Field{rng: rng}
}

// Step spawns by distance, advances every obstacle by the frame's scroll,
// drops the ones fully past the left edge, and reports whether any
// obstacle overlaps the (already inset) horse bounds this frame.
func (fl *Field) Step(distance, speed, dt float64, horse Rect) bool {
	if distance > ObstacleStartDistance {
		if fl.nextSpawn == 0 {
			fl.nextSpawn = distance + fl.gap()
		}
		for distance >= fl.nextSpawn {
			fl.spawn()
			fl.nextSpawn += fl.gap()
		}
	}

	// Faster than the background scroll so obstacles read as foreground.
	adv := speed * PixelsPerMeter * ForegroundMult * dt

	hit := false
	kept := fl.Obstacles[:0]
	for _, o := range fl.Obstacles {
		o.X -= adv
		if o.X+o.W < 0 {
			continue
		}
		if o.Bounds().Overlaps(horse) {
			hit = true
		}
		kept = append(kept, o)
	}
	fl.Obstacles = kept
	return hit
}

func (fl *Field) gap() float64 {
	return SpawnGapMin + fl.rng.Float64()*(SpawnGapMax-SpawnGapMin)
}

func (fl *Field) spawn() {
	kind := ObstacleKind(fl.rng.IntN(int(obstacleKindCount)))
	size := obstacleSizes[kind]

	// Anywhere in the altitude band the horse can reach.
	yMin := GroundY - MaxFlightHeight - HorseHeight
	yMax := GroundY - size.h
	y := yMin + fl.rng.Float64()*(yMax-yMin)

	fl.Obstacles = append(fl.Obstacles, Obstacle{
		Kind: kind,
		X:    ScreenWidth + size.w, // just beyond the visible edge
		Y:    y,
		W:    size.w,
		H:    size.h,
	})
}
