package snake

import "math/rand"

// FoodSpawner places food uniformly at random inside a fixed region.
// It keeps no state between calls other than its region, glyph and RNG.
type FoodSpawner struct {
	width  int
	height int
	marker rune
	rng    *rand.Rand
}

// NewFoodSpawner creates a spawner for x in [1, width] and y in [1, height].
// Dimensions below 1 are raised to 1.
func NewFoodSpawner(width, height int, marker rune, rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{
		width:  max(width, 1),
		height: max(height, 1),
		marker: marker,
		rng:    rng,
	}
}

// Spawn returns a fresh food cell. It does not avoid the snake body.
func (s *FoodSpawner) Spawn() Cell {
	return Cell{
		X:      1 + s.rng.Intn(s.width),
		Y:      1 + s.rng.Intn(s.height),
		Marker: s.marker,
	}
}
