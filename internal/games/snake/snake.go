package snake

import (
	"math/rand"
	"time"
)

// InitialLength is the body length used when Options.Length is not set.
const InitialLength = 4

// Options describes how a Snake is laid out and where its food may appear.
type Options struct {
	Tail    Cell // Tail anchor; only X and Y are used
	Length  int
	Heading Direction
	Glyph   rune

	// Board bounds for the out-of-bounds test.
	MaxX, MaxY int

	// Food spawn region [1, FoodWidth] x [1, FoodHeight], clipped to the board.
	FoodWidth  int
	FoodHeight int
	FoodGlyph  rune

	Rand *rand.Rand // nil means time-seeded
}

// Snake is the player-controlled actor: an ordered body, head first, plus the
// food it is currently chasing.
type Snake struct {
	body       []Cell
	heading    Direction
	foodsEaten int
	food       Cell
	spawner    *FoodSpawner
	maxX, maxY int
}

// New builds a straight body of opts.Length cells ending at the tail anchor
// and extending along the heading, then spawns the first food.
func New(opts Options) *Snake {
	if opts.Length < 1 {
		opts.Length = InitialLength
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	body := make([]Cell, opts.Length)
	seg := Cell{X: opts.Tail.X, Y: opts.Tail.Y, Marker: opts.Glyph}
	for i := opts.Length - 1; i >= 0; i-- {
		body[i] = seg
		seg.Displace(opts.Heading)
	}

	// Keep food strictly inside the playable interior.
	foodW := max(min(opts.FoodWidth, opts.MaxX-1), 1)
	foodH := max(min(opts.FoodHeight, opts.MaxY-1), 1)

	s := &Snake{
		body:    body,
		heading: opts.Heading,
		spawner: NewFoodSpawner(foodW, foodH, opts.FoodGlyph, rng),
		maxX:    opts.MaxX,
		maxY:    opts.MaxY,
	}
	s.food = s.spawner.Spawn()
	return s
}

// SetHeading changes direction unless d is the exact reverse of the current
// heading, in which case the request is silently dropped.
func (s *Snake) SetHeading(d Direction) {
	if d == s.heading.Opposite() {
		return
	}
	s.heading = d
}

// NextHead returns where the head would be after one move. It does not
// change any state.
func (s *Snake) NextHead() Cell {
	next := s.body[0]
	next.Displace(s.heading)
	return next
}

// Tick advances the snake one cell. The new head is always inserted first;
// if it lands on the food the tail is kept and the body grows by one,
// otherwise the tail is dropped. Reports whether food was eaten.
func (s *Snake) Tick() bool {
	head := s.NextHead()
	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if s.body[0].CollidesWith(s.food) {
		s.foodsEaten++
		s.food = s.spawner.Spawn()
		return true
	}

	s.body = s.body[:len(s.body)-1]
	return false
}

// IsGameOver reports whether the head has left the board or sits on another
// body segment.
func (s *Snake) IsGameOver() bool {
	head := s.body[0]
	if head.IsOutOfBounds(s.maxX, s.maxY) {
		return true
	}
	for _, seg := range s.body[1:] {
		if head.CollidesWith(seg) {
			return true
		}
	}
	return false
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the first segment.
func (s *Snake) Head() Cell { return s.body[0] }

// Len returns the number of body segments.
func (s *Snake) Len() int { return len(s.body) }

// Heading returns the current direction of travel.
func (s *Snake) Heading() Direction { return s.heading }

// FoodsEaten returns how many food cells have been consumed.
func (s *Snake) FoodsEaten() int { return s.foodsEaten }

// Food returns the current food cell.
func (s *Snake) Food() Cell { return s.food }

// Bounds returns the board bounds used by IsGameOver.
func (s *Snake) Bounds() (maxX, maxY int) { return s.maxX, s.maxY }
