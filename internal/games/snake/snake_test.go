package snake

import (
	"math/rand"
	"testing"
)

// placeFood replaces the current food so a test can force or avoid an eat.
func (s *Snake) placeFood(c Cell) { s.food = c }

// parkedFood sits in a corner the tests never drive through.
var parkedFood = Cell{X: 1, Y: 20, Marker: '$'}

func newTestSnake(t *testing.T, length int) *Snake {
	t.Helper()
	s := New(Options{
		Tail:       Cell{X: 4, Y: 5},
		Length:     length,
		Heading:    Right,
		Glyph:      '*',
		MaxX:       80,
		MaxY:       25,
		FoodWidth:  80,
		FoodHeight: 20,
		FoodGlyph:  '$',
		Rand:       rand.New(rand.NewSource(1)),
	})
	s.placeFood(parkedFood)
	return s
}

func TestNewLayout(t *testing.T) {
	s := newTestSnake(t, 4)

	want := []Cell{
		{X: 7, Y: 5, Marker: '*'},
		{X: 6, Y: 5, Marker: '*'},
		{X: 5, Y: 5, Marker: '*'},
		{X: 4, Y: 5, Marker: '*'},
	}
	body := s.Body()
	if len(body) != len(want) {
		t.Fatalf("Body length = %d, expected %d", len(body), len(want))
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %+v, expected %+v", i, body[i], want[i])
		}
	}
	if s.Heading() != Right {
		t.Errorf("Heading() = %s, expected right", s.Heading())
	}
	if s.FoodsEaten() != 0 {
		t.Errorf("FoodsEaten() = %d, expected 0", s.FoodsEaten())
	}
}

func TestNewLayoutFollowsHeading(t *testing.T) {
	for _, d := range []Direction{Left, Right, Up, Down} {
		t.Run(d.String(), func(t *testing.T) {
			s := New(Options{
				Tail:    Cell{X: 20, Y: 10},
				Length:  4,
				Heading: d,
				Glyph:   '*',
				MaxX:    80,
				MaxY:    25,
				Rand:    rand.New(rand.NewSource(1)),
			})

			body := s.Body()
			if tail := body[len(body)-1]; tail.X != 20 || tail.Y != 10 {
				t.Errorf("Tail = (%d, %d), expected anchor (20, 10)", tail.X, tail.Y)
			}
			// Each segment is one step behind the previous one
			for i := 1; i < len(body); i++ {
				step := body[i]
				step.Displace(d)
				if !step.CollidesWith(body[i-1]) {
					t.Errorf("body[%d] is not directly behind body[%d]", i, i-1)
				}
			}
		})
	}
}

func TestNewDefaultsLength(t *testing.T) {
	s := New(Options{Tail: Cell{X: 4, Y: 5}, Heading: Right, MaxX: 80, MaxY: 25})
	if s.Len() != InitialLength {
		t.Errorf("Len() = %d, expected default %d", s.Len(), InitialLength)
	}
}

func TestNewClipsFoodRegion(t *testing.T) {
	s := New(Options{
		Tail:       Cell{X: 2, Y: 2},
		Length:     2,
		Heading:    Right,
		MaxX:       10,
		MaxY:       6,
		FoodWidth:  80,
		FoodHeight: 20,
		FoodGlyph:  '$',
		Rand:       rand.New(rand.NewSource(3)),
	})

	if w, h := s.spawner.width, s.spawner.height; w != 9 || h != 5 {
		t.Fatalf("Food region = %dx%d, expected 9x5", w, h)
	}
	for i := 0; i < 1000; i++ {
		if c := s.spawner.Spawn(); c.IsOutOfBounds(10, 6) {
			t.Fatalf("Food spawned on the wall at (%d, %d)", c.X, c.Y)
		}
	}
}

func TestNextHeadIsPure(t *testing.T) {
	s := newTestSnake(t, 4)
	before := s.Body()

	a := s.NextHead()
	b := s.NextHead()
	if a != b {
		t.Errorf("NextHead() not deterministic: %+v vs %+v", a, b)
	}
	if a.X != 8 || a.Y != 5 || a.Marker != '*' {
		t.Errorf("NextHead() = %+v, expected (8, 5) with the head marker", a)
	}

	after := s.Body()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("NextHead() must not change the body")
		}
	}
}

func TestTickMoves(t *testing.T) {
	s := newTestSnake(t, 4)

	if ate := s.Tick(); ate {
		t.Fatal("Tick() should not eat parked food")
	}

	if head := s.Head(); head.X != 8 || head.Y != 5 {
		t.Errorf("Head after one tick = (%d, %d), expected (8, 5)", head.X, head.Y)
	}
	if s.Len() != 4 {
		t.Errorf("Len() after a plain move = %d, expected 4", s.Len())
	}
	body := s.Body()
	if tail := body[len(body)-1]; tail.X != 5 || tail.Y != 5 {
		t.Errorf("Tail after one tick = (%d, %d), expected (5, 5)", tail.X, tail.Y)
	}
}

func TestTickEatsAndGrows(t *testing.T) {
	s := newTestSnake(t, 4)
	s.placeFood(Cell{X: 8, Y: 5, Marker: '$'})

	if ate := s.Tick(); !ate {
		t.Fatal("Tick() should eat food at the next head")
	}

	if s.FoodsEaten() != 1 {
		t.Errorf("FoodsEaten() = %d, expected 1", s.FoodsEaten())
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, expected 5 after eating", s.Len())
	}
	body := s.Body()
	if tail := body[len(body)-1]; tail.X != 4 || tail.Y != 5 {
		t.Errorf("Tail should stay at (4, 5) when growing, got (%d, %d)", tail.X, tail.Y)
	}

	food := s.Food()
	if !food.Visible() || food.Marker != '$' {
		t.Errorf("New food should carry the food glyph, got %q", food.Marker)
	}
	if food.IsOutOfBounds(80, 25) {
		t.Errorf("New food spawned out of bounds at (%d, %d)", food.X, food.Y)
	}
	if food.X == 8 && food.Y == 5 {
		t.Error("New food should not reappear on the cell just eaten")
	}
}

func TestTickLengthInvariant(t *testing.T) {
	s := New(Options{
		Tail:       Cell{X: 10, Y: 10},
		Length:     4,
		Heading:    Right,
		Glyph:      '*',
		MaxX:       30,
		MaxY:       20,
		FoodWidth:  3,
		FoodHeight: 3,
		FoodGlyph:  '$',
		Rand:       rand.New(rand.NewSource(99)),
	})

	turns := []Direction{Up, Left, Down, Left, Up, Right}
	for i := 0; i < 60 && !s.IsGameOver(); i++ {
		s.SetHeading(turns[(i/4)%len(turns)])
		before, eaten := s.Len(), s.FoodsEaten()

		ate := s.Tick()
		switch {
		case ate && (s.Len() != before+1 || s.FoodsEaten() != eaten+1):
			t.Fatalf("Tick %d: eating should grow by exactly one (len %d -> %d)", i, before, s.Len())
		case !ate && s.Len() != before:
			t.Fatalf("Tick %d: plain move changed length %d -> %d", i, before, s.Len())
		}
		if s.Len() < InitialLength {
			t.Fatalf("Tick %d: length dropped below %d", i, InitialLength)
		}
	}
}

func TestSetHeading(t *testing.T) {
	all := []Direction{Left, Right, Up, Down}

	for _, current := range all {
		for _, requested := range all {
			s := newTestSnake(t, 4)
			s.heading = current

			s.SetHeading(requested)

			want := requested
			if requested == current.Opposite() {
				want = current
			}
			if s.Heading() != want {
				t.Errorf("heading %s, SetHeading(%s) -> %s, expected %s",
					current, requested, s.Heading(), want)
			}
		}
	}
}

func TestIsGameOver(t *testing.T) {
	tests := []struct {
		name     string
		body     []Cell
		expected bool
	}{
		{"interior", []Cell{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}, false},
		{"last interior cell", []Cell{{X: 79, Y: 24}, {X: 78, Y: 24}}, false},
		{"left wall", []Cell{{X: 0, Y: 10}, {X: 1, Y: 10}}, true},
		{"right wall", []Cell{{X: 80, Y: 10}, {X: 79, Y: 10}}, true},
		{"top wall", []Cell{{X: 10, Y: 0}, {X: 10, Y: 1}}, true},
		{"bottom wall", []Cell{{X: 10, Y: 25}, {X: 10, Y: 24}}, true},
		{"head on tail", []Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}}, true},
		{"head on neck", []Cell{{X: 5, Y: 5}, {X: 5, Y: 5}}, true},
		{"single segment", []Cell{{X: 5, Y: 5}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Snake{body: tc.body, maxX: 80, maxY: 25}
			if got := s.IsGameOver(); got != tc.expected {
				t.Errorf("IsGameOver() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestWallCollisionTiming(t *testing.T) {
	s := newTestSnake(t, 4)

	// Head starts at x=7; x=80 is the first out-of-bounds column.
	for i := 1; i <= 73; i++ {
		s.Tick()
		over := s.IsGameOver()
		if i < 73 && over {
			t.Fatalf("Game over too early at tick %d (head x=%d)", i, s.Head().X)
		}
		if i == 73 && !over {
			t.Fatalf("Game should be over at tick 73 (head x=%d)", s.Head().X)
		}
	}
	if s.Head().X != 80 {
		t.Errorf("Head x at game over = %d, expected 80", s.Head().X)
	}
}

func TestSelfCollisionLoop(t *testing.T) {
	s := newTestSnake(t, 5)
	// Body: (8,5) (7,5) (6,5) (5,5) (4,5)

	for _, d := range []Direction{Down, Left} {
		s.SetHeading(d)
		s.Tick()
		if s.IsGameOver() {
			t.Fatalf("Game over too early after turning %s", d)
		}
	}

	s.SetHeading(Up)
	s.Tick()
	if !s.IsGameOver() {
		t.Errorf("Turning back into the body should end the game, head at (%d, %d)", s.Head().X, s.Head().Y)
	}
}

func TestBodyReturnsCopy(t *testing.T) {
	s := newTestSnake(t, 4)

	body := s.Body()
	body[0].X = 99

	if s.Head().X == 99 {
		t.Error("Body() should return a copy")
	}
}
