package snake

import "strings"

// Direction is one of the four cardinal headings.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Opposite returns the direct reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection converts a heading name (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "up":
		return Up, true
	case "down":
		return Down, true
	}
	return Right, false
}

// Blank is the marker of a consumed or cleared cell.
const Blank = ' '

// Cell is a grid point with the glyph drawn there.
type Cell struct {
	X, Y   int
	Marker rune
}

// Displace moves the cell one step in d. Out-of-bounds results are allowed;
// bounds are checked separately by IsOutOfBounds.
func (c *Cell) Displace(d Direction) {
	switch d {
	case Left:
		c.X--
	case Right:
		c.X++
	case Up:
		c.Y--
	case Down:
		c.Y++
	}
}

// CollidesWith reports whether both cells sit on the same coordinates.
// Markers are ignored.
func (c Cell) CollidesWith(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// IsOutOfBounds reports whether the cell lies on or beyond the board edge.
// The playable interior is (0, maxX) x (0, maxY), both ends exclusive.
func (c Cell) IsOutOfBounds(maxX, maxY int) bool {
	return c.X <= 0 || c.X >= maxX || c.Y <= 0 || c.Y >= maxY
}

// Clear blanks the marker so the cell is no longer drawn.
func (c *Cell) Clear() {
	c.Marker = Blank
}

// Visible reports whether the cell has something to draw.
func (c Cell) Visible() bool {
	return c.Marker != Blank && c.Marker != 0
}
