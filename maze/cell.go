package maze

// Direction identifies one side of a cell.
type Direction uint8

// Wall bits. North is the top wall, East the right, South the bottom and West the left.
const (
	North Direction = 1 << iota
	East
	South
	West

	allWalls = North | East | South | West
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the side facing d on the adjacent cell.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets of the neighbor on side d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Cell represents a single position of a maze grid.
// Coordinates and walls are read-only outside of this package; Emoji and
// Background are free for decorators and renderers to use.
type Cell struct {
	x, y    int
	walls   Direction
	visited bool

	Emoji      string // Emoji marker placed by a decorator, empty when unset.
	Background string // Background tag placed by a decorator, empty when unset.
}

func newCell(x, y int) *Cell {
	return &Cell{x: x, y: y, walls: allWalls}
}

// X returns the column of the cell.
func (c *Cell) X() int {
	return c.x
}

// Y returns the row of the cell.
func (c *Cell) Y() int {
	return c.y
}

// Visited reports whether a generation run has reached the cell.
func (c *Cell) Visited() bool {
	return c.visited
}

// HasWall reports whether the wall on side d is present.
func (c *Cell) HasWall(d Direction) bool {
	return c.walls&d != 0
}

// HasNorthWall returns true if there is a wall on the north (top) side of the cell.
func (c *Cell) HasNorthWall() bool {
	return c.HasWall(North)
}

// HasEastWall returns true if there is a wall on the east (right) side of the cell.
func (c *Cell) HasEastWall() bool {
	return c.HasWall(East)
}

// HasSouthWall returns true if there is a wall on the south (bottom) side of the cell.
func (c *Cell) HasSouthWall() bool {
	return c.HasWall(South)
}

// HasWestWall returns true if there is a wall on the west (left) side of the cell.
func (c *Cell) HasWestWall() bool {
	return c.HasWall(West)
}

// Mask returns the wall bitmask of the cell (North=1, East=2, South=4, West=8).
func (c *Cell) Mask() uint8 {
	return uint8(c.walls)
}
