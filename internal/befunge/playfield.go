package befunge

import (
	"fmt"
	"strings"
)

// Direction is the heading of the instruction pointer. The zero value is
// Right, matching the Befunge-93 starting direction.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "down"
	}
}

// ParseDirection validates a direction name from a flag or environment
// variable and returns the matching Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "right", "":
		return Right, nil
	case "left":
		return Left, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return Right, fmt.Errorf("invalid direction %q (must be right, left, up, or down)", name)
	}
}

// Coord is a playfield position. X is the column, Y is the row.
type Coord struct {
	X, Y int64
}

// Playfield owns the program grid and the instruction pointer. The grid is
// built once at construction and only mutated in place by the p instruction.
type Playfield struct {
	cells  [][]rune
	width  int64
	height int64

	pos Coord
	dir Direction
}

// NewPlayfield builds a playfield from source text. Lines are right-padded
// with spaces to the longest line's width so every row has equal length.
// The start position must lie within the grid; supplying one outside it is
// a BoundsError.
func NewPlayfield(code string, start Coord, dir Direction) (*Playfield, error) {
	lines := splitLines(code)

	var width int64
	for _, line := range lines {
		if n := int64(len([]rune(line))); n > width {
			width = n
		}
	}

	cells := make([][]rune, len(lines))
	for i, line := range lines {
		row := make([]rune, width)
		copy(row, []rune(line))
		for j := int64(len([]rune(line))); j < width; j++ {
			row[j] = ' '
		}
		cells[i] = row
	}

	p := &Playfield{
		cells:  cells,
		width:  width,
		height: int64(len(cells)),
		pos:    start,
		dir:    dir,
	}
	if !p.inBounds(start) && start != (Coord{}) {
		return nil, &BoundsError{Pos: start}
	}
	return p, nil
}

// splitLines mimics line iteration over source text: a single trailing
// newline does not produce an empty final row, and carriage returns from
// CRLF files are stripped.
func splitLines(code string) []string {
	if code == "" {
		return nil
	}
	code = strings.TrimSuffix(code, "\n")
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Width returns the number of columns.
func (p *Playfield) Width() int64 { return p.width }

// Height returns the number of rows.
func (p *Playfield) Height() int64 { return p.height }

// Position returns the instruction pointer's current position.
func (p *Playfield) Position() Coord { return p.pos }

// Heading returns the instruction pointer's current direction.
func (p *Playfield) Heading() Direction { return p.dir }

// SetHeading changes the instruction pointer's direction.
func (p *Playfield) SetHeading(d Direction) { p.dir = d }

func (p *Playfield) inBounds(pos Coord) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < p.width && pos.Y < p.height
}

// Current returns the character under the instruction pointer. On an empty
// grid it returns a space so that execution spins instead of crashing.
func (p *Playfield) Current() rune {
	if p.width == 0 || p.height == 0 {
		return ' '
	}
	return p.cells[p.pos.Y][p.pos.X]
}

// CharAt is the bounds-checked read behind the g instruction.
func (p *Playfield) CharAt(pos Coord) (rune, error) {
	if !p.inBounds(pos) {
		return 0, &BoundsError{Pos: pos}
	}
	return p.cells[pos.Y][pos.X], nil
}

// SetCharAt is the bounds-checked write behind the p instruction.
func (p *Playfield) SetCharAt(pos Coord, value rune) error {
	if !p.inBounds(pos) {
		return &BoundsError{Pos: pos}
	}
	p.cells[pos.Y][pos.X] = value
	return nil
}

// Advance moves the instruction pointer one cell along its heading,
// wrapping toroidally at the grid edges.
func (p *Playfield) Advance() {
	if p.width == 0 || p.height == 0 {
		return
	}
	switch p.dir {
	case Right:
		p.pos.X = (p.pos.X + 1) % p.width
	case Left:
		if p.pos.X == 0 {
			p.pos.X = p.width - 1
		} else {
			p.pos.X--
		}
	case Down:
		p.pos.Y = (p.pos.Y + 1) % p.height
	case Up:
		if p.pos.Y == 0 {
			p.pos.Y = p.height - 1
		} else {
			p.pos.Y--
		}
	}
}
