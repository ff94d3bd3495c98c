package befunge

import "fmt"

// BoundsError reports a position outside the playfield, either a start
// position supplied at construction or an operand pair given to g/p.
type BoundsError struct {
	Pos Coord
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position (%d, %d) is out of bounds", e.Pos.X, e.Pos.Y)
}

// DivisionError reports a division or modulo with a zero divisor.
type DivisionError struct {
	Dividend int64
	Op       rune
}

func (e *DivisionError) Error() string {
	if e.Op == '%' {
		return fmt.Sprintf("cannot mod %d by 0", e.Dividend)
	}
	return fmt.Sprintf("cannot divide %d by 0", e.Dividend)
}

// RangeError reports a value outside the 0-255 character code range,
// produced by the , and p instructions.
type RangeError struct {
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("character codes must be between 0 and 255, got %d", e.Value)
}

// ParseError reports input-channel text that & could not parse as an
// integer, or that ~ could not take as a single character. End of input
// is reported the same way.
type ParseError struct {
	Input string
	Want  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Input, e.Want)
}

// DecodeError reports a character that is not a recognized instruction
// in command mode.
type DecodeError struct {
	Char rune
	Pos  Coord
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%q at (%d, %d) is not a valid instruction", e.Char, e.Pos.X, e.Pos.Y)
}
