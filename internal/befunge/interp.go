package befunge

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

// Mode governs how the character under the instruction pointer is
// interpreted.
type Mode int

const (
	// ModeCommand dispatches the character through the instruction table.
	ModeCommand Mode = iota
	// ModeString pushes each character's code until the closing quote.
	ModeString
	// ModeBridge skips the next cell's effect, then reverts to ModeCommand.
	ModeBridge
)

func (m Mode) String() string {
	switch m {
	case ModeString:
		return "string"
	case ModeBridge:
		return "bridge"
	default:
		return "command"
	}
}

// Config holds everything needed for one execution run.
type Config struct {
	// Source is the Befunge-93 program text.
	Source string
	// Output receives program output from the . and , instructions.
	Output io.Writer
	// Input supplies lines to the & and ~ instructions. A nil Input behaves
	// as an exhausted channel.
	Input io.Reader

	// Start overrides the instruction pointer's initial position. Nil means
	// the origin.
	Start *Coord
	// Direction is the initial heading. The zero value is Right.
	Direction Direction

	// Trace, when non-nil, receives a styled execution trace.
	Trace io.Writer
	// Rand drives the ? instruction. Nil means a time-seeded source.
	Rand *rand.Rand
}

// Interpreter drives a single Befunge-93 program to completion. It owns the
// playfield, the operand stack, and the parse mode for the lifetime of one
// run; nothing is shared across runs.
type Interpreter struct {
	field *Playfield
	stack stack
	mode  Mode

	out   io.Writer
	in    *bufio.Scanner
	trace io.Writer
	rng   *rand.Rand
}

// New constructs an interpreter over the given program. It fails with a
// BoundsError if the configured start position lies outside the grid.
func New(cfg Config) (*Interpreter, error) {
	start := Coord{}
	if cfg.Start != nil {
		start = *cfg.Start
	}

	field, err := NewPlayfield(cfg.Source, start, cfg.Direction)
	if err != nil {
		return nil, err
	}

	// Default output to stdout
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var in *bufio.Scanner
	if cfg.Input != nil {
		in = bufio.NewScanner(cfg.Input)
	}

	return &Interpreter{
		field: field,
		out:   out,
		in:    in,
		trace: cfg.Trace,
		rng:   rng,
	}, nil
}

// Execute runs the fetch-decode-execute loop until the program terminates
// via @ or an instruction fails. Errors are fatal to the run and propagate
// unchanged; output written before a failure stays written.
func (i *Interpreter) Execute() error {
	if i.trace != nil {
		FormatField(i.trace, i.field)
	}

	for {
		c := i.field.Current()

		switch i.mode {
		case ModeBridge:
			// The cell is fetched but has no effect.
			i.mode = ModeCommand
		case ModeString:
			if c == '"' {
				i.mode = ModeCommand
			} else {
				i.stack.push(int64(c))
			}
		default:
			if c == '@' {
				return nil
			}
			if err := i.step(c); err != nil {
				return err
			}
		}

		if i.trace != nil {
			FormatStep(i.trace, i.field, c, i.mode, i.stack.values)
		}
		i.field.Advance()
	}
}

// step dispatches one command-mode character. The cases group instructions
// by how many operands they consume, mirroring §4.2's table.
func (i *Interpreter) step(c rune) error {
	if c >= '0' && c <= '9' {
		i.stack.push(int64(c - '0'))
		return nil
	}

	switch c {
	case '!', '_', '|', ':', '$', '.', ',':
		return i.unaryOp(c)
	case '+', '-', '*', '/', '%', '`', '\\', 'g':
		return i.binaryOp(c)
	case ' ', '>', '<', '^', 'v', '?', '"', '#', 'p', '&', '~':
		return i.controlOp(c)
	default:
		return &DecodeError{Char: c, Pos: i.field.Position()}
	}
}

func (i *Interpreter) unaryOp(op rune) error {
	v := i.stack.pop()

	switch op {
	case '!':
		i.stack.push(boolValue(v == 0))
	case '_':
		if v == 0 {
			i.field.SetHeading(Right)
		} else {
			i.field.SetHeading(Left)
		}
	case '|':
		if v == 0 {
			i.field.SetHeading(Down)
		} else {
			i.field.SetHeading(Up)
		}
	case ':':
		i.stack.push(v)
		i.stack.push(v)
	case '$':
		// Popped and discarded.
	case '.':
		if _, err := fmt.Fprintf(i.out, "%d ", v); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	case ',':
		c, err := charForCode(v)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(i.out, "%c", c); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func (i *Interpreter) binaryOp(op rune) error {
	a, b := i.stack.pop(), i.stack.pop()

	switch op {
	case '+':
		i.stack.push(b + a)
	case '-':
		i.stack.push(b - a)
	case '*':
		i.stack.push(b * a)
	case '/':
		if a == 0 {
			return &DivisionError{Dividend: b, Op: '/'}
		}
		i.stack.push(b / a)
	case '%':
		if a == 0 {
			return &DivisionError{Dividend: b, Op: '%'}
		}
		i.stack.push(b % a)
	case '`':
		i.stack.push(boolValue(b > a))
	case '\\':
		i.stack.push(a)
		i.stack.push(b)
	case 'g':
		c, err := i.field.CharAt(Coord{X: b, Y: a})
		if err != nil {
			return err
		}
		i.stack.push(int64(c))
	}
	return nil
}

func (i *Interpreter) controlOp(op rune) error {
	switch op {
	case ' ':
		// No-op.
	case '>':
		i.field.SetHeading(Right)
	case '<':
		i.field.SetHeading(Left)
	case '^':
		i.field.SetHeading(Up)
	case 'v':
		i.field.SetHeading(Down)
	case '?':
		headings := [4]Direction{Right, Left, Up, Down}
		i.field.SetHeading(headings[i.rng.Intn(len(headings))])
	case '"':
		i.mode = ModeString
	case '#':
		i.mode = ModeBridge
	case 'p':
		pos := Coord{}
		pos.Y = i.stack.pop()
		pos.X = i.stack.pop()

		c, err := charForCode(i.stack.pop())
		if err != nil {
			return err
		}
		return i.field.SetCharAt(pos, c)
	case '&':
		line, ok := i.readLine()
		if !ok {
			return &ParseError{Input: line, Want: "integer"}
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return &ParseError{Input: line, Want: "integer"}
		}
		i.stack.push(n)
	case '~':
		line, ok := i.readLine()
		if !ok {
			return &ParseError{Input: line, Want: "character"}
		}
		chars := []rune(strings.TrimSpace(line))
		if len(chars) != 1 {
			return &ParseError{Input: line, Want: "character"}
		}
		i.stack.push(int64(chars[0]))
	}
	return nil
}

// readLine blocks for the next input line. End of input reports false and
// is mapped to a ParseError by the caller.
func (i *Interpreter) readLine() (string, bool) {
	if i.in == nil || !i.in.Scan() {
		return "", false
	}
	return i.in.Text(), true
}

// charForCode converts a stack value to a character, rejecting codes
// outside the extended Latin-1 range 0-255.
func charForCode(v int64) (rune, error) {
	if v < 0 || v > 255 {
		return 0, &RangeError{Value: v}
	}
	return rune(v), nil
}

func boolValue(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
