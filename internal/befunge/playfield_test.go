package befunge

import (
	"errors"
	"testing"
)

func TestNewPlayfieldGrid(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantRows   []string
		wantWidth  int64
		wantHeight int64
	}{
		{
			name:       "basic",
			code:       "lwkwkl\ndhdhde\n333ddd",
			wantRows:   []string{"lwkwkl", "dhdhde", "333ddd"},
			wantWidth:  6,
			wantHeight: 3,
		},
		{
			name:       "empty",
			code:       "",
			wantRows:   nil,
			wantWidth:  0,
			wantHeight: 0,
		},
		{
			name:       "single row",
			code:       "lwkwkl",
			wantRows:   []string{"lwkwkl"},
			wantWidth:  6,
			wantHeight: 1,
		},
		{
			name:       "single column",
			code:       "l\nw\nk\nw\nk\nl",
			wantRows:   []string{"l", "w", "k", "w", "k", "l"},
			wantWidth:  1,
			wantHeight: 6,
		},
		{
			name:       "short rows padded with spaces",
			code:       "l\nww\nk",
			wantRows:   []string{"l ", "ww", "k "},
			wantWidth:  2,
			wantHeight: 3,
		},
		{
			name:       "short final row padded with spaces",
			code:       "ldd\nwwe\ng",
			wantRows:   []string{"ldd", "wwe", "g  "},
			wantWidth:  3,
			wantHeight: 3,
		},
		{
			name:       "trailing newline ignored",
			code:       "ab\n",
			wantRows:   []string{"ab"},
			wantWidth:  2,
			wantHeight: 1,
		},
		{
			name:       "crlf line endings",
			code:       "ab\r\ncd",
			wantRows:   []string{"ab", "cd"},
			wantWidth:  2,
			wantHeight: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlayfield(tt.code, Coord{}, Right)
			if err != nil {
				t.Fatalf("NewPlayfield() error = %v", err)
			}

			if p.Width() != tt.wantWidth || p.Height() != tt.wantHeight {
				t.Errorf("dimensions = %dx%d, want %dx%d", p.Width(), p.Height(), tt.wantWidth, tt.wantHeight)
			}
			if len(p.cells) != len(tt.wantRows) {
				t.Fatalf("rows = %d, want %d", len(p.cells), len(tt.wantRows))
			}
			for i, row := range p.cells {
				if string(row) != tt.wantRows[i] {
					t.Errorf("row %d = %q, want %q", i, string(row), tt.wantRows[i])
				}
			}
		})
	}
}

func TestNewPlayfieldStartBounds(t *testing.T) {
	tests := []struct {
		name    string
		start   Coord
		wantErr bool
	}{
		{name: "origin", start: Coord{}, wantErr: false},
		{name: "last cell", start: Coord{X: 4, Y: 0}, wantErr: false},
		{name: "one past last column", start: Coord{X: 5, Y: 0}, wantErr: true},
		{name: "one past last row", start: Coord{X: 0, Y: 1}, wantErr: true},
		{name: "far out of range", start: Coord{X: 13333, Y: 0}, wantErr: true},
		{name: "negative column", start: Coord{X: -1, Y: 0}, wantErr: true},
		{name: "negative row", start: Coord{X: 0, Y: -2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlayfield("5:.,@", tt.start, Right)
			if tt.wantErr {
				var boundsErr *BoundsError
				if !errors.As(err, &boundsErr) {
					t.Fatalf("NewPlayfield() error = %v, want BoundsError", err)
				}
				if boundsErr.Pos != tt.start {
					t.Errorf("BoundsError.Pos = %v, want %v", boundsErr.Pos, tt.start)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPlayfield() error = %v", err)
			}
			if p.Position() != tt.start {
				t.Errorf("Position() = %v, want %v", p.Position(), tt.start)
			}
		})
	}
}

func TestAdvanceWraparound(t *testing.T) {
	tests := []struct {
		name  string
		start Coord
		dir   Direction
		want  Coord
	}{
		{name: "right interior", start: Coord{X: 0, Y: 0}, dir: Right, want: Coord{X: 1, Y: 0}},
		{name: "right wraps to first column", start: Coord{X: 2, Y: 0}, dir: Right, want: Coord{X: 0, Y: 0}},
		{name: "left interior", start: Coord{X: 1, Y: 0}, dir: Left, want: Coord{X: 0, Y: 0}},
		{name: "left wraps to last column", start: Coord{X: 0, Y: 0}, dir: Left, want: Coord{X: 2, Y: 0}},
		{name: "down interior", start: Coord{X: 0, Y: 0}, dir: Down, want: Coord{X: 0, Y: 1}},
		{name: "down wraps to first row", start: Coord{X: 0, Y: 1}, dir: Down, want: Coord{X: 0, Y: 0}},
		{name: "up interior", start: Coord{X: 0, Y: 1}, dir: Up, want: Coord{X: 0, Y: 0}},
		{name: "up wraps to last row", start: Coord{X: 0, Y: 0}, dir: Up, want: Coord{X: 0, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlayfield("abc\ndef", tt.start, tt.dir)
			if err != nil {
				t.Fatalf("NewPlayfield() error = %v", err)
			}

			p.Advance()
			if p.Position() != tt.want {
				t.Errorf("Position() after Advance = %v, want %v", p.Position(), tt.want)
			}
		})
	}
}

func TestCharAt(t *testing.T) {
	p, err := NewPlayfield("ab\ncd", Coord{}, Right)
	if err != nil {
		t.Fatalf("NewPlayfield() error = %v", err)
	}

	c, err := p.CharAt(Coord{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("CharAt() error = %v", err)
	}
	if c != 'd' {
		t.Errorf("CharAt(1,1) = %q, want %q", c, 'd')
	}

	for _, pos := range []Coord{{X: 2, Y: 0}, {X: 0, Y: 2}, {X: -1, Y: 0}, {X: 0, Y: -1}} {
		var boundsErr *BoundsError
		if _, err := p.CharAt(pos); !errors.As(err, &boundsErr) {
			t.Errorf("CharAt(%v) error = %v, want BoundsError", pos, err)
		}
	}
}

func TestSetCharAt(t *testing.T) {
	p, err := NewPlayfield("ab\ncd", Coord{}, Right)
	if err != nil {
		t.Fatalf("NewPlayfield() error = %v", err)
	}

	if err := p.SetCharAt(Coord{X: 0, Y: 1}, '@'); err != nil {
		t.Fatalf("SetCharAt() error = %v", err)
	}
	c, err := p.CharAt(Coord{X: 0, Y: 1})
	if err != nil {
		t.Fatalf("CharAt() error = %v", err)
	}
	if c != '@' {
		t.Errorf("CharAt(0,1) after write = %q, want %q", c, '@')
	}

	var boundsErr *BoundsError
	if err := p.SetCharAt(Coord{X: 2, Y: 0}, '@'); !errors.As(err, &boundsErr) {
		t.Errorf("SetCharAt(2,0) error = %v, want BoundsError", err)
	}
}

func TestEmptyPlayfield(t *testing.T) {
	p, err := NewPlayfield("", Coord{}, Right)
	if err != nil {
		t.Fatalf("NewPlayfield() error = %v", err)
	}

	if c := p.Current(); c != ' ' {
		t.Errorf("Current() on empty grid = %q, want space", c)
	}

	// Advancing must not panic or move the pointer on a zero-sized grid.
	p.Advance()
	if p.Position() != (Coord{}) {
		t.Errorf("Position() after Advance = %v, want origin", p.Position())
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Direction
		wantErr bool
	}{
		{name: "right", input: "right", want: Right},
		{name: "left", input: "left", want: Left},
		{name: "up", input: "up", want: Up},
		{name: "down", input: "down", want: Down},
		{name: "empty defaults to right", input: "", want: Right},
		{name: "unknown", input: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseDirection() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
