package befunge

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// instrStyle for the instruction executed at each step
	instrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	// pointerStyle highlights the cell under the instruction pointer
	pointerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("63"))

	// modeStyle marks steps taken in string or bridge mode
	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// fieldBoxStyle frames the playfield dump at the start of a trace
	fieldBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// FormatField renders the playfield with the instruction pointer's cell
// highlighted.
func FormatField(w io.Writer, p *Playfield) {
	if p.height == 0 {
		fmt.Fprintln(w, fieldBoxStyle.Render(dimStyle.Render("(empty playfield)")))
		return
	}

	var sb strings.Builder
	for y, row := range p.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, c := range row {
			if p.pos.X == int64(x) && p.pos.Y == int64(y) {
				sb.WriteString(pointerStyle.Render(string(c)))
			} else {
				sb.WriteRune(c)
			}
		}
	}
	fmt.Fprintln(w, fieldBoxStyle.Render(sb.String()))
}

// FormatStep renders one executed step: pointer position, the fetched
// character, the mode it left behind, and the stack after the effect.
func FormatStep(w io.Writer, p *Playfield, c rune, mode Mode, values []int64) {
	pos := dimStyle.Render(fmt.Sprintf("(%3d,%3d)", p.pos.X, p.pos.Y))

	instr := instrStyle.Render(string(c))
	if c == ' ' {
		instr = dimStyle.Render("␣")
	}

	var modeNote string
	if mode != ModeCommand {
		modeNote = "  " + modeStyle.Render(mode.String())
	}

	fmt.Fprintf(w, "%s %s%s  %s %v\n", pos, instr, modeNote, dimStyle.Render("stack:"), values)
}
