package led

import (
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-runewidth"
)

var (
	litStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	darkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Preview draws the indicators as a single line of text, redrawn in place on
// every Set. It stands in for the console driver on terminals that are not
// a virtual console.
type Preview struct {
	out       io.Writer
	nameWidth int
	drawn     bool
}

// NewPreview returns a Preview writing to out. Styling is downsampled to what
// out supports, and dropped entirely when out is not a terminal or NO_COLOR
// is set.
func NewPreview(out io.Writer) *Preview {
	return newPreview(out, os.Environ())
}

func newPreview(out io.Writer, environ []string) *Preview {
	width := 0
	for _, ind := range indicators {
		width = max(width, runewidth.StringWidth(label(ind)))
	}
	return &Preview{out: colorprofile.NewWriter(out, environ), nameWidth: width}
}

func (p *Preview) Set(pattern Pattern) error {
	var b strings.Builder
	b.WriteString("\r")
	for i, ind := range indicators {
		if i > 0 {
			b.WriteString("  ")
		}
		name := label(ind)
		if i < len(indicators)-1 {
			name = runewidth.FillRight(name, p.nameWidth)
		}
		if pattern&ind != 0 {
			b.WriteString(litStyle.Render("[x] " + name))
		} else {
			b.WriteString(darkStyle.Render("[ ] " + name))
		}
	}
	p.drawn = true
	_, err := io.WriteString(p.out, b.String())
	return err
}

// Close moves the cursor past the preview line.
func (p *Preview) Close() error {
	if !p.drawn {
		return nil
	}
	p.drawn = false
	_, err := io.WriteString(p.out, "\n")
	return err
}

func label(p Pattern) string {
	switch p {
	case Scroll:
		return "Scroll"
	case Num:
		return "Num"
	case Caps:
		return "Caps"
	default:
		return p.String()
	}
}
