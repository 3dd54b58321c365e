package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	defaultTermWidth = 80

	// minLocationWidth keeps the AT column readable on narrow terminals.
	minLocationWidth = 10
)

var tableHeaderColor = color.New(color.Bold)

// terminalWidth returns the width of the terminal behind w, or 0 when w is
// not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

// truncate shortens s to at most max runes, marking the cut with "...".
// Location tags are free-form text, so cuts never split a character.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max < 4 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// formatLocations renders a project's locations for the AT column.
func formatLocations(at []string, width int) string {
	if len(at) == 0 {
		return "-"
	}
	return truncate(strings.Join(at, ", "), width)
}

// projectTable lays out `whatnow list` rows in aligned columns. Headers are
// bold when writing to a terminal.
type projectTable struct {
	tw    *tabwriter.Writer
	width int
}

func newProjectTable(w io.Writer, headers ...string) *projectTable {
	width := terminalWidth(w)
	styled := width > 0
	if !styled {
		width = defaultTermWidth
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(headers) > 0 {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = h
			if styled {
				row[i] = tableHeaderColor.Sprint(h)
			}
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return &projectTable{tw: tw, width: width}
}

// Row writes one row; cells must not contain tabs.
func (t *projectTable) Row(cells ...string) {
	fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

// LocationWidth is the rune budget for the AT column.
func (t *projectTable) LocationWidth() int {
	return max(t.width/2, minLocationWidth)
}

func (t *projectTable) Flush() error {
	return t.tw.Flush()
}
