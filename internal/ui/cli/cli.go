// Package cli renders keypad layouts and enumeration results on the terminal.
package cli

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chewxy/math32"
	"golang.org/x/term"

	"keywalk/internal/enumerator"
	"keywalk/internal/generics"
	"keywalk/internal/keypad"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

func printCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	blockWidth := 0
	for _, line := range lines {
		if displayWidth(line) > blockWidth {
			blockWidth = displayWidth(line)
		}
	}
	indent := (terminalWidth - blockWidth) / 2
	if indent < 0 {
		indent = 0
	}
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Println()
			continue
		}
		fmt.Printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// UI prints to stdout; with color disabled all lipgloss styling collapses to
// plain text.
type UI struct {
	color bool

	keyStyle, deadStyle, totalStyle lipgloss.Style
}

func New(color bool) *UI {
	ui := &UI{color: color}
	if color {
		ui.keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)
		ui.deadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Faint(true)
		ui.totalStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0")).
			Padding(1, 2)
	} else {
		ui.keyStyle = lipgloss.NewStyle()
		ui.deadStyle = lipgloss.NewStyle()
		ui.totalStyle = lipgloss.NewStyle().Padding(1, 2)
	}
	return ui
}

// PrintLayout renders the keypad, dimming dead keys.
func (ui *UI) PrintLayout(l *keypad.Layout) {
	var b strings.Builder
	for rowIdx := 0; rowIdx < l.Rows(); rowIdx++ {
		cells := make([]string, l.Cols())
		for colIdx := 0; colIdx < l.Cols(); colIdx++ {
			pos := keypad.Pos{rowIdx, colIdx}
			key := l.At(pos)
			if key == l.Sentinel() {
				cells[colIdx] = ui.deadStyle.Render(key.String())
			} else {
				cells[colIdx] = ui.keyStyle.Render(key.String())
			}
		}
		b.WriteString("[ " + strings.Join(cells, " ") + " ]")
		if rowIdx < l.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	fmt.Println()
	printCentered(b.String())
	fmt.Println()
}

// PrintCounts prints the per-starting-key sequence counts in key order,
// followed by the mean and standard deviation across keys.
func (ui *UI) PrintCounts(collection enumerator.Collection) {
	counts := collection.CountByKey()
	for key, count := range generics.SortedKeysAndValues(counts) {
		fmt.Printf("    %s: %d sequences\n", ui.keyStyle.Render(key.String()), count)
	}
	mean, stddev := countStats(counts)
	fmt.Printf("    mean %.1f sequences per starting key (stddev %.1f)\n", mean, stddev)
}

// countStats returns mean and standard deviation of the per-key counts.
func countStats(counts map[keypad.Key]int) (mean, stddev float32) {
	if len(counts) == 0 {
		return 0, 0
	}
	n := float32(len(counts))
	for _, count := range counts {
		mean += float32(count)
	}
	mean /= n
	for _, count := range counts {
		delta := float32(count) - mean
		stddev += delta * delta
	}
	stddev = math32.Sqrt(stddev / n)
	return
}

// PrintTotal prints the final banner with the aggregate sequence count.
func (ui *UI) PrintTotal(total uint64) {
	fmt.Println()
	printCentered(ui.totalStyle.Render(
		fmt.Sprintf("Total number of sequences: %d", total)))
	fmt.Println()
}
