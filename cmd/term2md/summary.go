package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/term2md/internal/dump"
	"github.com/dkoosis/term2md/pkg/style"
)

// summaryTheme holds the styles for the stderr debug summary.
type summaryTheme struct {
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
}

func themeFor(w io.Writer) summaryTheme {
	if !isTTYWriter(w) || os.Getenv("NO_COLOR") != "" {
		return summaryTheme{
			Label: lipgloss.NewStyle(),
			Value: lipgloss.NewStyle(),
			Muted: lipgloss.NewStyle(),
		}
	}
	return summaryTheme{
		Label: lipgloss.NewStyle().Bold(true),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
	}
}

// printSummary reports what the conversion saw: line count, the style
// attributes found, and a short preview of the selection text.
func printSummary(w io.Writer, lines []style.Line) {
	t := themeFor(w)
	fmt.Fprintf(w, "%s %s\n", t.Label.Render("Lines:"), t.Value.Render(fmt.Sprintf("%d", len(lines))))

	names := dump.StyleNames(lines)
	if len(names) == 0 {
		fmt.Fprintf(w, "%s %s\n", t.Label.Render("Styles:"), t.Muted.Render("none"))
	} else {
		fmt.Fprintf(w, "%s %s\n", t.Label.Render("Styles:"), t.Value.Render(strings.Join(names, ", ")))
	}

	if preview := dump.Preview(lines); preview != "" {
		fmt.Fprintf(w, "%s\n%s\n", t.Label.Render("Preview:"), t.Muted.Render(preview))
	}
}
