// Package dump writes the assembled line sequence as a JSON envelope for
// manual or automated inspection, letting the engine be validated without
// re-touching the terminal host integration.
package dump

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/term2md/pkg/style"
)

// PreviewWidth caps the simple-text preview in display cells.
const PreviewWidth = 500

// Envelope is the top-level dump structure.
type Envelope struct {
	Success   bool         `json:"success"`
	Error     string       `json:"error,omitempty"`
	Timestamp string       `json:"timestamp"`
	NumLines  int          `json:"num_lines"`
	Simple    string       `json:"simple_text"`
	Lines     []style.Line `json:"lines"`
}

// New builds an envelope around the assembled lines.
func New(lines []style.Line) Envelope {
	return Envelope{
		Success:   true,
		Timestamp: time.Now().Format(time.RFC3339),
		NumLines:  len(lines),
		Simple:    SimpleText(lines),
		Lines:     lines,
	}
}

// Write emits the envelope as indented JSON.
func Write(w io.Writer, env Envelope) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// SimpleText joins the visible text of all lines with newlines, a quick
// unstyled view of the selection.
func SimpleText(lines []style.Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Text()
	}
	return strings.Join(parts, "\n")
}

// Preview truncates the simple text to PreviewWidth display cells,
// counting wide characters correctly.
func Preview(lines []style.Line) string {
	return runewidth.Truncate(SimpleText(lines), PreviewWidth, "...")
}

// StyleNames returns the attribute names observed across all runs, in a
// fixed order, for the debug summary.
func StyleNames(lines []style.Line) []string {
	seen := make(map[string]bool)
	for _, l := range lines {
		for _, r := range l.Runs {
			for _, name := range r.Style.Attrs() {
				seen[name] = true
			}
		}
	}
	var names []string
	for _, name := range []string{"bold", "italic", "underline", "strikethrough", "faint", "inverse"} {
		if seen[name] {
			names = append(names, name)
		}
	}
	return names
}
