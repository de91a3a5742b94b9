package convert

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dkoosis/term2md/pkg/style"
)

// Assemble validates the host-provided line sequence and normalizes it.
// Each run's recorded (start, end) offsets must be consistent with its
// text and contiguous with its neighbors; a violation fails with
// MalformedInputError naming the offending line. Adjacent runs sharing
// one exact style are coalesced into a single run, the same grouping the
// capture tool's run builder applies, so downstream stages and the debug
// dump see a canonical run sequence. Soft-wrapped lines stay distinct
// records here so the dump remains faithful to the raw terminal
// structure; rejoining is the renderer's job.
func Assemble(lines []style.Line) ([]style.Line, error) {
	out := make([]style.Line, 0, len(lines))
	for _, line := range lines {
		assembled, err := assembleLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, assembled)
	}
	return out, nil
}

func assembleLine(line style.Line) (style.Line, error) {
	out := style.Line{LineNumber: line.LineNumber, HardEOL: line.HardEOL}
	if len(line.Runs) == 0 {
		return out, nil
	}
	out.Runs = make([]style.Run, 0, len(line.Runs))

	prevEnd := line.Runs[0].Start
	for i, run := range line.Runs {
		if run.Text == "" {
			return style.Line{}, &MalformedInputError{
				Line:   line.LineNumber,
				Reason: fmt.Sprintf("run %d has empty text", i),
			}
		}
		if strings.ContainsRune(run.Text, '\n') {
			return style.Line{}, &MalformedInputError{
				Line:   line.LineNumber,
				Reason: fmt.Sprintf("run %d spans a line boundary", i),
			}
		}
		if run.End-run.Start != run.Len() {
			return style.Line{}, &MalformedInputError{
				Line:   line.LineNumber,
				Reason: fmt.Sprintf("run %d offsets [%d,%d) disagree with text length %d", i, run.Start, run.End, run.Len()),
			}
		}
		if run.Start != prevEnd {
			return style.Line{}, &MalformedInputError{
				Line:   line.LineNumber,
				Reason: fmt.Sprintf("run %d starts at %d, expected %d", i, run.Start, prevEnd),
			}
		}
		prevEnd = run.End
		out.Runs = append(out.Runs, run)
	}

	// Normalize line endings: a trailing carriage return from the capture
	// must not survive past assembly.
	last := &out.Runs[len(out.Runs)-1]
	if trimmed, ok := strings.CutSuffix(last.Text, "\r"); ok {
		if trimmed == "" {
			out.Runs = out.Runs[:len(out.Runs)-1]
		} else {
			last.Text = trimmed
			last.End = last.Start + utf8.RuneCountInString(trimmed)
		}
	}
	return out.Coalesce(), nil
}
