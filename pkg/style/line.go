package style

import "strings"

// Line groups the runs of one visual terminal line. HardEOL marks a
// genuine line break in the source; false marks a terminal soft wrap that
// the renderer rejoins with the following line. Runs may be empty for a
// blank line.
type Line struct {
	LineNumber int   `json:"line_number"`
	HardEOL    bool  `json:"hard_eol"`
	Runs       []Run `json:"runs"`
}

// Text returns the full visible text of the line, the concatenation of
// its runs.
func (l Line) Text() string {
	if len(l.Runs) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, r := range l.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsBlank reports whether the line has no visible text.
func (l Line) IsBlank() bool {
	for _, r := range l.Runs {
		if r.Text != "" {
			return false
		}
	}
	return true
}

// Coalesce merges adjacent runs that share the same style into single
// runs, the way the host's run builder groups equal-styled cells. The
// receiver is not modified.
func (l Line) Coalesce() Line {
	if len(l.Runs) < 2 {
		return l
	}
	out := Line{LineNumber: l.LineNumber, HardEOL: l.HardEOL}
	cur := l.Runs[0]
	for _, r := range l.Runs[1:] {
		if r.Style == cur.Style && r.Start == cur.End {
			cur.Text += r.Text
			cur.End = r.End
			continue
		}
		out.Runs = append(out.Runs, cur)
		cur = r
	}
	out.Runs = append(out.Runs, cur)
	return out
}
