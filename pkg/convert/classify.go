package convert

import "github.com/dkoosis/term2md/pkg/style"

// SpanKind is the final rendering classification of a span of text. Code
// kinds take priority over emphasis kinds: a code-classified span renders
// as literal text inside backticks or fences, never nested emphasis.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanBoldItalic
	SpanUnderline
	SpanStrikethrough
	SpanInlineCode
	SpanCodeBlockLine
)

// String returns the kind name, mostly for debug traces and tests.
func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanBoldItalic:
		return "bold-italic"
	case SpanUnderline:
		return "underline"
	case SpanStrikethrough:
		return "strikethrough"
	case SpanInlineCode:
		return "inline-code"
	case SpanCodeBlockLine:
		return "code-block-line"
	default:
		return "unknown"
	}
}

// ClassifiedSpan is a run of text with its resolved rendering kind.
type ClassifiedSpan struct {
	Text string
	Kind SpanKind
}

// ClassifiedLine is one source line after classification. HardEOL carries
// through from the assembled line so the renderer can rejoin soft wraps.
type ClassifiedLine struct {
	HardEOL bool
	Spans   []ClassifiedSpan
}

// BaselineColor returns the modal foreground color across all runs,
// weighted by character count, with ties broken by first occurrence. An
// input with no runs yields the terminal default.
func BaselineColor(lines []style.Line) style.Color {
	counts := make(map[style.Color]int)
	var order []style.Color
	for _, line := range lines {
		for _, run := range line.Runs {
			c := run.Style.Fg
			if _, seen := counts[c]; !seen {
				order = append(order, c)
			}
			counts[c] += run.Len()
		}
	}
	best := style.Default
	bestCount := -1
	for _, c := range order {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	return best
}

// candidateGroup is a merged span of non-baseline-colored runs, pending
// inline-vs-block classification. A group may cross line boundaries when
// the intervening lines are non-blank and also candidates.
type candidateGroup struct {
	color     style.Color
	length    int // total characters across all member runs
	firstLine int
	lastLine  int
}

func (g *candidateGroup) kind(maxInline int) SpanKind {
	if g.lastLine != g.firstLine || g.length > maxInline {
		return SpanCodeBlockLine
	}
	return SpanInlineCode
}

// pendingSpan is a run awaiting kind resolution. group is nil for
// non-candidate runs, whose emphasis kind is decided immediately.
type pendingSpan struct {
	text  string
	st    style.Style
	group *candidateGroup
}

// Classify resolves the baseline color and tags every run with its final
// rendering kind. Kinds come from two orthogonal signals: color difference
// from the baseline (code detection) and the run's style attributes
// (emphasis). The classifier never fails; absence of color variation
// simply yields zero code spans.
func Classify(lines []style.Line, cfg Config) []ClassifiedLine {
	baseline := BaselineColor(lines)
	if cfg.DefaultFg != nil {
		baseline = *cfg.DefaultFg
	}

	// Pass 1: group candidate runs. A group extends through directly
	// adjacent candidate runs of the same color, including across a line
	// boundary from the last run of one line to the first run of the next.
	pending := make([][]pendingSpan, len(lines))
	var open *candidateGroup // group live at the end of the previous run
	for i, line := range lines {
		if line.IsBlank() {
			open = nil
			continue
		}
		for _, run := range line.Runs {
			candidate := cfg.DetectCodeBlocks && run.Style.Fg != baseline
			if !candidate {
				open = nil
				pending[i] = append(pending[i], pendingSpan{text: run.Text, st: run.Style})
				continue
			}
			if open == nil || open.color != run.Style.Fg {
				open = &candidateGroup{color: run.Style.Fg, firstLine: i, lastLine: i}
			}
			open.length += run.Len()
			open.lastLine = i
			pending[i] = append(pending[i], pendingSpan{text: run.Text, st: run.Style, group: open})
		}
	}

	// Pass 2: materialize spans. Runs belonging to the same group on the
	// same line collapse into one span, so an inline code span covers the
	// whole merged candidate.
	out := make([]ClassifiedLine, len(lines))
	for i, line := range lines {
		out[i].HardEOL = line.HardEOL
		var lastGroup *candidateGroup
		for _, p := range pending[i] {
			if p.group != nil && p.group == lastGroup {
				out[i].Spans[len(out[i].Spans)-1].Text += p.text
				continue
			}
			kind := emphasisKind(p.st, cfg)
			if p.group != nil {
				kind = p.group.kind(cfg.InlineCodeMaxLength)
			}
			out[i].Spans = append(out[i].Spans, ClassifiedSpan{Text: p.text, Kind: kind})
			lastGroup = p.group
		}
	}
	return out
}

// emphasisKind maps style attributes to a single emphasis kind. Bold and
// italic combine; otherwise precedence is bold, italic, underline,
// strikethrough. Faint and inverse carry no Markdown meaning and degrade
// to plain.
func emphasisKind(st style.Style, cfg Config) SpanKind {
	switch {
	case st.Bold && st.Italic:
		return SpanBoldItalic
	case st.Bold:
		return SpanBold
	case st.Italic:
		return SpanItalic
	case st.Underline && cfg.IncludeUnderline:
		return SpanUnderline
	case st.Strikethrough:
		return SpanStrikethrough
	default:
		return SpanPlain
	}
}
