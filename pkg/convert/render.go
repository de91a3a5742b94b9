package convert

import "strings"

// renderer turns classified lines into the final Markdown string. It is
// invocation-local: a fresh renderer serves exactly one conversion.
type renderer struct {
	cfg   Config
	out   []string // finished output lines
	fence []string // verbatim lines of the currently open code fence
	open  bool     // a fence is accumulating
}

// renderMarkdown produces the Markdown string for the classified lines.
// On an internal invariant violation it returns the best-effort partial
// output together with ErrUnterminatedSpan.
func renderMarkdown(lines []ClassifiedLine, cfg Config) (string, error) {
	r := &renderer{cfg: cfg}
	for _, logical := range joinSoftWraps(lines) {
		r.renderLogicalLine(logical)
	}
	return r.finish()
}

// finish closes any open fence and joins the output. A span still open
// afterwards is an internal invariant violation; the partial output goes
// back to the caller alongside ErrUnterminatedSpan.
func (r *renderer) finish() (string, error) {
	r.flushFence()
	md := strings.Join(r.out, "\n")
	if len(r.fence) > 0 {
		return md, ErrUnterminatedSpan
	}
	return md, nil
}

// joinSoftWraps rejoins soft-wrapped lines into logical paragraph lines,
// inserting a single space at each seam. A seam between two code-block
// spans gets no space: the wrapped code line is re-split at source-line
// boundaries inside the fence instead.
func joinSoftWraps(lines []ClassifiedLine) [][]ClassifiedSpan {
	var logical [][]ClassifiedSpan
	var cur []ClassifiedSpan
	pending := false // cur holds a soft-wrapped prefix
	for i, line := range lines {
		if pending && len(cur) > 0 && len(line.Spans) > 0 {
			last := cur[len(cur)-1]
			first := line.Spans[0]
			if last.Kind != SpanCodeBlockLine || first.Kind != SpanCodeBlockLine {
				cur = append(cur, ClassifiedSpan{Text: " ", Kind: SpanPlain})
			}
		}
		cur = append(cur, line.Spans...)
		if !line.HardEOL && i < len(lines)-1 {
			pending = true
			continue
		}
		logical = append(logical, cur)
		cur = nil
		pending = false
	}
	if cur != nil {
		logical = append(logical, cur)
	}
	return logical
}

// renderLogicalLine walks one logical line's spans in order. Contiguous
// code-block spans accumulate into the open fence; everything else closes
// the fence and renders as a Markdown text line. Blank lines close the
// fence and survive as empty output lines.
func (r *renderer) renderLogicalLine(spans []ClassifiedSpan) {
	if len(spans) == 0 {
		r.flushFence()
		r.out = append(r.out, "")
		return
	}
	var text []ClassifiedSpan
	flushText := func() {
		if len(text) == 0 {
			return
		}
		r.flushFence()
		r.out = append(r.out, r.renderTextLine(text))
		text = nil
	}
	for _, sp := range spans {
		if sp.Kind == SpanCodeBlockLine {
			flushText()
			r.open = true
			r.fence = append(r.fence, sp.Text)
			continue
		}
		text = append(text, sp)
	}
	flushText()
}

// flushFence closes the open code fence, emitting the opening fence line,
// the verbatim content, and the closing fence.
func (r *renderer) flushFence() {
	if !r.open {
		return
	}
	opening := "```" + r.cfg.CodeFenceLanguage
	r.out = append(r.out, opening)
	r.out = append(r.out, r.fence...)
	r.out = append(r.out, "```")
	r.fence = nil
	r.open = false
}

// renderTextLine renders one output line: leading-space stripping,
// same-kind span merging, then delimiter emission with escaping.
func (r *renderer) renderTextLine(spans []ClassifiedSpan) string {
	spans = stripLeadingSpaces(spans, r.cfg.StripLeadingSpaces)
	spans = mergeSameKind(spans)
	var sb strings.Builder
	for _, sp := range spans {
		renderSpan(&sb, sp)
	}
	return sb.String()
}

// stripLeadingSpaces removes up to n leading space characters from the
// start of the line, never erroring when fewer are present. The input
// spans are not modified.
func stripLeadingSpaces(spans []ClassifiedSpan, n int) []ClassifiedSpan {
	out := make([]ClassifiedSpan, len(spans))
	copy(out, spans)
	for n > 0 && len(out) > 0 {
		t := out[0].Text
		trim := 0
		for trim < len(t) && trim < n && t[trim] == ' ' {
			trim++
		}
		if trim == 0 {
			break
		}
		n -= trim
		if trim == len(t) {
			out = out[1:]
			continue
		}
		out[0].Text = t[trim:]
		break
	}
	return out
}

// mergeSameKind folds adjacent spans of identical kind into one delimited
// region, so consecutive same-styled runs produce **ab** rather than
// **a****b**.
func mergeSameKind(spans []ClassifiedSpan) []ClassifiedSpan {
	if len(spans) < 2 {
		return spans
	}
	out := spans[:1]
	for _, sp := range spans[1:] {
		if sp.Kind == out[len(out)-1].Kind {
			out[len(out)-1].Text += sp.Text
			continue
		}
		out = append(out, sp)
	}
	return out
}

// emphasisDelims maps an emphasis kind to its opening and closing
// delimiters. Underline is handled separately (HTML tags).
func emphasisDelims(kind SpanKind) (string, string, bool) {
	switch kind {
	case SpanBold:
		return "**", "**", true
	case SpanItalic:
		return "*", "*", true
	case SpanBoldItalic:
		return "***", "***", true
	case SpanUnderline:
		return "<u>", "</u>", true
	case SpanStrikethrough:
		return "~~", "~~", true
	default:
		return "", "", false
	}
}

// renderSpan appends one span's Markdown to sb. Whitespace at the edges of
// a styled span moves outside the delimiters: Markdown emphasis delimiters
// are invalid when adjacent to whitespace.
func renderSpan(sb *strings.Builder, sp ClassifiedSpan) {
	if sp.Kind == SpanInlineCode {
		sb.WriteString(inlineCode(sp.Text))
		return
	}
	opening, closing, styled := emphasisDelims(sp.Kind)
	if !styled {
		sb.WriteString(escapeMarkdown(sp.Text))
		return
	}
	trimmed := strings.TrimLeft(sp.Text, " \t")
	lead := sp.Text[:len(sp.Text)-len(trimmed)]
	core := strings.TrimRight(trimmed, " \t")
	trail := trimmed[len(core):]
	if core == "" {
		sb.WriteString(sp.Text)
		return
	}
	sb.WriteString(lead)
	sb.WriteString(opening)
	sb.WriteString(escapeMarkdown(core))
	sb.WriteString(closing)
	sb.WriteString(trail)
}

// escapeMarkdown backslash-escapes the Markdown metacharacters *, `, ~
// and _ wherever they are not already escaped. The pass is idempotent:
// re-running it on its own output changes nothing.
func escapeMarkdown(s string) string {
	if !strings.ContainsAny(s, "*`~_") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	prevBackslash := false
	for _, r := range s {
		switch r {
		case '*', '`', '~', '_':
			if !prevBackslash {
				sb.WriteByte('\\')
			}
		}
		sb.WriteRune(r)
		prevBackslash = r == '\\'
	}
	return sb.String()
}

// inlineCode wraps text in backticks. Edge whitespace moves outside the
// delimiters: CommonMark strips one leading and one trailing space from a
// code span, so spaces kept inside would silently vanish on render. If
// the text itself contains a backtick run, the delimiter grows one
// backtick beyond the longest run inside and a space is inserted inside
// each delimiter.
func inlineCode(s string) string {
	trimmed := strings.TrimLeft(s, " \t")
	lead := s[:len(s)-len(trimmed)]
	core := strings.TrimRight(trimmed, " \t")
	trail := trimmed[len(core):]
	if core == "" {
		return s
	}
	longest := longestBacktickRun(core)
	if longest == 0 {
		return lead + "`" + core + "`" + trail
	}
	delim := strings.Repeat("`", longest+1)
	return lead + delim + " " + core + " " + delim + trail
}

func longestBacktickRun(s string) int {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}
