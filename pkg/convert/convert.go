// Package convert implements the style-to-Markdown translation engine: it
// takes a sequence of styled text runs grouped into lines, as captured
// from a terminal selection, and produces a single Markdown string.
// Conversion is a pure function of its inputs: deterministic, no hidden
// state, no I/O. Each invocation is independent, so conversions may run
// concurrently.
package convert

import "github.com/dkoosis/term2md/pkg/style"

// Result is the outcome of one conversion. Lines holds the assembled
// intermediate representation when Config.Debug is set; it re-serializes
// to the same JSON schema the host's dump tool emits.
type Result struct {
	Markdown string
	Lines    []style.Line
}

// Convert runs the full pipeline: assembly, code-span classification,
// Markdown rendering.
//
// A zero-length input fails with ErrEmptyInput. Structurally inconsistent
// run data fails with a MalformedInputError naming the offending line. An
// ErrUnterminatedSpan is returned together with the best-effort partial
// result, never instead of it.
func Convert(lines []style.Line, cfg Config) (Result, error) {
	if len(lines) == 0 {
		return Result{}, ErrEmptyInput
	}
	assembled, err := Assemble(lines)
	if err != nil {
		return Result{}, err
	}
	classified := Classify(assembled, cfg)
	md, err := renderMarkdown(classified, cfg)
	res := Result{Markdown: md}
	if cfg.Debug {
		res.Lines = assembled
	}
	return res, err
}
