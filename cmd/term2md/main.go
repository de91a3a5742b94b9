// term2md converts a styled terminal selection, captured as a JSON dump
// of per-character style runs, into Markdown text.
//
// Usage:
//
//	term2md < selection.json
//	term2md -input selection.json -output selection.md
//	term2md -dump lines.json -debug < selection.json
//
// Accepts two input shapes on stdin or -input: the full dump envelope
// ({"lines": [...]}) or a bare line array ([...]).
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/term2md/internal/config"
	"github.com/dkoosis/term2md/internal/dump"
	"github.com/dkoosis/term2md/internal/version"
	"github.com/dkoosis/term2md/pkg/convert"
	"github.com/dkoosis/term2md/pkg/style"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("term2md", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputFlag := fs.String("input", "-", "Input JSON file ('-' for stdin)")
	outputFlag := fs.String("output", "-", "Output Markdown file ('-' for stdout)")
	dumpFlag := fs.String("dump", "", "Also write the assembled lines as a JSON dump to this file")
	stripFlag := fs.Int("strip", convert.DefaultStripLeadingSpaces, "Leading spaces stripped from each line")
	inlineMaxFlag := fs.Int("inline-max", convert.DefaultInlineCodeMaxLength, "Longest code span still rendered inline")
	fenceLangFlag := fs.String("fence-lang", "", "Language hint for code fences")
	fgFlag := fs.String("fg", "auto", "Baseline foreground color: auto, default, indexed:N, #RRGGBB")
	noCodeFlag := fs.Bool("no-code-detect", false, "Disable color-signal code detection")
	noUnderlineFlag := fs.Bool("no-underline", false, "Drop underline styling")
	debugFlag := fs.Bool("debug", false, "Print a conversion summary to stderr")
	versionFlag := fs.Bool("version", false, "Print version information and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	cliFlags := config.CliFlags{
		Strip:        *stripFlag,
		InlineMax:    *inlineMaxFlag,
		FenceLang:    *fenceLangFlag,
		DefaultFg:    *fgFlag,
		NoCodeDetect: *noCodeFlag,
		NoUnderline:  *noUnderlineFlag,
		Debug:        *debugFlag,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strip":
			cliFlags.StripSet = true
		case "inline-max":
			cliFlags.InlineMaxSet = true
		case "fence-lang":
			cliFlags.FenceLangSet = true
		case "fg":
			cliFlags.DefaultFgSet = true
		case "no-code-detect":
			cliFlags.NoCodeDetectSet = true
		case "no-underline":
			cliFlags.NoUnderlineSet = true
		case "debug":
			cliFlags.DebugSet = true
		}
	})

	cfg, err := config.MergeWithFlags(config.LoadConfig(), cliFlags)
	if err != nil {
		fmt.Fprintf(stderr, "term2md: %v\n", err)
		return 2
	}
	// The dump and the summary both need the assembled lines back.
	wantSummary := cfg.Debug
	if *dumpFlag != "" {
		cfg.Debug = true
	}

	lines, code := readLines(*inputFlag, stdin, stderr)
	if code >= 0 {
		return code
	}

	res, err := convert.Convert(lines, cfg)
	switch {
	case errors.Is(err, convert.ErrEmptyInput):
		fmt.Fprintln(stderr, "term2md: nothing to convert")
		return 1
	case errors.Is(err, convert.ErrUnterminatedSpan):
		// Defect, not a user error: keep the partial output.
		fmt.Fprintf(stderr, "term2md: warning: %v (output may be incomplete)\n", err)
	case err != nil:
		fmt.Fprintf(stderr, "term2md: %v\n", err)
		return 2
	}

	if err := writeMarkdown(*outputFlag, stdout, res.Markdown); err != nil {
		fmt.Fprintf(stderr, "term2md: writing output: %v\n", err)
		return 2
	}

	if *dumpFlag != "" {
		if err := writeDump(*dumpFlag, res.Lines); err != nil {
			fmt.Fprintf(stderr, "term2md: writing dump: %v\n", err)
			return 2
		}
	}

	if wantSummary {
		printSummary(stderr, res.Lines)
	}
	return 0
}

// readLines reads and decodes the input JSON.
// Returns (lines, -1) on success; (nil, exitCode) on error.
func readLines(path string, stdin io.Reader, stderr io.Writer) ([]style.Line, int) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(stderr, "term2md: reading input: %v\n", err)
		return nil, 2
	}
	lines, captureErr, err := decodeLines(data)
	if err != nil {
		fmt.Fprintf(stderr, "term2md: parsing input: %v\n", err)
		return nil, 2
	}
	if captureErr != "" {
		fmt.Fprintf(stderr, "term2md: capture reported: %s\n", captureErr)
	}
	return lines, -1
}

// decodeLines accepts either the dump envelope or a bare line array. A
// failure envelope (success false, absent or null lines) decodes to zero
// lines plus the capture tool's own error message, so the caller can
// surface it and fall through to the empty-input path.
func decodeLines(data []byte) ([]style.Line, string, error) {
	var envelope struct {
		Success *bool        `json:"success"`
		Error   string       `json:"error"`
		Lines   []style.Line `json:"lines"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Lines != nil {
			return envelope.Lines, "", nil
		}
		if envelope.Success != nil {
			return nil, envelope.Error, nil
		}
	}
	var lines []style.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, "", fmt.Errorf("expected a dump envelope or a line array: %w", err)
	}
	return lines, "", nil
}

func writeMarkdown(path string, stdout io.Writer, md string) error {
	if md != "" {
		md += "\n"
	}
	if path == "-" {
		_, err := io.WriteString(stdout, md)
		return err
	}
	return os.WriteFile(path, []byte(md), 0o644)
}

func writeDump(path string, lines []style.Line) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dump.Write(f, dump.New(lines))
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
