package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/term2md/pkg/style"
)

func mustConvert(t *testing.T, cfg Config, lines ...style.Line) string {
	t.Helper()
	res, err := Convert(lines, cfg)
	require.NoError(t, err)
	return res.Markdown
}

func TestConvert_RendersBoldRun_InsidePlainText(t *testing.T) {
	t.Parallel()

	boldWhite := style.Style{Bold: true, Fg: white}
	md := mustConvert(t, DefaultConfig(),
		hardLine(0,
			textRun("  This is ", 0),
			styledRun("bold", boldWhite, 10),
			textRun(" text", 14),
		),
	)
	assert.Equal(t, "This is **bold** text", md)
}

func TestConvert_RendersShortColoredRun_AsInlineCode(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.DefaultFg = &white
	md := mustConvert(t, cfg,
		hardLine(0, styledRun("print('hi')", fgStyle(green), 0)),
	)
	assert.Equal(t, "`print('hi')`", md)
}

func TestConvert_RendersMultiLineColoredRuns_AsOneFencedBlock(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.DefaultFg = &white
	md := mustConvert(t, cfg,
		hardLine(0, styledRun("def greet():", fgStyle(green), 0)),
		hardLine(1, styledRun("    print('hi')", fgStyle(green), 0)),
		hardLine(2, styledRun("greet()", fgStyle(green), 0)),
	)
	want := strings.Join([]string{
		"```",
		"def greet():",
		"    print('hi')",
		"greet()",
		"```",
	}, "\n")
	assert.Equal(t, want, md)
}

func TestConvert_EscapesMarkdownMetacharacters_InPlainText(t *testing.T) {
	t.Parallel()

	md := mustConvert(t, DefaultConfig(),
		hardLine(0, textRun("50% *done*", 0)),
	)
	assert.Equal(t, `50% \*done\*`, md)
}

func TestConvert_Fails_When_InputIsEmpty(t *testing.T) {
	t.Parallel()

	res, err := Convert(nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, res.Markdown)
}

func TestConvert_MergesAdjacentBoldRuns_IntoOneRegion(t *testing.T) {
	t.Parallel()

	boldWhite := style.Style{Bold: true, Fg: white}
	md := mustConvert(t, DefaultConfig(),
		hardLine(0,
			styledRun("foo", boldWhite, 0),
			styledRun("bar", boldWhite, 3),
		),
	)
	assert.Equal(t, "**foobar**", md)
}

func TestConvert_RejoinsSoftWrappedLines_WithSingleSpace(t *testing.T) {
	t.Parallel()

	md := mustConvert(t, DefaultConfig(),
		softLine(0, textRun("a paragraph that the terminal", 0)),
		hardLine(1, textRun("wrapped onto a second row", 0)),
	)
	assert.Equal(t, "a paragraph that the terminal wrapped onto a second row", md)
}

func TestConvert_PropagatesMalformedInput_WithLineNumber(t *testing.T) {
	t.Parallel()

	bad := style.Run{Text: "abc", Start: 0, End: 9, Style: fgStyle(white)}
	_, err := Convert([]style.Line{{LineNumber: 7, HardEOL: true, Runs: []style.Run{bad}}}, DefaultConfig())

	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 7, malformed.Line)
}

func TestConvert_IsDeterministic(t *testing.T) {
	t.Parallel()

	boldWhite := style.Style{Bold: true, Fg: white}
	lines := []style.Line{
		hardLine(0, textRun("  intro with ", 0), styledRun("emphasis", boldWhite, 13)),
		hardLine(1, styledRun("some_code(1)", fgStyle(green), 0)),
		hardLine(2),
		hardLine(3, textRun("closing *remark*", 0)),
	}
	first := mustConvert(t, DefaultConfig(), lines...)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, mustConvert(t, DefaultConfig(), lines...))
	}
}

func TestConvert_ReturnsAssembledLines_When_DebugSet(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Debug = true
	res, err := Convert([]style.Line{hardLine(0, textRun("text", 0))}, cfg)
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, "text", res.Lines[0].Text())

	cfg.Debug = false
	res, err = Convert([]style.Line{hardLine(0, textRun("text", 0))}, cfg)
	require.NoError(t, err)
	assert.Nil(t, res.Lines)
}

func TestConvert_StrippedIndentation_RoundTrips(t *testing.T) {
	t.Parallel()

	// Re-adding the configured strip amount to every non-empty output
	// line must reconstruct the original leading whitespace.
	cfg := DefaultConfig()
	cfg.StripLeadingSpaces = 2
	original := []string{
		"  first line",
		"    indented further",
		"  back out",
	}
	var lines []style.Line
	for i, text := range original {
		lines = append(lines, hardLine(i, textRun(text, 0)))
	}
	md := mustConvert(t, cfg, lines...)
	var rebuilt []string
	for _, out := range strings.Split(md, "\n") {
		rebuilt = append(rebuilt, "  "+out)
	}
	assert.Equal(t, original, rebuilt)
}

func TestConvert_CodeDetectionAndEmphasis_StayOrthogonal(t *testing.T) {
	t.Parallel()

	// A bold run at baseline color renders as emphasis even while code
	// detection is active elsewhere on the line.
	cfg := DefaultConfig()
	cfg.DefaultFg = &white
	boldGreen := style.Style{Bold: true, Fg: green}
	boldWhite := style.Style{Bold: true, Fg: white}
	md := mustConvert(t, cfg,
		hardLine(0,
			styledRun("note", boldWhite, 0),
			textRun(" run ", 4),
			styledRun("ls -la", boldGreen, 9),
		),
	)
	// Bold on the code span is ignored: code classification has priority.
	assert.Equal(t, "**note** run `ls -la`", md)
}
