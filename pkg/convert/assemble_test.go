package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/term2md/pkg/style"
)

func TestAssemble_PassesThrough_When_RunsAreConsistent(t *testing.T) {
	t.Parallel()

	in := []style.Line{
		hardLine(0, textRun("hello ", 0), textRun("world", 6)),
		hardLine(1),
		softLine(2, textRun("wrapped", 0)),
	}
	out, err := Assemble(in)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "hello world", out[0].Text())
	assert.True(t, out[1].IsBlank())
	assert.False(t, out[2].HardEOL)
}

func TestAssemble_Fails_When_OffsetsDisagreeWithText(t *testing.T) {
	t.Parallel()

	bad := style.Run{Text: "abc", Start: 0, End: 5, Style: fgStyle(white)}
	_, err := Assemble([]style.Line{{LineNumber: 4, HardEOL: true, Runs: []style.Run{bad}}})

	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 4, malformed.Line)
}

func TestAssemble_Fails_When_RunsAreNotContiguous(t *testing.T) {
	t.Parallel()

	_, err := Assemble([]style.Line{
		hardLine(0, textRun("ab", 0), textRun("cd", 5)),
	})
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 0, malformed.Line)
}

func TestAssemble_Fails_When_RunTextIsEmpty(t *testing.T) {
	t.Parallel()

	empty := style.Run{Text: "", Start: 0, End: 0, Style: fgStyle(white)}
	_, err := Assemble([]style.Line{{LineNumber: 1, Runs: []style.Run{empty}}})
	var malformed *MalformedInputError
	assert.True(t, errors.As(err, &malformed))
}

func TestAssemble_Fails_When_RunSpansLineBoundary(t *testing.T) {
	t.Parallel()

	_, err := Assemble([]style.Line{
		hardLine(2, styledRun("one\ntwo", fgStyle(white), 0)),
	})
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Line)
}

func TestAssemble_StripsTrailingCarriageReturn(t *testing.T) {
	t.Parallel()

	out, err := Assemble([]style.Line{
		hardLine(0, textRun("crlf line\r", 0)),
	})
	require.NoError(t, err)
	assert.Equal(t, "crlf line", out[0].Text())
	assert.Equal(t, 9, out[0].Runs[0].End)
}

func TestAssemble_DropsRun_When_OnlyCarriageReturn(t *testing.T) {
	t.Parallel()

	out, err := Assemble([]style.Line{
		hardLine(0, textRun("text", 0), textRun("\r", 4)),
	})
	require.NoError(t, err)
	require.Len(t, out[0].Runs, 1)
	assert.Equal(t, "text", out[0].Text())
}

func TestAssemble_CoalescesAdjacentRuns_When_StylesAreIdentical(t *testing.T) {
	t.Parallel()

	bold := style.Style{Bold: true, Fg: white}
	in := []style.Line{
		hardLine(0,
			textRun("hello ", 0),
			textRun("there ", 6),
			styledRun("big ", bold, 12),
			styledRun("deal", bold, 16),
		),
	}
	out, err := Assemble(in)
	require.NoError(t, err)
	require.Len(t, out[0].Runs, 2)
	assert.Equal(t, "hello there ", out[0].Runs[0].Text)
	assert.Equal(t, "big deal", out[0].Runs[1].Text)
	assert.Equal(t, 12, out[0].Runs[0].End)
	assert.Equal(t, 20, out[0].Runs[1].End)
}

func TestAssemble_CoalescesAcrossCarriageReturnTrim(t *testing.T) {
	t.Parallel()

	// The \r-only tail run disappears during normalization; the survivors
	// still coalesce into one canonical run.
	out, err := Assemble([]style.Line{
		hardLine(0, textRun("one ", 0), textRun("two", 4), textRun("\r", 7)),
	})
	require.NoError(t, err)
	require.Len(t, out[0].Runs, 1)
	assert.Equal(t, "one two", out[0].Runs[0].Text)
	assert.Equal(t, 7, out[0].Runs[0].End)
}

func TestAssemble_TreatsSoftWrapAsDistinctLine(t *testing.T) {
	t.Parallel()

	// Soft-wrapped lines must survive assembly unjoined so the debug
	// dump stays faithful to the raw terminal structure.
	in := []style.Line{
		softLine(0, textRun("first half ", 0)),
		hardLine(1, textRun("second half", 0)),
	}
	out, err := Assemble(in)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "first half ", out[0].Text())
}
