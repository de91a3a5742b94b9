package convert

import (
	"unicode/utf8"

	"github.com/dkoosis/term2md/pkg/style"
)

// Shared fixtures for the conversion tests. The terminal's usual white
// foreground plays the baseline; green marks code-colored output.
var (
	white = style.Indexed(7)
	green = style.Indexed(2)
	red   = style.Indexed(1)
)

func fgStyle(c style.Color) style.Style {
	return style.Style{Fg: c}
}

func styledRun(text string, st style.Style, start int) style.Run {
	return style.Run{
		Text:  text,
		Style: st,
		Start: start,
		End:   start + utf8.RuneCountInString(text),
	}
}

// textRun is a plain white run, the common case.
func textRun(text string, start int) style.Run {
	return styledRun(text, fgStyle(white), start)
}

func hardLine(n int, runs ...style.Run) style.Line {
	return style.Line{LineNumber: n, HardEOL: true, Runs: runs}
}

func softLine(n int, runs ...style.Run) style.Line {
	return style.Line{LineNumber: n, HardEOL: false, Runs: runs}
}
