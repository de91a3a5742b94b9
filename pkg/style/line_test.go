package style

import (
	"reflect"
	"testing"
)

func mkRun(text string, st Style, start int) Run {
	return Run{Text: text, Style: st, Start: start, End: start + len([]rune(text))}
}

func TestLineText_ConcatenatesRuns(t *testing.T) {
	l := Line{Runs: []Run{
		mkRun("hello ", Style{}, 0),
		mkRun("world", Style{Bold: true}, 6),
	}}
	if got := l.Text(); got != "hello world" {
		t.Errorf("Text() = %q, want %q", got, "hello world")
	}
	if (Line{}).Text() != "" {
		t.Error("empty line should have empty text")
	}
}

func TestLineIsBlank(t *testing.T) {
	if !(Line{}).IsBlank() {
		t.Error("line without runs should be blank")
	}
	l := Line{Runs: []Run{mkRun("x", Style{}, 0)}}
	if l.IsBlank() {
		t.Error("line with text should not be blank")
	}
}

func TestLineCoalesce_MergesEqualStyledNeighbors(t *testing.T) {
	bold := Style{Bold: true}
	l := Line{Runs: []Run{
		mkRun("foo", bold, 0),
		mkRun("bar", bold, 3),
		mkRun("!", Style{}, 6),
	}}
	got := l.Coalesce()
	want := []Run{
		{Text: "foobar", Style: bold, Start: 0, End: 6},
		{Text: "!", Style: Style{}, Start: 6, End: 7},
	}
	if !reflect.DeepEqual(got.Runs, want) {
		t.Errorf("Coalesce() = %+v, want %+v", got.Runs, want)
	}
	// the receiver stays untouched
	if len(l.Runs) != 3 {
		t.Error("Coalesce modified its receiver")
	}
}

func TestStyleAttrs(t *testing.T) {
	st := Style{Bold: true, Strikethrough: true, Inverse: true}
	got := st.Attrs()
	want := []string{"bold", "strikethrough", "inverse"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Attrs() = %v, want %v", got, want)
	}
	if (Style{}).Attrs() != nil {
		t.Error("plain style should report no attrs")
	}
}
