package style

import "unicode/utf8"

// Run is a maximal contiguous span of text sharing one exact style.
// Start and End are character offsets within the owning line, as recorded
// by the host. End-Start must equal the rune count of Text; the assembler
// validates this before conversion.
type Run struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Style Style  `json:"style"`
}

// Len returns the length of the run's text in characters.
func (r Run) Len() int {
	return utf8.RuneCountInString(r.Text)
}
