package style

// Style holds the text attributes of a single character cell. Styles are
// comparable with == and two styles are equal iff all fields match.
type Style struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Underline     bool  `json:"underline"`
	Strikethrough bool  `json:"strikethrough"`
	Faint         bool  `json:"faint"`
	Inverse       bool  `json:"inverse"`
	Fg            Color `json:"fg_color"`
	Bg            Color `json:"bg_color"`
}

// Attrs returns the names of the attribute flags set on the style, in a
// fixed order. Used by the debug summary.
func (s Style) Attrs() []string {
	var names []string
	if s.Bold {
		names = append(names, "bold")
	}
	if s.Italic {
		names = append(names, "italic")
	}
	if s.Underline {
		names = append(names, "underline")
	}
	if s.Strikethrough {
		names = append(names, "strikethrough")
	}
	if s.Faint {
		names = append(names, "faint")
	}
	if s.Inverse {
		names = append(names, "inverse")
	}
	return names
}
