package convert

import "github.com/dkoosis/term2md/pkg/style"

// Constants for default values.
const (
	DefaultStripLeadingSpaces  = 2
	DefaultInlineCodeMaxLength = 60
)

// Config holds the recognized conversion options. The zero value is not
// useful; start from DefaultConfig.
type Config struct {
	// StripLeadingSpaces is the number of leading space characters removed
	// from each non-empty logical line before rendering. Indentation
	// beyond this amount is preserved verbatim.
	StripLeadingSpaces int

	// DetectCodeBlocks enables color-signal code detection.
	DetectCodeBlocks bool

	// InlineCodeMaxLength is the longest candidate code span, in
	// characters, still rendered inline. Longer or multi-line spans render
	// as a fenced block.
	InlineCodeMaxLength int

	// DefaultFg is the foreground color treated as "no special styling".
	// Nil means auto: the modal foreground color across all runs.
	DefaultFg *style.Color

	// IncludeUnderline controls whether underline styling is rendered.
	// When false, underlined spans degrade to plain text.
	IncludeUnderline bool

	// CodeFenceLanguage is the info string placed on opening code fences.
	// Empty means no language hint.
	CodeFenceLanguage string

	// Debug makes Convert also return the assembled line sequence for
	// inspection.
	Debug bool
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		StripLeadingSpaces:  DefaultStripLeadingSpaces,
		DetectCodeBlocks:    true,
		InlineCodeMaxLength: DefaultInlineCodeMaxLength,
		IncludeUnderline:    true,
	}
}
