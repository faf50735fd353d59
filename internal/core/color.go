package core

// Color is a semantic color for a screen cell. The platform layer maps each
// value to a terminal color from the active theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorCorrect       // letter in the right spot
	ColorPresent       // letter elsewhere in the word
	ColorAbsent        // letter not in the word
	ColorPending       // typed but not submitted
	ColorBorder        // empty tile outline
	ColorTitle
	ColorError
	ColorMuted
)

// String returns the theme key for the color.
func (c Color) String() string {
	switch c {
	case ColorCorrect:
		return "correct"
	case ColorPresent:
		return "present"
	case ColorAbsent:
		return "absent"
	case ColorPending:
		return "pending"
	case ColorBorder:
		return "border"
	case ColorTitle:
		return "title"
	case ColorError:
		return "error"
	case ColorMuted:
		return "muted"
	default:
		return "default"
	}
}
