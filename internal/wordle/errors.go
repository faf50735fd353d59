package wordle

import "errors"

// Submission failures. All are recoverable and leave the engine unchanged.
var (
	ErrTooShort        = errors.New("wordle: not enough letters")
	ErrNotInDictionary = errors.New("wordle: not in word list")
	ErrGameAlreadyOver = errors.New("wordle: game is already over")
	ErrInvalidTarget   = errors.New("wordle: invalid target word")
)

// ErrorKind returns a stable tag for a submission error, for transports that
// need to serialize it. Unknown errors map to "internal".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTooShort):
		return "too_short"
	case errors.Is(err, ErrNotInDictionary):
		return "not_in_dictionary"
	case errors.Is(err, ErrGameAlreadyOver):
		return "game_over"
	case errors.Is(err, ErrInvalidTarget):
		return "invalid_target"
	default:
		return "internal"
	}
}
