package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionType           // a letter key, edited through the text field
	ActionDelete         // Backspace - remove the last typed letter
	ActionSubmit         // Enter - submit the current guess
	ActionNewGame        // Ctrl+N - start a fresh game once decided
	ActionHelp           // ? - toggle the full help view
	ActionBack           // Esc - back to the menu
	ActionQuit           // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionType:
		return "Type"
	case ActionDelete:
		return "Delete"
	case ActionSubmit:
		return "Submit"
	case ActionNewGame:
		return "NewGame"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is one translated key press.
type InputEvent struct {
	Action Action
}
