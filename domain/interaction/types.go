package interaction

// State enumerates the gesture states of the editor.
type State int

const (
	StateIdle State = iota
	StateDrawing
	StateMoving
	StateResizing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateMoving:
		return "moving"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Modifiers carries keyboard modifier state alongside an event.
type Modifiers struct {
	Shift bool
}

// Key is an editor key command.
type Key int

const (
	KeyNone Key = iota
	KeyDelete
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyDelete:
		return "delete"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "none"
	}
}

// Nudge step sizes in canvas pixels.
const (
	NudgeStep      = 1.0
	NudgeShiftStep = 10.0
)

// StateListener is called on each state transition.
type StateListener func(prev, next State)
