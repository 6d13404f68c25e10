package core

// Action is a semantic input intent, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionSelect         // Space, Enter - pick the piece under the cursor
	ActionBack           // Esc, B - drop the picked piece / leave a menu
	ActionPause          // P - pause/unpause
	ActionRestart        // R - start over with a fresh board
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the phases of a touch or mouse gesture.
type PointerKind int

const (
	PointerPress   PointerKind = iota // Button went down / finger touched
	PointerDrag                       // Moved while held
	PointerRelease                    // Button released
)

// PointerEvent is a pointer sample in screen coordinates.
type PointerEvent struct {
	Kind PointerKind
	At   Point
}

// InputFrame collects everything the player did during one tick.
// Pointer events keep their arrival order; actions are a set.
type InputFrame struct {
	Actions map[Action]bool
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Push appends a pointer event.
func (f *InputFrame) Push(kind PointerKind, at Point) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, At: at})
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}
