// Package event defines the window event values delivered to user code and
// cameras, along with the manager that lets user code consume an event
// before the cameras see it.
package event

// Action distinguishes press, release and repeat input transitions.
type Action int

const (
	// Release reports a key or button going up.
	Release Action = 0
	// Press reports a key or button going down.
	Press Action = 1
	// Repeat reports a held key generating repeats.
	Repeat Action = 2
)

// Modifiers is a bitmask of modifier keys held during an input event.
type Modifiers int

const (
	// Shift is set when either shift key is held.
	Shift Modifiers = 1 << iota
	// Control is set when either control key is held.
	Control
	// Alt is set when either alt key is held.
	Alt
	// Super is set when either super (OS) key is held.
	Super
)

// MouseButton identifies a mouse button. Numeric values match GLFW.
type MouseButton int

const (
	Button1 MouseButton = iota
	Button2
	Button3
	Button4
	Button5
	Button6
	Button7
	Button8
)

// Kind discriminates the variants of WindowEvent.
type Kind int

const (
	// PosEvent reports the window moving; X, Y hold the new position.
	PosEvent Kind = iota
	// SizeEvent reports the window resizing; Width, Height hold the new
	// logical size.
	SizeEvent
	// CloseEvent reports the window being asked to close.
	CloseEvent
	// RefreshEvent reports the window contents needing a redraw.
	RefreshEvent
	// FocusEvent reports focus gain or loss in Flag.
	FocusEvent
	// IconifyEvent reports minimization state in Flag.
	IconifyEvent
	// FramebufferSizeEvent reports the drawable size changing in pixels.
	FramebufferSizeEvent
	// MouseButtonEvent reports a button transition; Button, Action,
	// Modifiers are set.
	MouseButtonEvent
	// CursorPosEvent reports cursor motion; X, Y hold the new position.
	CursorPosEvent
	// CursorEnterEvent reports the cursor entering or leaving in Flag.
	CursorEnterEvent
	// ScrollEvent reports wheel motion; X, Y hold the scroll offsets.
	ScrollEvent
	// KeyEvent reports a key transition; Key, Action, Modifiers are set.
	KeyEvent
	// CharEvent reports decoded character input in Char.
	CharEvent
)

// WindowEvent is one input or window state change. Only the fields relevant
// to Kind are populated.
type WindowEvent struct {
	Kind      Kind
	X, Y      float64
	Width     int
	Height    int
	Button    MouseButton
	Key       Key
	Action    Action
	Modifiers Modifiers
	Char      rune
	Flag      bool
}
