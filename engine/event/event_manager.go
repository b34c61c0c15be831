package event

// Event is one window event as seen by user code, with an inhibition flag.
// Setting Inhibited before the frame renders keeps the event away from the
// cameras, letting user code claim a click or keypress for itself.
type Event struct {
	// Value is the underlying window event.
	Value WindowEvent
	// Inhibited stops the cameras from reacting to this event when set.
	Inhibited bool
}

// Manager buffers window events between frames. The canvas pushes into its
// channel from input callbacks; user code drains pending events through
// Events; the window collects everything not inhibited once per frame and
// hands it to the cameras.
type Manager struct {
	incoming chan WindowEvent
	pending  []*Event
}

// NewManager creates a manager with the given channel capacity. Events
// overflowing the buffer between frames are dropped.
func NewManager(capacity int) *Manager {
	return &Manager{incoming: make(chan WindowEvent, capacity)}
}

// Push queues an event from an input callback. Safe to call from the
// callback goroutine; drops the event when the buffer is full.
func (m *Manager) Push(we WindowEvent) {
	select {
	case m.incoming <- we:
	default:
	}
}

// Events drains newly arrived events and returns everything still pending
// for this frame. Callers may set Inhibited on the returned records.
func (m *Manager) Events() []*Event {
	m.drain()
	return m.pending
}

// Collect drains remaining events and returns the uninhibited ones, clearing
// the pending list. The window calls this once per frame before forwarding
// to the cameras.
func (m *Manager) Collect() []WindowEvent {
	m.drain()
	out := make([]WindowEvent, 0, len(m.pending))
	for _, ev := range m.pending {
		if !ev.Inhibited {
			out = append(out, ev.Value)
		}
	}
	m.pending = m.pending[:0]
	return out
}

func (m *Manager) drain() {
	for {
		select {
		case we := <-m.incoming:
			m.pending = append(m.pending, &Event{Value: we})
		default:
			return
		}
	}
}
