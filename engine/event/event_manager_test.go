package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerEventsDrainsPushed(t *testing.T) {
	m := NewManager(8)
	m.Push(WindowEvent{Kind: KeyEvent, Key: KeyA, Action: Press})
	m.Push(WindowEvent{Kind: ScrollEvent, Y: 1})

	evs := m.Events()
	require.Len(t, evs, 2)
	assert.Equal(t, KeyEvent, evs[0].Value.Kind)
	assert.Equal(t, ScrollEvent, evs[1].Value.Kind)

	// The same events stay pending until the frame collects them.
	assert.Len(t, m.Events(), 2)
}

func TestManagerCollectFiltersInhibited(t *testing.T) {
	m := NewManager(8)
	m.Push(WindowEvent{Kind: KeyEvent, Key: KeyA, Action: Press})
	m.Push(WindowEvent{Kind: KeyEvent, Key: KeyB, Action: Press})

	evs := m.Events()
	require.Len(t, evs, 2)
	evs[0].Inhibited = true

	collected := m.Collect()
	require.Len(t, collected, 1)
	assert.Equal(t, KeyB, collected[0].Key)
}

func TestManagerCollectClearsPending(t *testing.T) {
	m := NewManager(8)
	m.Push(WindowEvent{Kind: RefreshEvent})

	assert.Len(t, m.Collect(), 1)
	assert.Empty(t, m.Collect())
	assert.Empty(t, m.Events())
}

func TestManagerCollectSeesUndrainedEvents(t *testing.T) {
	// Collect picks up events pushed since the last Events call, so cameras
	// keep working even when user code never drains the queue.
	m := NewManager(8)
	m.Push(WindowEvent{Kind: CursorPosEvent, X: 3, Y: 4})

	collected := m.Collect()
	require.Len(t, collected, 1)
	assert.Equal(t, 3.0, collected[0].X)
}

func TestManagerDropsOnOverflow(t *testing.T) {
	m := NewManager(2)
	m.Push(WindowEvent{Kind: CharEvent, Char: 'a'})
	m.Push(WindowEvent{Kind: CharEvent, Char: 'b'})
	m.Push(WindowEvent{Kind: CharEvent, Char: 'c'})

	evs := m.Events()
	require.Len(t, evs, 2)
	assert.Equal(t, 'a', evs[0].Value.Char)
	assert.Equal(t, 'b', evs[1].Value.Char)
}
