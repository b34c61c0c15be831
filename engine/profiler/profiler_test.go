package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfilerReportsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(20 * time.Millisecond)

	assert.False(t, p.Tick())
	assert.Zero(t, p.LastFPS())

	time.Sleep(25 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.Greater(t, p.LastFPS(), 0.0)

	// The counters reset after a report.
	assert.False(t, p.Tick())
}

func TestProfilerIgnoresNonPositiveInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(0)
	assert.False(t, p.Tick())
}
