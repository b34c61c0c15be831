// Package engine provides the top-level run loop tying a window, an
// application state and a fixed-rate logic tick together.
package engine

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/profiler"
	"github.com/Carmen-Shannon/glint-go/engine/window"
)

// State is the per-frame hook of the run loop. Step runs once per rendered
// frame, after the events of the previous frame were delivered to the
// cameras and before the next frame is drawn.
type State interface {
	Step(w *window.Window)
}

// CameraProvider is an optional State extension overriding the cameras used
// for rendering. Return nil for either camera to keep the window's own.
type CameraProvider interface {
	Cameras() (camera.Camera, camera.PlanarCamera)
}

// engine implements the Engine interface. Rendering happens on the
// goroutine that calls Run, which owns the OS thread of the OpenGL context;
// only the logic tick runs concurrently.
type engine struct {
	tickRateChannel chan time.Duration

	wg       sync.WaitGroup
	quitChan chan struct{}
	quitOnce sync.Once

	window *window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickRate     time.Duration
	tickCallback func(deltaTime float32)
}

// Engine orchestrates the render loop, the fixed-rate logic tick and window
// shutdown.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - *window.Window: the window instance
	Window() *window.Window

	// EnableProfiler enables frame statistics output to the log.
	EnableProfiler()

	// DisableProfiler disables frame statistics output.
	DisableProfiler()

	// SetTickRate sets the logic tick rate in ticks per second. Takes
	// effect immediately when the engine is running.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each logic tick. Use
	// this for simulation updates independent of the frame rate.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Run drives the render loop with the given state until the window
	// closes or Quit is called. Blocks; must run on the goroutine that
	// created the window. A nil state renders the scene without a
	// per-frame hook.
	Run(state State)

	// Quit asks the run loop to stop after the current frame. Safe to call
	// multiple times and from any goroutine.
	Quit()
}

// NewEngine creates an Engine around an existing window.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChan:        make(chan struct{}),
		profiler:        profiler.NewProfiler(),
		tickRate:        time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		e.window = window.NewWindow()
	}

	return e
}

func (e *engine) Window() *window.Window {
	return e.window
}

func (e *engine) Run(state State) {
	e.wg.Add(1)
	go e.handleTick()
	defer func() {
		e.signalQuit()
		e.wg.Wait()
	}()

	provider, _ := state.(CameraProvider)

	for {
		select {
		case <-e.quitChan:
			e.window.Close()
			// Drive one more frame so the window observes the close
			// request and tears down its resources.
			e.window.Render()
			return
		default:
		}

		cam, planarCam := e.window.Cameras()
		if provider != nil {
			if c, pc := provider.Cameras(); c != nil || pc != nil {
				if c != nil {
					cam = c
				}
				if pc != nil {
					planarCam = pc
				}
			}
		}

		if !e.window.RenderWithCameras(cam, planarCam) {
			return
		}
		if state != nil {
			state.Step(e.window)
		}
		if e.profilingEnabled {
			e.profiler.Tick()
		}
	}
}

// Quit signals the run loop to stop. Safe to call multiple times.
func (e *engine) Quit() {
	e.signalQuit()
}

func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChan)
	})
}

// handleTick runs the fixed-rate logic tick in its own goroutine, listening
// for dynamic rate changes via tickRateChannel. Exits when the quit channel
// is closed.
func (e *engine) handleTick() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.tickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChan:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.tickRate = newRate
		}
	}
}

// EnableProfiler enables frame statistics output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables frame statistics output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the logic tick rate in ticks per second. The running
// tick loop picks the change up through a non-blocking channel send; a
// pending unapplied update is replaced.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

// SetTickCallback registers the function called each logic tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}
