package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// canvas owns the GLFW window and its OpenGL context. Input callbacks are
// translated into event.WindowEvent values and pushed into the event
// manager; the last seen key and button states are kept for the cameras to
// poll between events.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
type canvas struct {
	window       *glfw.Window
	events       *event.Manager
	keyStates    map[event.Key]event.Action
	buttonStates map[event.MouseButton]event.Action
	cursorPos    [2]float64
}

// newCanvas creates the GLFW window with a core-profile OpenGL 4.1 context
// and registers the input callbacks. Must be called from the main goroutine;
// the rendering thread is locked to the OS thread.
func newCanvas(title string, width, height int, hidden bool, events *event.Manager) (*canvas, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	c := &canvas{
		window:       win,
		events:       events,
		keyStates:    make(map[event.Key]event.Action),
		buttonStates: make(map[event.MouseButton]event.Action),
	}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k := event.Key(key)
		a := event.Action(action)
		if a != event.Repeat {
			c.keyStates[k] = a
		}
		events.Push(event.WindowEvent{
			Kind:      event.KeyEvent,
			Key:       k,
			Action:    a,
			Modifiers: convertModifiers(mods),
		})
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b := event.MouseButton(button)
		a := event.Action(action)
		c.buttonStates[b] = a
		events.Push(event.WindowEvent{
			Kind:      event.MouseButtonEvent,
			Button:    b,
			Action:    a,
			Modifiers: convertModifiers(mods),
		})
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		c.cursorPos = [2]float64{xpos, ypos}
		events.Push(event.WindowEvent{Kind: event.CursorPosEvent, X: xpos, Y: ypos})
	})

	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		events.Push(event.WindowEvent{Kind: event.CursorEnterEvent, Flag: entered})
	})

	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		events.Push(event.WindowEvent{Kind: event.ScrollEvent, X: xoff, Y: yoff})
	})

	// Framebuffer size is reported in pixels, which differs from the logical
	// window size on high-DPI displays. The viewport and the camera aspect
	// ratios need pixels.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		events.Push(event.WindowEvent{Kind: event.FramebufferSizeEvent, Width: w, Height: h})
	})

	win.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		events.Push(event.WindowEvent{Kind: event.SizeEvent, Width: w, Height: h})
	})

	win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		events.Push(event.WindowEvent{Kind: event.PosEvent, X: float64(x), Y: float64(y)})
	})

	win.SetCloseCallback(func(_ *glfw.Window) {
		events.Push(event.WindowEvent{Kind: event.CloseEvent})
	})

	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		events.Push(event.WindowEvent{Kind: event.FocusEvent, Flag: focused})
	})

	win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		events.Push(event.WindowEvent{Kind: event.IconifyEvent, Flag: iconified})
	})

	win.SetRefreshCallback(func(_ *glfw.Window) {
		events.Push(event.WindowEvent{Kind: event.RefreshEvent})
	})

	win.SetCharCallback(func(_ *glfw.Window, char rune) {
		events.Push(event.WindowEvent{Kind: event.CharEvent, Char: char})
	})

	return c, nil
}

func convertModifiers(mods glfw.ModifierKey) event.Modifiers {
	var out event.Modifiers
	if mods&glfw.ModShift != 0 {
		out |= event.Shift
	}
	if mods&glfw.ModControl != 0 {
		out |= event.Control
	}
	if mods&glfw.ModAlt != 0 {
		out |= event.Alt
	}
	if mods&glfw.ModSuper != 0 {
		out |= event.Super
	}
	return out
}

// pollEvents pumps the GLFW event queue, firing the registered callbacks.
func (c *canvas) pollEvents() {
	glfw.PollEvents()
}

func (c *canvas) swapBuffers() {
	c.window.SwapBuffers()
}

func (c *canvas) shouldClose() bool {
	return c.window.ShouldClose()
}

func (c *canvas) setShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

// size reports the drawable framebuffer size in pixels.
func (c *canvas) size() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *canvas) setTitle(title string) {
	c.window.SetTitle(title)
}

func (c *canvas) hide() {
	c.window.Hide()
}

func (c *canvas) show() {
	c.window.Show()
}

// close destroys the window and terminates GLFW.
func (c *canvas) close() {
	c.window.Destroy()
	glfw.Terminate()
}

// Size implements camera.InputState.
func (c *canvas) Size() (int, int) {
	return c.size()
}

// KeyState implements camera.InputState, reporting the last observed
// transition of a key.
func (c *canvas) KeyState(k event.Key) event.Action {
	if a, ok := c.keyStates[k]; ok {
		return a
	}
	return event.Release
}

// MouseButtonState implements camera.InputState, reporting the last
// observed transition of a button.
func (c *canvas) MouseButtonState(b event.MouseButton) event.Action {
	if a, ok := c.buttonStates[b]; ok {
		return a
	}
	return event.Release
}

// cursorPosition reports the last observed cursor position in screen
// coordinates.
func (c *canvas) cursorPosition() (float64, float64) {
	return c.cursorPos[0], c.cursorPos[1]
}

var _ interface {
	Size() (int, int)
	KeyState(event.Key) event.Action
	MouseButtonState(event.MouseButton) event.Action
} = &canvas{}

// glViewport is a tiny helper hiding the int conversions at the call sites.
func glViewport(ctx gfx.Context, w, h int) {
	ctx.Viewport(0, 0, int32(w), int32(h))
}
