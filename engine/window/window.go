// Package window ties the engine together: it owns the GLFW canvas and its
// OpenGL context, the resource registries, both scene graphs, the
// immediate-mode renderers and the frame loop.
package window

import (
	"fmt"
	"image"
	"time"

	"github.com/Carmen-Shannon/glint-go/engine/builtin"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/light"
	"github.com/Carmen-Shannon/glint-go/engine/renderer"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/Carmen-Shannon/glint-go/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Window is the one-stop handle to the engine: it owns the canvas, the
// graphics context, the registries, the 3D and 2D scene roots, the batched
// line and point renderers, the light and the default cameras.
//
// All methods must be called from the main goroutine; the rendering thread
// is locked to the OS thread when the window is created.
type Window struct {
	canvas       *canvas
	ctx          gfx.Context
	events       *event.Manager
	registries   *scene.Registries
	sceneRoot    scene.SceneNode
	planarRoot   scene.PlanarSceneNode
	lines        *renderer.LineRenderer
	points       *renderer.PointRenderer
	planarLines  *renderer.PlanarLineRenderer
	cam          camera.Camera
	planarCam    camera.PlanarCamera
	light        light.Light
	background   mgl32.Vec3
	minFrameTime time.Duration
	lastFrame    time.Time
	closed       bool
}

// NewWindow opens a window with an OpenGL context, compiles the built-in
// materials and sets up empty scene graphs. Panics when the platform window
// or the context cannot be created; rendering cannot proceed without either.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - *Window: the ready-to-render window
func NewWindow(options ...WindowBuilderOption) *Window {
	cfg := windowConfig{
		title:  "glint",
		width:  800,
		height: 600,
	}
	for _, opt := range options {
		opt(&cfg)
	}

	events := event.NewManager(1024)
	cv, err := newCanvas(cfg.title, cfg.width, cfg.height, cfg.hidden, events)
	if err != nil {
		panic(fmt.Sprintf("window: failed to create platform window: %v", err))
	}

	ctx, err := gfx.NewGLContext()
	if err != nil {
		cv.close()
		panic(fmt.Sprintf("window: failed to initialize the graphics context: %v", err))
	}

	objectMat := builtin.NewObjectMaterial(ctx)
	planarMat := builtin.NewPlanarObjectMaterial(ctx)
	reg := scene.NewRegistries(ctx, objectMat, planarMat)
	reg.Materials.Add(objectMat, "object")
	reg.Materials.Add(builtin.NewNormalsMaterial(ctx), "normals")
	reg.Materials.Add(builtin.NewUvsMaterial(ctx), "uvs")
	reg.PlanarMaterials.Add(planarMat, "object")

	w := &Window{
		canvas:      cv,
		ctx:         ctx,
		events:      events,
		registries:  reg,
		sceneRoot:   scene.NewRootNode(reg),
		planarRoot:  scene.NewPlanarRootNode(reg),
		lines:       renderer.NewLineRenderer(ctx),
		points:      renderer.NewPointRenderer(ctx),
		planarLines: renderer.NewPlanarLineRenderer(ctx),
		cam:         camera.NewArcBall(mgl32.Vec3{0, 0, -1}, mgl32.Vec3{}),
		planarCam:   camera.NewFixedView(),
		light:       light.Absolute(mgl32.Vec3{0, 10, 0}),
	}
	if cfg.maxFPS > 0 {
		w.minFrameTime = time.Second / time.Duration(cfg.maxFPS)
	}

	ctx.Enable(gfx.DepthTest)
	ctx.DepthFunc(gfx.LEqual)
	ctx.FrontFace(gfx.CCW)
	ctx.CullFace(gfx.Back)
	ctx.Enable(gfx.ProgramPointSize)

	fw, fh := cv.size()
	glViewport(ctx, fw, fh)
	w.dispatchSize(fw, fh)

	return w
}

// Scene returns the root of the 3D scene graph.
func (w *Window) Scene() scene.SceneNode { return w.sceneRoot }

// PlanarScene returns the root of the 2D scene graph.
func (w *Window) PlanarScene() scene.PlanarSceneNode { return w.planarRoot }

// Registries returns the resource registries shared by every node of this
// window.
func (w *Window) Registries() *scene.Registries { return w.registries }

// Context returns the graphics context of the window.
func (w *Window) Context() gfx.Context { return w.ctx }

// AddCube attaches a cuboid to the scene root.
func (w *Window) AddCube(wx, wy, wz float32) scene.SceneNode {
	return w.sceneRoot.AddCube(wx, wy, wz)
}

// AddSphere attaches a sphere to the scene root.
func (w *Window) AddSphere(r float32) scene.SceneNode {
	return w.sceneRoot.AddSphere(r)
}

// AddCone attaches a cone to the scene root.
func (w *Window) AddCone(r, h float32) scene.SceneNode {
	return w.sceneRoot.AddCone(r, h)
}

// AddCylinder attaches a cylinder to the scene root.
func (w *Window) AddCylinder(r, h float32) scene.SceneNode {
	return w.sceneRoot.AddCylinder(r, h)
}

// AddCapsule attaches a capsule to the scene root.
func (w *Window) AddCapsule(r, h float32) scene.SceneNode {
	return w.sceneRoot.AddCapsule(r, h)
}

// AddQuad attaches a subdivided rectangle to the scene root.
func (w *Window) AddQuad(width, height float32, usubs, vsubs uint32) scene.SceneNode {
	return w.sceneRoot.AddQuad(width, height, usubs, vsubs)
}

// AddGroup attaches an empty group to the scene root.
func (w *Window) AddGroup() scene.SceneNode {
	return w.sceneRoot.AddGroup()
}

// AddMesh attaches an explicit mesh to the scene root.
func (w *Window) AddMesh(mesh *resource.Mesh, scale mgl32.Vec3) scene.SceneNode {
	return w.sceneRoot.AddMesh(mesh, scale)
}

// AddObjFile loads an OBJ file under the scene root.
func (w *Window) AddObjFile(objPath, mtlDir string, scale mgl32.Vec3) (scene.SceneNode, error) {
	return w.sceneRoot.AddObjFile(objPath, mtlDir, scale)
}

// AddRectangle attaches a rectangle to the 2D scene root.
func (w *Window) AddRectangle(wx, wy float32) scene.PlanarSceneNode {
	return w.planarRoot.AddRectangle(wx, wy)
}

// AddCircle attaches a circle to the 2D scene root.
func (w *Window) AddCircle(r float32) scene.PlanarSceneNode {
	return w.planarRoot.AddCircle(r)
}

// AddConvexPolygon attaches a convex polygon to the 2D scene root.
func (w *Window) AddConvexPolygon(points []mgl32.Vec2, scale mgl32.Vec2) scene.PlanarSceneNode {
	return w.planarRoot.AddConvexPolygon(points, scale)
}

// SetLight selects the light illuminating the 3D scene.
func (w *Window) SetLight(l light.Light) {
	w.light = l
}

// SetBackground sets the clear color.
func (w *Window) SetBackground(r, g, b float32) {
	w.background = mgl32.Vec3{r, g, b}
}

// Cameras returns the cameras used by Render.
func (w *Window) Cameras() (camera.Camera, camera.PlanarCamera) {
	return w.cam, w.planarCam
}

// SetCamera replaces the camera used by Render.
func (w *Window) SetCamera(cam camera.Camera) {
	w.cam = cam
}

// SetPlanarCamera replaces the 2D camera used by Render.
func (w *Window) SetPlanarCamera(cam camera.PlanarCamera) {
	w.planarCam = cam
}

// DrawLine queues a world-space line segment for the current frame.
func (w *Window) DrawLine(a, b, color mgl32.Vec3) {
	w.lines.DrawLine(a, b, color)
}

// SetLineWidth sets the width used by DrawLine segments.
func (w *Window) SetLineWidth(width float32) {
	w.lines.SetLineWidth(width)
}

// DrawPoint queues a world-space point for the current frame.
func (w *Window) DrawPoint(pt, color mgl32.Vec3) {
	w.points.DrawPoint(pt, color)
}

// SetPointSize sets the size used by DrawPoint points.
func (w *Window) SetPointSize(size float32) {
	w.points.SetPointSize(size)
}

// DrawPlanarLine queues a 2D line segment for the current frame.
func (w *Window) DrawPlanarLine(a, b mgl32.Vec2, color mgl32.Vec3) {
	w.planarLines.DrawLine(a, b, color)
}

// Events returns the pending events of the frame. Set Inhibited on a
// returned event to keep it away from the cameras.
func (w *Window) Events() []*event.Event {
	return w.events.Events()
}

// CursorPos reports the last cursor position in screen coordinates.
func (w *Window) CursorPos() (float64, float64) {
	return w.canvas.cursorPosition()
}

// Size reports the drawable size in pixels.
func (w *Window) Size() (int, int) {
	return w.canvas.size()
}

// Width reports the drawable width in pixels.
func (w *Window) Width() int {
	width, _ := w.canvas.size()
	return width
}

// Height reports the drawable height in pixels.
func (w *Window) Height() int {
	_, height := w.canvas.size()
	return height
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.canvas.setTitle(title)
}

// Hide makes the window invisible without closing it.
func (w *Window) Hide() {
	w.canvas.hide()
}

// Show makes a hidden window visible.
func (w *Window) Show() {
	w.canvas.show()
}

// Close asks the render loop to stop after the current frame.
func (w *Window) Close() {
	w.canvas.setShouldClose(true)
}

// Render draws one frame with the window's current cameras. It processes the
// events gathered since the previous call, forwards the uninhibited ones to
// the cameras, renders both scene graphs and swaps the buffers.
//
// Returns:
//   - bool: false once the window was asked to close; the render loop stops
func (w *Window) Render() bool {
	return w.RenderWithCameras(w.cam, w.planarCam)
}

// RenderWithCamera draws one frame through an explicit 3D camera.
func (w *Window) RenderWithCamera(cam camera.Camera) bool {
	return w.RenderWithCameras(cam, w.planarCam)
}

// RenderWithCameras draws one frame through explicit 3D and 2D cameras.
func (w *Window) RenderWithCameras(cam camera.Camera, planarCam camera.PlanarCamera) bool {
	if w.closed {
		return false
	}
	if w.canvas.shouldClose() {
		w.teardown()
		return false
	}

	for _, ev := range w.events.Collect() {
		if ev.Kind == event.FramebufferSizeEvent {
			glViewport(w.ctx, ev.Width, ev.Height)
		}
		cam.HandleEvent(w.canvas, ev)
		planarCam.HandleEvent(w.canvas, ev)
	}
	cam.Update(w.canvas)
	planarCam.Update(w.canvas)

	w.draw(cam, planarCam)
	w.canvas.swapBuffers()
	w.canvas.pollEvents()
	w.capFrameRate()

	return true
}

func (w *Window) draw(cam camera.Camera, planarCam camera.PlanarCamera) {
	w.ctx.ClearColor(w.background.X(), w.background.Y(), w.background.Z(), 1)

	for pass := 0; pass < cam.NumPasses(); pass++ {
		cam.StartPass(pass)
		w.ctx.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)
		w.sceneRoot.Render(pass, cam, w.light)
		w.lines.Render(pass, cam)
		w.points.Render(pass, cam)
	}
	cam.RenderComplete()

	// The 2D scene draws over the 3D scene regardless of depth.
	w.ctx.Clear(gfx.DepthBufferBit)
	w.planarRoot.Render(planarCam)
	w.planarLines.Render(planarCam)
}

func (w *Window) capFrameRate() {
	if w.minFrameTime == 0 {
		return
	}
	if !w.lastFrame.IsZero() {
		if elapsed := time.Since(w.lastFrame); elapsed < w.minFrameTime {
			time.Sleep(w.minFrameTime - elapsed)
		}
	}
	w.lastFrame = time.Now()
}

// dispatchSize seeds the cameras with the initial drawable size, which they
// otherwise learn only from resize events.
func (w *Window) dispatchSize(width, height int) {
	ev := event.WindowEvent{Kind: event.FramebufferSizeEvent, Width: width, Height: height}
	w.cam.HandleEvent(w.canvas, ev)
	w.planarCam.HandleEvent(w.canvas, ev)
}

func (w *Window) teardown() {
	if w.closed {
		return
	}
	w.closed = true
	w.registries.Clear()
	w.canvas.close()
}

// Snap reads the framebuffer back into buf as tightly packed RGB rows,
// bottom row first, growing buf as needed.
//
// Parameters:
//   - buf: destination, reused when large enough
//
// Returns:
//   - []byte: the filled buffer
//   - int: width in pixels
//   - int: height in pixels
func (w *Window) Snap(buf []byte) ([]byte, int, int) {
	width, height := w.canvas.size()
	size := width * height * 3
	if cap(buf) < size {
		buf = make([]byte, size)
	}
	buf = buf[:size]
	w.ctx.ReadPixels(0, 0, int32(width), int32(height), buf)
	return buf, width, height
}

// SnapImage reads the framebuffer back as an image, flipped to the usual
// top-row-first orientation.
func (w *Window) SnapImage() *image.RGBA {
	buf, width, height := w.Snap(nil)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcRow := (height - 1 - y) * width * 3
		dstRow := y * img.Stride
		for x := 0; x < width; x++ {
			img.Pix[dstRow+x*4+0] = buf[srcRow+x*3+0]
			img.Pix[dstRow+x*4+1] = buf[srcRow+x*3+1]
			img.Pix[dstRow+x*4+2] = buf[srcRow+x*3+2]
			img.Pix[dstRow+x*4+3] = 0xFF
		}
	}
	return img
}
