package gfx

import "github.com/go-gl/mathgl/mgl32"

var _ Context = &TestContext{}

// DrawCall records a single draw submission made against a TestContext.
type DrawCall struct {
	// Mode is the primitive mode (Triangles, Lines or Points).
	Mode uint32
	// Count is the number of vertices or indices submitted.
	Count int32
	// Indexed is true for DrawElements submissions.
	Indexed bool
}

// TestContext is an in-memory Context that records every call made against
// it. Tests use it to assert on upload traffic, draw submissions and state
// transitions without a real GPU.
type TestContext struct {
	// PolygonModeSupported controls the return value of PolygonMode,
	// letting tests exercise the wireframe fallback path.
	PolygonModeSupported bool

	// BufferDataCount counts full (reallocating) buffer uploads.
	BufferDataCount int
	// BufferSubDataCount counts sub-range buffer uploads.
	BufferSubDataCount int
	// Draws lists every draw submission in order.
	Draws []DrawCall
	// EnabledAttribs tracks vertex attributes currently enabled.
	EnabledAttribs map[AttribLocation]bool
	// EnabledCaps tracks capabilities currently enabled.
	EnabledCaps map[uint32]bool
	// CurrentLineWidth is the most recent LineWidth value.
	CurrentLineWidth float32
	// CurrentPointSize is the most recent PointSize value.
	CurrentPointSize float32
	// PolygonModes lists every PolygonMode call as (face, mode) pairs.
	PolygonModes [][2]uint32
	// BufferSizes maps live buffers to their allocated size in bytes.
	BufferSizes map[Buffer]int
	// DeletedBuffers lists buffers released so far.
	DeletedBuffers []Buffer
	// BoundTextures tracks the texture bound per target.
	BoundTextures map[uint32]Texture
	// TexUploads counts TexImage2D calls.
	TexUploads int
	// ClearCount counts Clear calls.
	ClearCount int

	nextHandle uint32
	bound      map[uint32]Buffer
	uniforms   map[string]UniformLocation
	attribs    map[string]AttribLocation
}

// NewTestContext returns a recording context with polygon-mode support
// enabled.
func NewTestContext() *TestContext {
	return &TestContext{
		PolygonModeSupported: true,
		EnabledAttribs:       make(map[AttribLocation]bool),
		EnabledCaps:          make(map[uint32]bool),
		BufferSizes:          make(map[Buffer]int),
		BoundTextures:        make(map[uint32]Texture),
		bound:                make(map[uint32]Buffer),
		uniforms:             make(map[string]UniformLocation),
		attribs:              make(map[string]AttribLocation),
	}
}

func (c *TestContext) handle() uint32 {
	c.nextHandle++
	return c.nextHandle
}

func (c *TestContext) CreateBuffer() Buffer {
	buf := Buffer(c.handle())
	c.BufferSizes[buf] = 0
	return buf
}

func (c *TestContext) DeleteBuffer(buf Buffer) {
	delete(c.BufferSizes, buf)
	c.DeletedBuffers = append(c.DeletedBuffers, buf)
}

func (c *TestContext) BindBuffer(target uint32, buf Buffer) {
	c.bound[target] = buf
}

func (c *TestContext) BufferData(target uint32, data []byte, usage uint32) {
	c.BufferDataCount++
	c.BufferSizes[c.bound[target]] = len(data)
}

func (c *TestContext) BufferSubData(target uint32, offset int, data []byte) {
	c.BufferSubDataCount++
}

func (c *TestContext) CreateShader(kind uint32) Shader   { return Shader(c.handle()) }
func (c *TestContext) ShaderSource(sh Shader, src string) {}
func (c *TestContext) CompileShader(sh Shader) error      { return nil }
func (c *TestContext) DeleteShader(sh Shader)             {}
func (c *TestContext) CreateProgram() Program             { return Program(c.handle()) }
func (c *TestContext) AttachShader(p Program, s Shader)   {}
func (c *TestContext) LinkProgram(p Program) error        { return nil }
func (c *TestContext) UseProgram(p Program)               {}
func (c *TestContext) DeleteProgram(p Program)            {}

func (c *TestContext) GetUniformLocation(p Program, name string) (UniformLocation, bool) {
	if loc, ok := c.uniforms[name]; ok {
		return loc, true
	}
	loc := UniformLocation(c.handle())
	c.uniforms[name] = loc
	return loc, true
}

func (c *TestContext) GetAttribLocation(p Program, name string) (AttribLocation, bool) {
	if loc, ok := c.attribs[name]; ok {
		return loc, true
	}
	loc := AttribLocation(c.handle())
	c.attribs[name] = loc
	return loc, true
}

func (c *TestContext) Uniform1i(loc UniformLocation, v int32)            {}
func (c *TestContext) Uniform1f(loc UniformLocation, v float32)          {}
func (c *TestContext) Uniform2f(loc UniformLocation, x, y float32)       {}
func (c *TestContext) Uniform3f(loc UniformLocation, x, y, z float32)    {}
func (c *TestContext) Uniform4f(loc UniformLocation, x, y, z, w float32) {}
func (c *TestContext) UniformMatrix2fv(loc UniformLocation, m mgl32.Mat2) {}
func (c *TestContext) UniformMatrix3fv(loc UniformLocation, m mgl32.Mat3) {}
func (c *TestContext) UniformMatrix4fv(loc UniformLocation, m mgl32.Mat4) {}

func (c *TestContext) EnableVertexAttribArray(loc AttribLocation) {
	c.EnabledAttribs[loc] = true
}

func (c *TestContext) DisableVertexAttribArray(loc AttribLocation) {
	delete(c.EnabledAttribs, loc)
}

func (c *TestContext) VertexAttribPointer(loc AttribLocation, size int32, xtype uint32, normalized bool, stride int32, offset int) {
}

func (c *TestContext) DrawArrays(mode uint32, first, count int32) {
	c.Draws = append(c.Draws, DrawCall{Mode: mode, Count: count})
}

func (c *TestContext) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	c.Draws = append(c.Draws, DrawCall{Mode: mode, Count: count, Indexed: true})
}

func (c *TestContext) Enable(capability uint32) {
	c.EnabledCaps[capability] = true
}

func (c *TestContext) Disable(capability uint32) {
	delete(c.EnabledCaps, capability)
}

func (c *TestContext) CullFace(mode uint32)  {}
func (c *TestContext) FrontFace(mode uint32) {}
func (c *TestContext) DepthFunc(fn uint32)   {}

func (c *TestContext) PolygonMode(face, mode uint32) bool {
	c.PolygonModes = append(c.PolygonModes, [2]uint32{face, mode})
	return c.PolygonModeSupported
}

func (c *TestContext) LineWidth(width float32) {
	c.CurrentLineWidth = width
}

func (c *TestContext) PointSize(size float32) {
	c.CurrentPointSize = size
}

func (c *TestContext) ClearColor(r, g, b, a float32) {}

func (c *TestContext) Clear(mask uint32) {
	c.ClearCount++
}

func (c *TestContext) Viewport(x, y, w, h int32) {}

func (c *TestContext) CreateTexture() Texture {
	return Texture(c.handle())
}

func (c *TestContext) DeleteTexture(tex Texture) {}

func (c *TestContext) ActiveTexture(unit uint32) {}

func (c *TestContext) BindTexture(target uint32, tex Texture) {
	c.BoundTextures[target] = tex
}

func (c *TestContext) TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format, xtype uint32, pixels []byte) {
	c.TexUploads++
}

func (c *TestContext) TexParameteri(target, pname uint32, param int32) {}

func (c *TestContext) ReadPixels(x, y, w, h int32, pixels []byte) {}
