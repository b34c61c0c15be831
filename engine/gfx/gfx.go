// Package gfx defines the narrow graphics-context abstraction the engine
// renders through, along with the OpenGL-backed implementation and a
// recording implementation used by tests.
package gfx

import "github.com/go-gl/mathgl/mgl32"

// Buffer is an opaque handle to a GPU buffer object.
type Buffer uint32

// Texture is an opaque handle to a GPU texture object.
type Texture uint32

// Shader is an opaque handle to a compiled shader stage.
type Shader uint32

// Program is an opaque handle to a linked shader program.
type Program uint32

// UniformLocation identifies a uniform variable within a linked program.
type UniformLocation int32

// AttribLocation identifies a vertex attribute within a linked program.
type AttribLocation uint32

// Context is the complete surface the engine needs from a graphics backend.
// It is deliberately stateful and immediate-mode shaped: materials toggle
// culling, polygon mode, line width and point size between individual draw
// submissions within a single pass.
//
// All methods must be called from the thread that owns the underlying
// rendering context.
type Context interface {
	// CreateBuffer allocates a new GPU buffer object.
	CreateBuffer() Buffer
	// DeleteBuffer releases a GPU buffer object.
	DeleteBuffer(buf Buffer)
	// BindBuffer binds a buffer to a target (ArrayBuffer or ElementArrayBuffer).
	BindBuffer(target uint32, buf Buffer)
	// BufferData allocates and fills the currently bound buffer.
	BufferData(target uint32, data []byte, usage uint32)
	// BufferSubData overwrites a range of the currently bound buffer without
	// reallocating it.
	BufferSubData(target uint32, offset int, data []byte)

	// CreateShader allocates a shader stage of the given kind.
	CreateShader(kind uint32) Shader
	// ShaderSource replaces the source code of a shader stage.
	ShaderSource(shader Shader, source string)
	// CompileShader compiles a shader stage, returning the info log on failure.
	CompileShader(shader Shader) error
	// DeleteShader releases a shader stage.
	DeleteShader(shader Shader)
	// CreateProgram allocates an empty program object.
	CreateProgram() Program
	// AttachShader attaches a compiled stage to a program.
	AttachShader(program Program, shader Shader)
	// LinkProgram links a program, returning the info log on failure.
	LinkProgram(program Program) error
	// UseProgram installs a program into the rendering state.
	UseProgram(program Program)
	// DeleteProgram releases a program object.
	DeleteProgram(program Program)
	// GetUniformLocation looks up a uniform by name. The boolean reports
	// whether the name exists in the linked program.
	GetUniformLocation(program Program, name string) (UniformLocation, bool)
	// GetAttribLocation looks up a vertex attribute by name. The boolean
	// reports whether the name exists in the linked program.
	GetAttribLocation(program Program, name string) (AttribLocation, bool)

	// Uniform1i sets an integer uniform (used for texture samplers).
	Uniform1i(loc UniformLocation, v int32)
	// Uniform1f sets a float uniform.
	Uniform1f(loc UniformLocation, v float32)
	// Uniform2f sets a vec2 uniform.
	Uniform2f(loc UniformLocation, x, y float32)
	// Uniform3f sets a vec3 uniform.
	Uniform3f(loc UniformLocation, x, y, z float32)
	// Uniform4f sets a vec4 uniform.
	Uniform4f(loc UniformLocation, x, y, z, w float32)
	// UniformMatrix2fv sets a mat2 uniform, column-major.
	UniformMatrix2fv(loc UniformLocation, m mgl32.Mat2)
	// UniformMatrix3fv sets a mat3 uniform, column-major.
	UniformMatrix3fv(loc UniformLocation, m mgl32.Mat3)
	// UniformMatrix4fv sets a mat4 uniform, column-major.
	UniformMatrix4fv(loc UniformLocation, m mgl32.Mat4)

	// EnableVertexAttribArray enables a vertex attribute for drawing.
	EnableVertexAttribArray(loc AttribLocation)
	// DisableVertexAttribArray disables a vertex attribute.
	DisableVertexAttribArray(loc AttribLocation)
	// VertexAttribPointer describes the layout of the attribute within the
	// currently bound ArrayBuffer. stride and offset are in bytes.
	VertexAttribPointer(loc AttribLocation, size int32, xtype uint32, normalized bool, stride int32, offset int)

	// DrawArrays submits count vertices starting at first.
	DrawArrays(mode uint32, first, count int32)
	// DrawElements submits count indices from the bound ElementArrayBuffer,
	// starting at a byte offset.
	DrawElements(mode uint32, count int32, xtype uint32, offset int)

	// Enable turns on a capability such as DepthTest or CullFace.
	Enable(capability uint32)
	// Disable turns off a capability.
	Disable(capability uint32)
	// CullFace selects which triangle faces are culled.
	CullFace(mode uint32)
	// FrontFace selects the winding considered front-facing.
	FrontFace(mode uint32)
	// DepthFunc selects the depth comparison function.
	DepthFunc(fn uint32)
	// PolygonMode switches filled primitives to wireframe or point
	// rasterization. It reports false when the backend cannot honor the
	// request, in which case callers fall back to explicit edge geometry.
	PolygonMode(face, mode uint32) bool
	// LineWidth sets the rasterized width of lines.
	LineWidth(width float32)
	// PointSize sets the rasterized size of points.
	PointSize(size float32)
	// ClearColor sets the color used by Clear.
	ClearColor(r, g, b, a float32)
	// Clear clears the buffers selected by mask.
	Clear(mask uint32)
	// Viewport sets the drawable region in pixels.
	Viewport(x, y, w, h int32)

	// CreateTexture allocates a texture object.
	CreateTexture() Texture
	// DeleteTexture releases a texture object.
	DeleteTexture(tex Texture)
	// ActiveTexture selects the active texture unit.
	ActiveTexture(unit uint32)
	// BindTexture binds a texture to a target on the active unit.
	BindTexture(target uint32, tex Texture)
	// TexImage2D uploads one mipmap level of the bound texture.
	TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format, xtype uint32, pixels []byte)
	// TexParameteri sets a texture sampling parameter.
	TexParameteri(target, pname uint32, param int32)

	// ReadPixels reads back an RGB region of the framebuffer into pixels,
	// which must hold at least w*h*3 bytes.
	ReadPixels(x, y, w, h int32, pixels []byte)
}
