package gfx

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var _ Context = &glContext{}

// glContext implements Context on top of desktop OpenGL 4.1 core.
type glContext struct {
	vao uint32
}

// NewGLContext initializes the OpenGL function pointers and returns a Context
// backed by them. A GL context must already be current on the calling thread
// (the canvas takes care of this before constructing the engine's resources).
//
// A single vertex array object is created and left bound for the lifetime of
// the context; the core profile refuses vertex attribute setup without one.
//
// Returns:
//   - Context: the OpenGL-backed context
//   - error: error if the function pointers cannot be loaded
func NewGLContext() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	ctx := &glContext{}
	gl.GenVertexArrays(1, &ctx.vao)
	gl.BindVertexArray(ctx.vao)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return ctx, nil
}

func (c *glContext) CreateBuffer() Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return Buffer(id)
}

func (c *glContext) DeleteBuffer(buf Buffer) {
	id := uint32(buf)
	gl.DeleteBuffers(1, &id)
}

func (c *glContext) BindBuffer(target uint32, buf Buffer) {
	gl.BindBuffer(target, uint32(buf))
}

func (c *glContext) BufferData(target uint32, data []byte, usage uint32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(target, len(data), ptr, usage)
}

func (c *glContext) BufferSubData(target uint32, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(target, offset, len(data), gl.Ptr(data))
}

func (c *glContext) CreateShader(kind uint32) Shader {
	return Shader(gl.CreateShader(kind))
}

func (c *glContext) ShaderSource(shader Shader, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(shader), 1, csources, nil)
	free()
}

func (c *glContext) CompileShader(shader Shader) error {
	gl.CompileShader(uint32(shader))

	var status int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(uint32(shader), logLen, nil, gl.Str(log))
		return fmt.Errorf("shader compilation failed: %s", strings.TrimRight(log, "\x00"))
	}
	return nil
}

func (c *glContext) DeleteShader(shader Shader) {
	gl.DeleteShader(uint32(shader))
}

func (c *glContext) CreateProgram() Program {
	return Program(gl.CreateProgram())
}

func (c *glContext) AttachShader(program Program, shader Shader) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (c *glContext) LinkProgram(program Program) error {
	gl.LinkProgram(uint32(program))

	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetProgramInfoLog(uint32(program), logLen, nil, gl.Str(log))
		return fmt.Errorf("program linking failed: %s", strings.TrimRight(log, "\x00"))
	}
	return nil
}

func (c *glContext) UseProgram(program Program) {
	gl.UseProgram(uint32(program))
}

func (c *glContext) DeleteProgram(program Program) {
	gl.DeleteProgram(uint32(program))
}

func (c *glContext) GetUniformLocation(program Program, name string) (UniformLocation, bool) {
	loc := gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
	return UniformLocation(loc), loc >= 0
}

func (c *glContext) GetAttribLocation(program Program, name string) (AttribLocation, bool) {
	loc := gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00"))
	return AttribLocation(loc), loc >= 0
}

func (c *glContext) Uniform1i(loc UniformLocation, v int32) {
	gl.Uniform1i(int32(loc), v)
}

func (c *glContext) Uniform1f(loc UniformLocation, v float32) {
	gl.Uniform1f(int32(loc), v)
}

func (c *glContext) Uniform2f(loc UniformLocation, x, y float32) {
	gl.Uniform2f(int32(loc), x, y)
}

func (c *glContext) Uniform3f(loc UniformLocation, x, y, z float32) {
	gl.Uniform3f(int32(loc), x, y, z)
}

func (c *glContext) Uniform4f(loc UniformLocation, x, y, z, w float32) {
	gl.Uniform4f(int32(loc), x, y, z, w)
}

func (c *glContext) UniformMatrix2fv(loc UniformLocation, m mgl32.Mat2) {
	gl.UniformMatrix2fv(int32(loc), 1, false, &m[0])
}

func (c *glContext) UniformMatrix3fv(loc UniformLocation, m mgl32.Mat3) {
	gl.UniformMatrix3fv(int32(loc), 1, false, &m[0])
}

func (c *glContext) UniformMatrix4fv(loc UniformLocation, m mgl32.Mat4) {
	gl.UniformMatrix4fv(int32(loc), 1, false, &m[0])
}

func (c *glContext) EnableVertexAttribArray(loc AttribLocation) {
	gl.EnableVertexAttribArray(uint32(loc))
}

func (c *glContext) DisableVertexAttribArray(loc AttribLocation) {
	gl.DisableVertexAttribArray(uint32(loc))
}

func (c *glContext) VertexAttribPointer(loc AttribLocation, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(loc), size, xtype, normalized, stride, uintptr(offset))
}

func (c *glContext) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (c *glContext) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	gl.DrawElementsWithOffset(mode, count, xtype, uintptr(offset))
}

func (c *glContext) Enable(capability uint32) {
	gl.Enable(capability)
}

func (c *glContext) Disable(capability uint32) {
	gl.Disable(capability)
}

func (c *glContext) CullFace(mode uint32) {
	gl.CullFace(mode)
}

func (c *glContext) FrontFace(mode uint32) {
	gl.FrontFace(mode)
}

func (c *glContext) DepthFunc(fn uint32) {
	gl.DepthFunc(fn)
}

func (c *glContext) PolygonMode(face, mode uint32) bool {
	gl.PolygonMode(face, mode)
	return true
}

func (c *glContext) LineWidth(width float32) {
	gl.LineWidth(width)
}

func (c *glContext) PointSize(size float32) {
	gl.PointSize(size)
}

func (c *glContext) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *glContext) Clear(mask uint32) {
	gl.Clear(mask)
}

func (c *glContext) Viewport(x, y, w, h int32) {
	gl.Viewport(x, y, w, h)
}

func (c *glContext) CreateTexture() Texture {
	var id uint32
	gl.GenTextures(1, &id)
	return Texture(id)
}

func (c *glContext) DeleteTexture(tex Texture) {
	id := uint32(tex)
	gl.DeleteTextures(1, &id)
}

func (c *glContext) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (c *glContext) BindTexture(target uint32, tex Texture) {
	gl.BindTexture(target, uint32(tex))
}

func (c *glContext) TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format, xtype uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, ptr)
}

func (c *glContext) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (c *glContext) ReadPixels(x, y, w, h int32, pixels []byte) {
	gl.ReadPixels(x, y, w, h, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}
