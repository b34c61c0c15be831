package gfx

// Backend-neutral constants, numerically identical to their OpenGL
// counterparts so the GL context can pass them straight through.
const (
	// Buffer targets and usage hints.
	ArrayBuffer        uint32 = 0x8892
	ElementArrayBuffer uint32 = 0x8893
	StaticDraw         uint32 = 0x88E4
	DynamicDraw        uint32 = 0x88E8
	StreamDraw         uint32 = 0x88E0

	// Primitive modes.
	Points    uint32 = 0x0000
	Lines     uint32 = 0x0001
	Triangles uint32 = 0x0004

	// Scalar types.
	UnsignedByte uint32 = 0x1401
	UnsignedInt  uint32 = 0x1405
	Float        uint32 = 0x1406

	// Capabilities.
	CullFaceCap      uint32 = 0x0B44
	DepthTest        uint32 = 0x0B71
	ScissorTest      uint32 = 0x0C11
	Blend            uint32 = 0x0BE2
	ProgramPointSize uint32 = 0x8642

	// Face selection and winding.
	Front        uint32 = 0x0404
	Back         uint32 = 0x0405
	FrontAndBack uint32 = 0x0408
	CCW          uint32 = 0x0901

	// Polygon rasterization modes.
	PolygonPoint uint32 = 0x1B00
	PolygonLine  uint32 = 0x1B01
	PolygonFill  uint32 = 0x1B02

	// Depth comparison.
	LEqual uint32 = 0x0203

	// Clear masks.
	DepthBufferBit uint32 = 0x00000100
	ColorBufferBit uint32 = 0x00004000

	// Shader kinds.
	FragmentShader uint32 = 0x8B30
	VertexShader   uint32 = 0x8B31

	// Textures.
	Texture2D          uint32 = 0x0DE1
	Texture0           uint32 = 0x84C0
	RGB                uint32 = 0x1907
	RGBA               uint32 = 0x1908
	TextureMagFilter   uint32 = 0x2800
	TextureMinFilter   uint32 = 0x2801
	TextureWrapS       uint32 = 0x2802
	TextureWrapT       uint32 = 0x2803
	Linear             int32  = 0x2601
	LinearMipmapLinear int32  = 0x2703
	Repeat             int32  = 0x2901
)
