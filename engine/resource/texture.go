package resource

import (
	"image"

	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	xdraw "golang.org/x/image/draw"
)

// Texture wraps a GPU texture object.
type Texture struct {
	ctx gfx.Context
	id  gfx.Texture
}

// NewTexture uploads an RGBA image as a 2D texture with repeat wrapping and
// trilinear filtering. Mipmap levels are generated on the CPU by iterative
// Catmull-Rom downscaling, halving each dimension until both reach 1.
//
// Parameters:
//   - ctx: graphics context owning the texture
//   - img: pixel data, origin top-left
//
// Returns:
//   - *Texture: the uploaded texture
func NewTexture(ctx gfx.Context, img *image.RGBA) *Texture {
	t := &Texture{ctx: ctx, id: ctx.CreateTexture()}
	t.Bind()

	ctx.TexParameteri(gfx.Texture2D, gfx.TextureWrapS, gfx.Repeat)
	ctx.TexParameteri(gfx.Texture2D, gfx.TextureWrapT, gfx.Repeat)
	ctx.TexParameteri(gfx.Texture2D, gfx.TextureMinFilter, gfx.LinearMipmapLinear)
	ctx.TexParameteri(gfx.Texture2D, gfx.TextureMagFilter, gfx.Linear)

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	ctx.TexImage2D(gfx.Texture2D, 0, int32(gfx.RGBA), int32(w), int32(h), gfx.RGBA, gfx.UnsignedByte, img.Pix)

	level := int32(1)
	src := img
	for w > 1 || h > 1 {
		w = max(w/2, 1)
		h = max(h/2, 1)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		ctx.TexImage2D(gfx.Texture2D, level, int32(gfx.RGBA), int32(w), int32(h), gfx.RGBA, gfx.UnsignedByte, dst.Pix)
		src = dst
		level++
	}

	return t
}

// Bind binds the texture to the 2D target on the active texture unit.
func (t *Texture) Bind() {
	t.ctx.BindTexture(gfx.Texture2D, t.id)
}

// ID exposes the backend handle.
func (t *Texture) ID() gfx.Texture {
	return t.id
}

// Delete releases the texture object.
func (t *Texture) Delete() {
	t.ctx.DeleteTexture(t.id)
}
