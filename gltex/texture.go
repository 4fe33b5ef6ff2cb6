// Package gltex uploads pixel data described by the texture registry into
// OpenGL texture objects. All functions must run on the thread that owns the
// current GL context.
package gltex

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/texfmt/log"
	"github.com/richinsley/texfmt/source"
	"github.com/richinsley/texfmt/texture"
)

var logger = log.New("gltex")

// Texture is an OpenGL texture object created from source.Pixels.
type Texture struct {
	id      uint32
	desc    texture.Desc
	sampler texture.Sampler
}

// New creates a texture object and uploads p into it.
func New(p *source.Pixels) (*Texture, error) {
	if p == nil {
		return nil, fmt.Errorf("pixel data is nil")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	desc := p.Desc
	align, err := desc.UnpackAlignment()
	if err != nil {
		return nil, err
	}

	target := uint32(desc.Type)
	t := &Texture{desc: desc}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(target, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, align)

	logger.Infof("Uploading %s (%d bytes)", desc, len(p.Data))

	w, h := int32(desc.Width), int32(desc.Height)
	switch desc.Type {
	case texture.Type1D:
		gl.TexImage1D(target, 0, int32(desc.Internal), w, 0, uint32(desc.Format), uint32(desc.PixelType), gl.Ptr(p.Data))
	case texture.Type2D:
		gl.TexImage2D(target, 0, int32(desc.Internal), w, h, 0, uint32(desc.Format), uint32(desc.PixelType), gl.Ptr(p.Data))
	case texture.Type3D:
		gl.TexImage3D(target, 0, int32(desc.Internal), w, h, int32(desc.Depth), 0, uint32(desc.Format), uint32(desc.PixelType), gl.Ptr(p.Data))
	case texture.TypeCubemap:
		for face := 0; face < 6; face++ {
			gl.TexImage2D(FaceTarget(face), 0, int32(desc.Internal), w, h, 0, uint32(desc.Format), uint32(desc.PixelType), gl.Ptr(p.Layer(face)))
		}
	default:
		gl.BindTexture(target, 0)
		gl.DeleteTextures(1, &t.id)
		return nil, fmt.Errorf("%w: cannot upload %s textures", texture.ErrUnsupported, desc.Type)
	}

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		gl.BindTexture(target, 0)
		gl.DeleteTextures(1, &t.id)
		return nil, fmt.Errorf("texture upload failed with GL error 0x%X", glErr)
	}

	t.applySampler(desc.Sampler)

	// Generate mipmaps if the filter requires it.
	if desc.Sampler.UsesMipmaps() {
		gl.GenerateMipmap(target)
	}

	gl.BindTexture(target, 0)
	return t, nil
}

// FaceTarget returns the TexImage2D target of cubemap face i (0..5).
func FaceTarget(i int) uint32 {
	return gl.TEXTURE_CUBE_MAP_POSITIVE_X + uint32(i)
}

// ID returns the GL texture name.
func (t *Texture) ID() uint32 { return t.id }

// Desc returns the description the texture was created from, with the
// sampler state currently applied.
func (t *Texture) Desc() texture.Desc {
	d := t.desc
	d.Sampler = t.sampler
	return d
}

// Resolution returns width, height and depth as a vec3.
func (t *Texture) Resolution() [3]float32 {
	return [3]float32{float32(t.desc.Width), float32(t.desc.Height), float32(t.desc.Depth)}
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(uint32(t.desc.Type), t.id)
}

// Destroy releases the texture object.
func (t *Texture) Destroy() {
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
