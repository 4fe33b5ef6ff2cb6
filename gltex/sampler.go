package gltex

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/texfmt/texture"
)

// ApplySampler binds the texture and sets its wrap and filter parameters.
// A mipmapped min filter on a texture created without mipmaps generates them.
func (t *Texture) ApplySampler(s texture.Sampler) error {
	if err := s.Validate(); err != nil {
		return err
	}

	target := uint32(t.desc.Type)
	gl.BindTexture(target, t.id)
	if s.UsesMipmaps() && !t.sampler.UsesMipmaps() {
		gl.GenerateMipmap(target)
	}
	t.applySampler(s)
	gl.BindTexture(target, 0)

	logger.Debugf("texture %d sampler set to %s", t.id, s)
	return nil
}

// applySampler expects the texture to be bound.
func (t *Texture) applySampler(s texture.Sampler) {
	target := uint32(t.desc.Type)
	for _, p := range samplerParams(t.desc.Type, s) {
		gl.TexParameteri(target, p.name, p.value)
	}
	t.sampler = s
}

type texParam struct {
	name  uint32
	value int32
}

// samplerParams lists the TexParameteri calls needed for s on a texture of
// type typ. WRAP_T and WRAP_R only apply to textures with those axes.
func samplerParams(typ texture.Type, s texture.Sampler) []texParam {
	params := []texParam{{gl.TEXTURE_WRAP_S, int32(s.WrapS)}}
	if typ != texture.Type1D {
		params = append(params, texParam{gl.TEXTURE_WRAP_T, int32(s.WrapT)})
	}
	if typ == texture.Type3D || typ == texture.TypeCubemap {
		params = append(params, texParam{gl.TEXTURE_WRAP_R, int32(s.WrapR)})
	}
	return append(params,
		texParam{gl.TEXTURE_MIN_FILTER, int32(s.Min)},
		texParam{gl.TEXTURE_MAG_FILTER, int32(s.Mag)},
	)
}

// SamplerType returns the GLSL sampler type used to read a texture of type t.
func SamplerType(t texture.Type) string {
	switch t {
	case texture.Type1D:
		return "sampler1D"
	case texture.Type3D:
		return "sampler3D"
	case texture.TypeCubemap:
		return "samplerCube"
	case texture.Type2DMultisample:
		return "sampler2DMS"
	default:
		return "sampler2D"
	}
}
