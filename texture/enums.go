// Package texture is the typed vocabulary for OpenGL texture configuration.
//
// Every enumeration mirrors a GL constant one to one, so values can be passed
// straight to go-gl calls after a plain conversion:
//
//	gl.TexImage2D(uint32(desc.Type), 0, int32(desc.Internal), w, h, 0,
//		uint32(desc.Format), uint32(desc.PixelType), ptr)
//
// The derivation helpers (ComponentByteSize, ComponentCount, TexelByteSize,
// DefaultPixelFormat, DefaultInternalFormat8) report two kinds of failure:
// ErrUnsupported for caller supplied data that is out of range, and
// ErrInvariant for enumeration values that should never exist.
package texture

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Type is the dimensionality of a texture object.
// See https://www.khronos.org/registry/OpenGL-Refpages/gl4/html/glCreateTextures.xhtml
type Type uint32

const (
	Type1D            Type = gl.TEXTURE_1D
	Type2D            Type = gl.TEXTURE_2D
	Type3D            Type = gl.TEXTURE_3D
	TypeCubemap       Type = gl.TEXTURE_CUBE_MAP
	Type2DMultisample Type = gl.TEXTURE_2D_MULTISAMPLE
)

// InternalFormat is how the device stores texel data.
// Only the common sized formats are listed.
type InternalFormat int32

const (
	InternalUnknown      InternalFormat = gl.NONE
	InternalDepth        InternalFormat = gl.DEPTH_COMPONENT
	InternalDepthStencil InternalFormat = gl.DEPTH_STENCIL
	R8                   InternalFormat = gl.R8
	R16                  InternalFormat = gl.R16
	RG8                  InternalFormat = gl.RG8
	RGB8                 InternalFormat = gl.RGB8
	SRGB                 InternalFormat = gl.SRGB8
	RGB10                InternalFormat = gl.RGB10
	RGB16                InternalFormat = gl.RGB16
	RGB32F               InternalFormat = gl.RGB32F
	RGBA8                InternalFormat = gl.RGBA8
	SRGBA                InternalFormat = gl.SRGB8_ALPHA8
	RGBA16               InternalFormat = gl.RGBA16
	RGBA32F              InternalFormat = gl.RGBA32F
)

// PixelFormat is the channel layout of pixel data handed to the device.
type PixelFormat uint32

const (
	FormatUnknown      PixelFormat = gl.NONE
	Red                PixelFormat = gl.RED
	RG                 PixelFormat = gl.RG
	RGB                PixelFormat = gl.RGB
	FormatSRGB         PixelFormat = gl.SRGB
	BGR                PixelFormat = gl.BGR
	RGBA               PixelFormat = gl.RGBA
	BGRA               PixelFormat = gl.BGRA
	FormatDepth        PixelFormat = gl.DEPTH_COMPONENT
	FormatDepthStencil PixelFormat = gl.DEPTH_STENCIL
)

// PixelType is the numeric representation of each channel in pixel data.
type PixelType uint32

const (
	UByte  PixelType = gl.UNSIGNED_BYTE
	Byte   PixelType = gl.BYTE
	UShort PixelType = gl.UNSIGNED_SHORT
	Short  PixelType = gl.SHORT
	UInt   PixelType = gl.UNSIGNED_INT
	Int    PixelType = gl.INT
	Float  PixelType = gl.FLOAT
)

// GL_MIRROR_CLAMP_TO_EDGE is core since 4.4 and missing from the 4.1 bindings.
const glMirrorClampToEdge = 0x8743

// WrapMode is the value of TEXTURE_WRAP_S, TEXTURE_WRAP_T and TEXTURE_WRAP_R.
type WrapMode int32

const (
	ClampToEdge       WrapMode = gl.CLAMP_TO_EDGE
	ClampToBorder     WrapMode = gl.CLAMP_TO_BORDER
	MirroredRepeat    WrapMode = gl.MIRRORED_REPEAT
	Repeat            WrapMode = gl.REPEAT // GL default
	MirrorClampToEdge WrapMode = glMirrorClampToEdge
)

// MinFilter is the value of TEXTURE_MIN_FILTER.
type MinFilter int32

const (
	MinNearest        MinFilter = gl.NEAREST
	MinLinear         MinFilter = gl.LINEAR
	NearestMipNearest MinFilter = gl.NEAREST_MIPMAP_NEAREST
	LinearMipNearest  MinFilter = gl.LINEAR_MIPMAP_NEAREST
	NearestMipLinear  MinFilter = gl.NEAREST_MIPMAP_LINEAR // GL default
	LinearMipLinear   MinFilter = gl.LINEAR_MIPMAP_LINEAR
)

// MagFilter is the value of TEXTURE_MAG_FILTER.
type MagFilter int32

const (
	MagNearest MagFilter = gl.NEAREST
	MagLinear  MagFilter = gl.LINEAR // GL default
)

// The defined values of each enumeration, in declaration order.
var (
	AllTypes           = []Type{Type1D, Type2D, Type3D, TypeCubemap, Type2DMultisample}
	AllInternalFormats = []InternalFormat{
		InternalUnknown, InternalDepth, InternalDepthStencil,
		R8, R16, RG8, RGB8, SRGB, RGB10, RGB16, RGB32F, RGBA8, SRGBA, RGBA16, RGBA32F,
	}
	AllPixelFormats = []PixelFormat{
		FormatUnknown, Red, RG, RGB, FormatSRGB, BGR, RGBA, BGRA, FormatDepth, FormatDepthStencil,
	}
	AllPixelTypes  = []PixelType{UByte, Byte, UShort, Short, UInt, Int, Float}
	AllWrapModes   = []WrapMode{ClampToEdge, ClampToBorder, MirroredRepeat, Repeat, MirrorClampToEdge}
	AllMinFilters  = []MinFilter{MinNearest, MinLinear, NearestMipNearest, LinearMipNearest, NearestMipLinear, LinearMipLinear}
	AllMagFilters  = []MagFilter{MagNearest, MagLinear}
)

// IsDepth reports whether f stores depth (and possibly stencil) data.
func (f InternalFormat) IsDepth() bool {
	return f == InternalDepth || f == InternalDepthStencil
}

// IsDepth reports whether f carries depth (and possibly stencil) data.
func (f PixelFormat) IsDepth() bool {
	return f == FormatDepth || f == FormatDepthStencil
}

// IsMipmapped reports whether sampling with f reads mip levels.
func (f MinFilter) IsMipmapped() bool {
	switch f {
	case NearestMipNearest, LinearMipNearest, NearestMipLinear, LinearMipLinear:
		return true
	}
	return false
}

// SRGBVariant returns the gamma-encoded counterpart of an 8-bit color format.
// Formats without one are returned unchanged.
func SRGBVariant(f InternalFormat) InternalFormat {
	switch f {
	case RGB8:
		return SRGB
	case RGBA8:
		return SRGBA
	}
	return f
}
