package texture

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDesc is returned by Desc.Validate.
var ErrInvalidDesc = errors.New("invalid texture description")

// MaxDimension is the largest width, height or depth GL can address.
const MaxDimension = math.MaxInt32

// Desc describes a texture image and how its pixel data is laid out.
type Desc struct {
	Type      Type           `json:"type"`
	Internal  InternalFormat `json:"internal"`
	Format    PixelFormat    `json:"format"`
	PixelType PixelType      `json:"pixelType"`

	Width  int `json:"width"`
	Height int `json:"height"`
	Depth  int `json:"depth"` // slices for 3D textures, 1 otherwise

	Sampler Sampler `json:"sampler"`
}

func invalidDesc(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidDesc, fmt.Sprintf(format, args...))
}

// Validate checks that the description can be uploaded from pixel data.
func (d Desc) Validate() error {
	if !d.Type.Valid() {
		return invalidDesc("undefined texture type %s", d.Type)
	}
	if d.Type == Type2DMultisample {
		return fmt.Errorf("%w: multisample textures cannot be filled from pixel data", ErrUnsupported)
	}
	if d.Internal == InternalUnknown || !d.Internal.Valid() {
		return invalidDesc("undefined internal format %s", d.Internal)
	}
	if d.Format == FormatUnknown || !d.Format.Valid() {
		return invalidDesc("undefined pixel format %s", d.Format)
	}
	if !d.PixelType.Valid() {
		return invalidDesc("undefined pixel type %s", d.PixelType)
	}
	if d.Internal.IsDepth() != d.Format.IsDepth() {
		return invalidDesc("internal format %s does not match pixel format %s", d.Internal, d.Format)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return invalidDesc("dimensions %dx%d must be positive", d.Width, d.Height)
	}
	if d.Width > MaxDimension || d.Height > MaxDimension || d.Depth > MaxDimension {
		return invalidDesc("dimensions %dx%dx%d exceed %d", d.Width, d.Height, d.Depth, MaxDimension)
	}

	switch d.Type {
	case Type1D:
		if d.Height != 1 {
			return invalidDesc("1D texture with height %d", d.Height)
		}
	case TypeCubemap:
		if d.Width != d.Height {
			return invalidDesc("cubemap faces must be square, got %dx%d", d.Width, d.Height)
		}
	}
	if d.Type == Type3D {
		if d.Depth <= 0 {
			return invalidDesc("3D texture depth %d must be positive", d.Depth)
		}
	} else if d.Depth != 1 {
		return invalidDesc("%s texture with depth %d", d.Type, d.Depth)
	}

	if err := d.Sampler.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDesc, err)
	}
	if _, err := d.ByteSize(); err != nil {
		return err
	}
	return nil
}

// Layers returns the number of 2D images making up the texture.
func (d Desc) Layers() int {
	switch d.Type {
	case TypeCubemap:
		return 6
	case Type3D:
		return d.Depth
	}
	return 1
}

// TexelSize returns TexelByteSize for the description's format and type.
func (d Desc) TexelSize() (int, error) {
	return TexelByteSize(d.Format, d.PixelType)
}

// RowBytes returns the size of one tightly packed row of pixel data.
func (d Desc) RowBytes() (int, error) {
	texel, err := d.TexelSize()
	if err != nil {
		return 0, err
	}
	row, ok := mulSize(texel, d.Width)
	if !ok {
		return 0, invalidDesc("row of %d texels is not addressable", d.Width)
	}
	return row, nil
}

// ByteSize returns the size of the complete, tightly packed pixel data.
func (d Desc) ByteSize() (int, error) {
	row, err := d.RowBytes()
	if err != nil {
		return 0, err
	}
	layer, ok := mulSize(row, d.Height)
	if !ok {
		return 0, invalidDesc("%s overflows the addressable size", d)
	}
	size, ok := mulSize(layer, d.Layers())
	if !ok {
		return 0, invalidDesc("%s overflows the addressable size", d)
	}
	return size, nil
}

// mulSize multiplies two non-negative sizes, reporting false on overflow.
func mulSize(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

// UnpackAlignment returns the largest UNPACK_ALIGNMENT value (8, 4, 2 or 1)
// that matches tightly packed rows of this description.
func (d Desc) UnpackAlignment() (int32, error) {
	row, err := d.RowBytes()
	if err != nil {
		return 0, err
	}
	for _, align := range []int{8, 4, 2} {
		if row%align == 0 {
			return int32(align), nil
		}
	}
	return 1, nil
}

func (d Desc) String() string {
	dims := fmt.Sprintf("%dx%d", d.Width, d.Height)
	if d.Type == Type3D {
		dims = fmt.Sprintf("%dx%dx%d", d.Width, d.Height, d.Depth)
	}
	return fmt.Sprintf("%s %s internal=%s format=%s type=%s", d.Type, dims, d.Internal, d.Format, d.PixelType)
}
