// Package source turns images, media files and Shadertoy volumes into pixel
// data described by a texture.Desc, picking formats through the texture
// registry.
package source

import (
	"fmt"

	"github.com/richinsley/texfmt/log"
	"github.com/richinsley/texfmt/texture"
)

var logger = log.New("source")

// Pixels is a texture description together with its tightly packed pixel data.
// Cubemap faces are stored back to back in +X, -X, +Y, -Y, +Z, -Z order.
type Pixels struct {
	Desc texture.Desc
	Data []byte
}

// Options controls how pixel data is converted.
type Options struct {
	// Channels forces the number of decoded channels (1-4). Zero keeps the
	// source's own channel count. Only honored by Decode.
	Channels int

	// SRGB selects the gamma-encoded storage format for 8-bit color data.
	SRGB bool

	// VFlip flips the rows of every image so the first row is the bottom one.
	VFlip bool

	// Sampler is stored in the resulting description. The zero value selects
	// texture.DefaultSampler.
	Sampler texture.Sampler

	// FFmpegPath overrides the ffmpeg executable used by Decode.
	FFmpegPath string

	// FFprobePath overrides the ffprobe executable used by Decode. When empty
	// and FFmpegPath is a path, the ffprobe next to it is used.
	FFprobePath string
}

func (o Options) sampler() texture.Sampler {
	if o.Sampler == (texture.Sampler{}) {
		return texture.DefaultSampler()
	}
	return o.Sampler
}

// formatsFor picks storage and layout formats for numChannels channels of typ.
func formatsFor(numChannels int, typ texture.PixelType) (texture.InternalFormat, texture.PixelFormat, error) {
	format, err := texture.DefaultPixelFormat(numChannels)
	if err != nil {
		return texture.InternalUnknown, texture.FormatUnknown, err
	}

	var internal texture.InternalFormat
	switch typ {
	case texture.UByte:
		internal, err = texture.DefaultInternalFormat8(numChannels)
		if err != nil {
			return texture.InternalUnknown, texture.FormatUnknown, err
		}
		return internal, format, nil
	case texture.UShort:
		switch numChannels {
		case 1:
			internal = texture.R16
		case 3:
			internal = texture.RGB16
		case 4:
			internal = texture.RGBA16
		}
	case texture.Float:
		switch numChannels {
		case 3:
			internal = texture.RGB32F
		case 4:
			internal = texture.RGBA32F
		}
	}

	if internal == texture.InternalUnknown {
		return texture.InternalUnknown, texture.FormatUnknown,
			fmt.Errorf("%w: %d channel %s data", texture.ErrUnsupported, numChannels, typ)
	}
	return internal, format, nil
}

// newDesc picks formats for numChannels channels of pixelType and validates the
// resulting description.
func newDesc(typ texture.Type, numChannels int, pixelType texture.PixelType, w, h, depth int, opt Options) (texture.Desc, error) {
	internal, format, err := formatsFor(numChannels, pixelType)
	if err != nil {
		return texture.Desc{}, err
	}
	if opt.SRGB {
		internal = texture.SRGBVariant(internal)
	}

	d := texture.Desc{
		Type:      typ,
		Internal:  internal,
		Format:    format,
		PixelType: pixelType,
		Width:     w,
		Height:    h,
		Depth:     depth,
		Sampler:   opt.sampler(),
	}
	if err = d.Validate(); err != nil {
		return texture.Desc{}, err
	}
	return d, nil
}

// newPixels builds and validates a Pixels value for data holding layers images
// of w x h texels.
func newPixels(typ texture.Type, numChannels int, pixelType texture.PixelType, w, h, depth int, data []byte, opt Options) (*Pixels, error) {
	d, err := newDesc(typ, numChannels, pixelType, w, h, depth, opt)
	if err != nil {
		return nil, err
	}

	p := &Pixels{Desc: d, Data: data}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	if opt.VFlip {
		p.flipRows()
	}
	return p, nil
}

// Validate checks the description and that Data holds exactly the bytes it
// describes.
func (p *Pixels) Validate() error {
	if err := p.Desc.Validate(); err != nil {
		return err
	}
	size, err := p.Desc.ByteSize()
	if err != nil {
		return err
	}
	if len(p.Data) != size {
		return fmt.Errorf("%w: %s needs %d bytes of pixel data, got %d", texture.ErrInvalidDesc, p.Desc, size, len(p.Data))
	}
	return nil
}

// Layer returns the pixel data of a single cubemap face or volume slice.
func (p *Pixels) Layer(index int) []byte {
	layerSize := len(p.Data) / p.Desc.Layers()
	return p.Data[index*layerSize : (index+1)*layerSize]
}

// flipRows reverses the row order of every layer in place.
func (p *Pixels) flipRows() {
	rowSize, err := p.Desc.RowBytes()
	if err != nil {
		return
	}
	tmp := make([]byte, rowSize)
	for layer := 0; layer < p.Desc.Layers(); layer++ {
		data := p.Layer(layer)
		height := p.Desc.Height
		for y := 0; y < height/2; y++ {
			top := data[y*rowSize : (y+1)*rowSize]
			bottom := data[(height-1-y)*rowSize : (height-y)*rowSize]
			copy(tmp, top)
			copy(top, bottom)
			copy(bottom, tmp)
		}
	}
}
