package source

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/richinsley/texfmt/texture"
)

// Shadertoy volume format codes.
const (
	VolumeFormatI8  = 0
	VolumeFormatF32 = 10
)

// volumeHeader is the 20-byte little-endian header of a Shadertoy .bin volume.
type volumeHeader struct {
	Signature   uint32
	Width       uint32
	Height      uint32
	Depth       uint32
	NumChannels uint8
	Layout      uint8 // unused
	Format      uint16
}

// ParseVolume reads a Shadertoy volume (.bin) into a 3D texture. Trailing bytes
// past the described volume are ignored.
func ParseVolume(r io.Reader, opt Options) (*Pixels, error) {
	var hdr volumeHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("failed to read volume header: %w", err)
	}

	var pixelType texture.PixelType
	switch hdr.Format {
	case VolumeFormatI8:
		pixelType = texture.UByte
	case VolumeFormatF32:
		pixelType = texture.Float
	default:
		return nil, fmt.Errorf("%w: volume binary format code %d", texture.ErrUnsupported, hdr.Format)
	}

	// Volumes are stored as they are sampled; sRGB only applies to images.
	opt.SRGB = false
	opt.VFlip = false
	desc, err := newDesc(texture.Type3D, int(hdr.NumChannels), pixelType,
		int(hdr.Width), int(hdr.Height), int(hdr.Depth), opt)
	if err != nil {
		return nil, err
	}
	size, err := desc.ByteSize()
	if err != nil {
		return nil, err
	}

	// The header may claim more than the file holds; read only what is there.
	data, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return nil, fmt.Errorf("failed to read volume data: %w", err)
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: %s needs %d bytes of volume data, got %d: %w",
			texture.ErrInvalidDesc, desc, size, len(data), io.ErrUnexpectedEOF)
	}

	logger.Infof("Parsed volume %dx%dx%d, %d channel(s) of %s", hdr.Width, hdr.Height, hdr.Depth, hdr.NumChannels, pixelType)

	p := &Pixels{Desc: desc, Data: data}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
