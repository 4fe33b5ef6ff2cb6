package source

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/richinsley/texfmt/texture"
)

// FromImage converts img into a 2D texture. Gray images keep a single channel,
// 16-bit images keep 16 bits per channel and everything else becomes 8-bit RGBA.
func FromImage(img image.Image, opt Options) (*Pixels, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var (
		numChannels int
		pixelType   texture.PixelType
		data        []byte
	)
	switch src := img.(type) {
	case *image.Gray:
		numChannels, pixelType = 1, texture.UByte
		data = packRows(src.Pix, src.Stride, src.PixOffset(bounds.Min.X, bounds.Min.Y), width, height)
	case *image.Gray16:
		numChannels, pixelType = 1, texture.UShort
		data = swap16(packRows(src.Pix, src.Stride, src.PixOffset(bounds.Min.X, bounds.Min.Y), width*2, height))
	case *image.RGBA:
		numChannels, pixelType = 4, texture.UByte
		data = packRows(src.Pix, src.Stride, src.PixOffset(bounds.Min.X, bounds.Min.Y), width*4, height)
	case *image.NRGBA:
		numChannels, pixelType = 4, texture.UByte
		data = packRows(src.Pix, src.Stride, src.PixOffset(bounds.Min.X, bounds.Min.Y), width*4, height)
	case *image.RGBA64:
		numChannels, pixelType = 4, texture.UShort
		data = swap16(packRows(src.Pix, src.Stride, src.PixOffset(bounds.Min.X, bounds.Min.Y), width*8, height))
	case *image.NRGBA64:
		numChannels, pixelType = 4, texture.UShort
		data = swap16(packRows(src.Pix, src.Stride, src.PixOffset(bounds.Min.X, bounds.Min.Y), width*8, height))
	default:
		// Convert anything else to RGBA for consistency.
		rgba := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
		numChannels, pixelType = 4, texture.UByte
		data = rgba.Pix
	}

	logger.Debugf("converted %T %dx%d to %d channel %s data", img, width, height, numChannels, pixelType)
	return newPixels(texture.Type2D, numChannels, pixelType, width, height, 1, data, opt)
}

// FromCubeFaces builds a cubemap from six images in +X, -X, +Y, -Y, +Z, -Z
// order. All faces must convert to the same square description.
func FromCubeFaces(faces [6]image.Image, opt Options) (*Pixels, error) {
	var (
		first *Pixels
		data  bytes.Buffer
	)
	for i, face := range faces {
		if face == nil {
			return nil, fmt.Errorf("input image for cube map face %d is nil", i)
		}
		p, err := FromImage(face, opt)
		if err != nil {
			return nil, fmt.Errorf("cube map face %d: %w", i, err)
		}
		if first == nil {
			first = p
		} else if p.Desc != first.Desc {
			return nil, fmt.Errorf("%w: cube map face %d is %s, face 0 is %s", texture.ErrInvalidDesc, i, p.Desc, first.Desc)
		}
		data.Write(p.Data)
	}

	cube := &Pixels{Desc: first.Desc, Data: data.Bytes()}
	cube.Desc.Type = texture.TypeCubemap
	if err := cube.Validate(); err != nil {
		return nil, err
	}
	return cube, nil
}

// packRows copies height rows of rowSize bytes out of a strided buffer.
func packRows(pix []byte, stride, offset, rowSize, height int) []byte {
	out := make([]byte, rowSize*height)
	for y := 0; y < height; y++ {
		start := offset + y*stride
		copy(out[y*rowSize:(y+1)*rowSize], pix[start:start+rowSize])
	}
	return out
}

// swap16 converts big-endian 16-bit samples, as stored by the image package,
// to the little-endian order GL reads on the platforms we run on.
func swap16(data []byte) []byte {
	for i := 0; i+1 < len(data); i += 2 {
		data[i], data[i+1] = data[i+1], data[i]
	}
	return data
}
