package source

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/richinsley/texfmt/texture"
)

func TestFromImageFormats(t *testing.T) {
	rect := image.Rect(0, 0, 2, 1)
	palette := color.Palette{color.RGBA{1, 2, 3, 255}, color.RGBA{4, 5, 6, 255}}

	specs := []struct {
		img         image.Image
		expInternal texture.InternalFormat
		expFormat   texture.PixelFormat
		expType     texture.PixelType
		expLen      int
	}{
		{image.NewGray(rect), texture.R8, texture.Red, texture.UByte, 2},
		{image.NewGray16(rect), texture.R16, texture.Red, texture.UShort, 4},
		{image.NewRGBA(rect), texture.RGBA8, texture.RGBA, texture.UByte, 8},
		{image.NewNRGBA(rect), texture.RGBA8, texture.RGBA, texture.UByte, 8},
		{image.NewRGBA64(rect), texture.RGBA16, texture.RGBA, texture.UShort, 16},
		{image.NewNRGBA64(rect), texture.RGBA16, texture.RGBA, texture.UShort, 16},
		{image.NewPaletted(rect, palette), texture.RGBA8, texture.RGBA, texture.UByte, 8},
	}

	for index, spec := range specs {
		p, err := FromImage(spec.img, Options{})
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		d := p.Desc
		if d.Type != texture.Type2D || d.Width != 2 || d.Height != 1 || d.Depth != 1 {
			t.Fatalf("[spec %d] unexpected description %s", index, d)
		}
		if d.Internal != spec.expInternal || d.Format != spec.expFormat || d.PixelType != spec.expType {
			t.Fatalf("[spec %d] expected %s/%s/%s; got %s", index, spec.expInternal, spec.expFormat, spec.expType, d)
		}
		if len(p.Data) != spec.expLen {
			t.Fatalf("[spec %d] expected %d bytes; got %d", index, spec.expLen, len(p.Data))
		}
		if d.Sampler != texture.DefaultSampler() {
			t.Fatalf("[spec %d] expected the default sampler; got %s", index, d.Sampler)
		}
	}
}

func TestFromImageNil(t *testing.T) {
	if _, err := FromImage(nil, Options{}); err == nil {
		t.Fatal("expected an error for a nil image")
	}
}

func TestFromImagePalettedPixels(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{
		color.RGBA{1, 2, 3, 255},
		color.RGBA{4, 5, 6, 255},
	})
	img.Pix = []byte{1, 0}

	p, err := FromImage(img, Options{})
	if err != nil {
		t.Fatal(err)
	}
	exp := []byte{4, 5, 6, 255, 1, 2, 3, 255}
	if !bytes.Equal(p.Data, exp) {
		t.Fatalf("expected %v; got %v", exp, p.Data)
	}
}

func TestFromImageSwapsSixteenBitSamples(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 1, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 0x0102})

	p, err := FromImage(img, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if exp := []byte{0x02, 0x01}; !bytes.Equal(p.Data, exp) {
		t.Fatalf("expected little-endian sample %v; got %v", exp, p.Data)
	}
}

func TestFromImageSubImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 3))

	p, err := FromImage(sub, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if exp := []byte{5, 6, 9, 10}; !bytes.Equal(p.Data, exp) {
		t.Fatalf("expected %v; got %v", exp, p.Data)
	}
}

func TestFromImageOptions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Pix = []byte{1, 1, 1, 1, 2, 2, 2, 2}

	sampler := texture.SamplerFromShadertoy("nearest", "clamp")
	p, err := FromImage(img, Options{SRGB: true, VFlip: true, Sampler: sampler})
	if err != nil {
		t.Fatal(err)
	}
	if p.Desc.Internal != texture.SRGBA {
		t.Fatalf("expected SRGBA storage; got %s", p.Desc.Internal)
	}
	if p.Desc.Sampler != sampler {
		t.Fatalf("expected sampler %s; got %s", sampler, p.Desc.Sampler)
	}
	if exp := []byte{2, 2, 2, 2, 1, 1, 1, 1}; !bytes.Equal(p.Data, exp) {
		t.Fatalf("expected flipped rows %v; got %v", exp, p.Data)
	}

	// sRGB does not apply to single channel data.
	gray, err := FromImage(image.NewGray(image.Rect(0, 0, 1, 1)), Options{SRGB: true})
	if err != nil {
		t.Fatal(err)
	}
	if gray.Desc.Internal != texture.R8 {
		t.Fatalf("expected R8 storage; got %s", gray.Desc.Internal)
	}
}

func TestFromCubeFaces(t *testing.T) {
	var faces [6]image.Image
	for i := range faces {
		face := image.NewRGBA(image.Rect(0, 0, 2, 2))
		face.Pix[0] = byte(i)
		faces[i] = face
	}

	p, err := FromCubeFaces(faces, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Desc.Type != texture.TypeCubemap {
		t.Fatalf("expected a cubemap; got %s", p.Desc.Type)
	}
	if len(p.Data) != 6*2*2*4 {
		t.Fatalf("expected %d bytes; got %d", 6*2*2*4, len(p.Data))
	}
	for i := 0; i < 6; i++ {
		if p.Layer(i)[0] != byte(i) {
			t.Fatalf("expected face %d to start with %d; got %d", i, i, p.Layer(i)[0])
		}
	}
}

func TestFromCubeFacesMismatch(t *testing.T) {
	var faces [6]image.Image
	for i := range faces {
		faces[i] = image.NewRGBA(image.Rect(0, 0, 2, 2))
	}
	faces[3] = image.NewGray(image.Rect(0, 0, 2, 2))
	if _, err := FromCubeFaces(faces, Options{}); !errors.Is(err, texture.ErrInvalidDesc) {
		t.Fatalf("expected ErrInvalidDesc for mismatched faces; got %v", err)
	}

	for i := range faces {
		faces[i] = image.NewRGBA(image.Rect(0, 0, 2, 1))
	}
	if _, err := FromCubeFaces(faces, Options{}); !errors.Is(err, texture.ErrInvalidDesc) {
		t.Fatalf("expected ErrInvalidDesc for non-square faces; got %v", err)
	}

	faces[5] = nil
	if _, err := FromCubeFaces(faces, Options{}); err == nil {
		t.Fatal("expected an error for a missing face")
	}
}
