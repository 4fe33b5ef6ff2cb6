package texture

import (
	"errors"
	"math"
	"testing"
)

func rgba2D(w, h int) Desc {
	return Desc{
		Type:      Type2D,
		Internal:  RGBA8,
		Format:    RGBA,
		PixelType: UByte,
		Width:     w,
		Height:    h,
		Depth:     1,
		Sampler:   DefaultSampler(),
	}
}

func TestDescValidate(t *testing.T) {
	if err := rgba2D(4, 2).Validate(); err != nil {
		t.Fatalf("expected a valid 2D desc; got %v", err)
	}

	specs := []struct {
		mutate func(*Desc)
		exp    error
	}{
		{func(d *Desc) { d.Type = Type(1) }, ErrInvalidDesc},
		{func(d *Desc) { d.Type = Type2DMultisample }, ErrUnsupported},
		{func(d *Desc) { d.Internal = InternalUnknown }, ErrInvalidDesc},
		{func(d *Desc) { d.Format = FormatUnknown }, ErrInvalidDesc},
		{func(d *Desc) { d.PixelType = PixelType(3) }, ErrInvalidDesc},
		{func(d *Desc) { d.Internal = InternalDepth }, ErrInvalidDesc},
		{func(d *Desc) { d.Width = 0 }, ErrInvalidDesc},
		{func(d *Desc) { d.Height = -2 }, ErrInvalidDesc},
		{func(d *Desc) { d.Depth = 3 }, ErrInvalidDesc},
		{func(d *Desc) { d.Type = Type1D }, ErrInvalidDesc},
		{func(d *Desc) { d.Type = TypeCubemap }, ErrInvalidDesc},
		{func(d *Desc) { d.Type, d.Depth = Type3D, 0 }, ErrInvalidDesc},
		{func(d *Desc) { d.Sampler.Min = MinFilter(0) }, ErrInvalidDesc},
		{func(d *Desc) { d.Sampler.Min = MinFilter(0) }, ErrInvariant},
		{func(d *Desc) { d.Width = MaxDimension; d.Width++ }, ErrInvalidDesc},
		{func(d *Desc) { d.Height = MaxDimension; d.Height++ }, ErrInvalidDesc},
		{func(d *Desc) { d.Type, d.Depth = Type3D, MaxDimension; d.Depth++ }, ErrInvalidDesc},
		{func(d *Desc) { d.Type, d.Width, d.Height, d.Depth = Type3D, MaxDimension, MaxDimension, MaxDimension }, ErrInvalidDesc},
	}

	for index, spec := range specs {
		d := rgba2D(4, 2)
		spec.mutate(&d)
		if err := d.Validate(); !errors.Is(err, spec.exp) {
			t.Fatalf("[spec %d] expected %v; got %v", index, spec.exp, err)
		}
	}
}

func TestDescSizes(t *testing.T) {
	specs := []struct {
		desc     Desc
		expBytes int
		expRow   int
		expAlign int32
	}{
		{rgba2D(4, 2), 32, 16, 8},
		{Desc{Type: Type2D, Internal: RGB8, Format: RGB, PixelType: UByte, Width: 3, Height: 3, Depth: 1}, 27, 9, 1},
		{Desc{Type: Type1D, Internal: R16, Format: Red, PixelType: UShort, Width: 5, Height: 1, Depth: 1}, 10, 10, 2},
		{Desc{Type: TypeCubemap, Internal: RGBA8, Format: RGBA, PixelType: UByte, Width: 2, Height: 2, Depth: 1}, 96, 8, 8},
		{Desc{Type: Type3D, Internal: RGB32F, Format: RGB, PixelType: Float, Width: 2, Height: 2, Depth: 3}, 144, 24, 8},
		{Desc{Type: Type2D, Internal: RG8, Format: RG, PixelType: UByte, Width: 3, Height: 1, Depth: 1}, 6, 6, 2},
		{Desc{Type: Type2D, Internal: RGBA16, Format: RGBA, PixelType: UShort, Width: 1, Height: 1, Depth: 1}, 8, 8, 8},
		{Desc{Type: Type2D, Internal: R8, Format: Red, PixelType: UByte, Width: 6, Height: 1, Depth: 1}, 6, 6, 2},
		{Desc{Type: Type2D, Internal: R8, Format: Red, PixelType: UByte, Width: 12, Height: 1, Depth: 1}, 12, 12, 4},
	}

	for index, spec := range specs {
		size, err := spec.desc.ByteSize()
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if size != spec.expBytes {
			t.Fatalf("[spec %d] expected %d bytes; got %d", index, spec.expBytes, size)
		}

		row, _ := spec.desc.RowBytes()
		if row != spec.expRow {
			t.Fatalf("[spec %d] expected rows of %d bytes; got %d", index, spec.expRow, row)
		}

		align, _ := spec.desc.UnpackAlignment()
		if align != spec.expAlign {
			t.Fatalf("[spec %d] expected unpack alignment %d; got %d", index, spec.expAlign, align)
		}
	}
}

func TestDescSizeOverflow(t *testing.T) {
	specs := []Desc{
		{Type: Type3D, Internal: RGBA32F, Format: RGBA, PixelType: Float, Width: MaxDimension, Height: MaxDimension, Depth: MaxDimension, Sampler: DefaultSampler()},
		{Type: Type2D, Internal: RGBA32F, Format: RGBA, PixelType: Float, Width: MaxDimension, Height: MaxDimension, Depth: 1, Sampler: DefaultSampler()},
		{Type: TypeCubemap, Internal: RGBA32F, Format: RGBA, PixelType: Float, Width: MaxDimension, Height: MaxDimension, Depth: 1, Sampler: DefaultSampler()},
	}

	for index, d := range specs {
		size, err := d.ByteSize()
		if !errors.Is(err, ErrInvalidDesc) {
			t.Fatalf("[spec %d] expected an overflow error; got size %d, err %v", index, size, err)
		}
		if err = d.Validate(); !errors.Is(err, ErrInvalidDesc) {
			t.Fatalf("[spec %d] expected validation to fail; got %v", index, err)
		}
	}

	if _, err := (Desc{Type: Type2D, Format: RGBA, PixelType: Float, Width: -1, Height: 1, Depth: 1}).RowBytes(); !errors.Is(err, ErrInvalidDesc) {
		t.Fatalf("expected an error for a negative width; got %v", err)
	}
}

func TestMulSize(t *testing.T) {
	specs := []struct {
		a, b  int
		exp   int
		expOK bool
	}{
		{0, math.MaxInt, 0, true},
		{6, 7, 42, true},
		{math.MaxInt, 1, math.MaxInt, true},
		{math.MaxInt/2 + 1, 2, 0, false},
		{-1, 2, 0, false},
	}

	for index, spec := range specs {
		got, ok := mulSize(spec.a, spec.b)
		if got != spec.exp || ok != spec.expOK {
			t.Fatalf("[spec %d] expected (%d, %t); got (%d, %t)", index, spec.exp, spec.expOK, got, ok)
		}
	}
}

func TestDescLayers(t *testing.T) {
	d := rgba2D(2, 2)
	if d.Layers() != 1 {
		t.Fatalf("expected 1 layer for a 2D texture; got %d", d.Layers())
	}
	d.Type = TypeCubemap
	if d.Layers() != 6 {
		t.Fatalf("expected 6 layers for a cubemap; got %d", d.Layers())
	}
	d.Type, d.Depth = Type3D, 9
	if d.Layers() != 9 {
		t.Fatalf("expected 9 layers for a 3D texture; got %d", d.Layers())
	}
}

func TestDescString(t *testing.T) {
	d := Desc{Type: Type3D, Internal: RGBA8, Format: RGBA, PixelType: UByte, Width: 2, Height: 3, Depth: 4}
	exp := "3D 2x3x4 internal=RGBA8 format=RGBA type=UByte"
	if got := d.String(); got != exp {
		t.Fatalf("expected %q; got %q", exp, got)
	}
}
