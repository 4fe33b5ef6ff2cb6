package texture

import (
	"fmt"
	"strings"
)

type glEnum interface {
	~uint32 | ~int32
}

// nameTable maps enumeration values to their canonical names.
type nameTable[E glEnum] struct {
	kind   string
	values []E
	names  []string
}

func newNameTable[E glEnum](kind string, values []E, names ...string) *nameTable[E] {
	if len(values) != len(names) {
		panic(fmt.Sprintf("texture: %s has %d values but %d names", kind, len(values), len(names)))
	}
	return &nameTable[E]{kind: kind, values: values, names: names}
}

func (t *nameTable[E]) lookup(v E) (string, bool) {
	for i, value := range t.values {
		if value == v {
			return t.names[i], true
		}
	}
	return "", false
}

func (t *nameTable[E]) valid(v E) bool {
	_, ok := t.lookup(v)
	return ok
}

func (t *nameTable[E]) format(v E) string {
	if name, ok := t.lookup(v); ok {
		return name
	}
	return fmt.Sprintf("%s(0x%04X)", t.kind, int64(v))
}

func (t *nameTable[E]) parse(s string) (E, error) {
	s = strings.TrimSpace(s)
	for i, name := range t.names {
		if strings.EqualFold(name, s) {
			return t.values[i], nil
		}
	}
	var zero E
	return zero, fmt.Errorf("%w: unknown %s name %q", ErrUnsupported, t.kind, s)
}

func (t *nameTable[E]) marshal(v E) ([]byte, error) {
	name, ok := t.lookup(v)
	if !ok {
		return nil, &InvariantError{Kind: t.kind, Value: int64(v)}
	}
	return []byte(name), nil
}

var (
	typeNames = newNameTable("Type", AllTypes,
		"1D", "2D", "3D", "Cubemap", "2DMultisample")
	internalFormatNames = newNameTable("InternalFormat", AllInternalFormats,
		"Unknown", "Depth", "DepthStencil",
		"R8", "R16", "RG8", "RGB8", "SRGB", "RGB10", "RGB16", "RGB32F", "RGBA8", "SRGBA", "RGBA16", "RGBA32F")
	pixelFormatNames = newNameTable("PixelFormat", AllPixelFormats,
		"Unknown", "Red", "RG", "RGB", "SRGB", "BGR", "RGBA", "BGRA", "Depth", "DepthStencil")
	pixelTypeNames = newNameTable("PixelType", AllPixelTypes,
		"UByte", "Byte", "UShort", "Short", "UInt", "Int", "Float")
	wrapModeNames = newNameTable("WrapMode", AllWrapModes,
		"ClampToEdge", "ClampToBorder", "MirroredRepeat", "Repeat", "MirrorClampToEdge")
	minFilterNames = newNameTable("MinFilter", AllMinFilters,
		"Nearest", "Linear", "NearestMipNearest", "LinearMipNearest", "NearestMipLinear", "LinearMipLinear")
	magFilterNames = newNameTable("MagFilter", AllMagFilters,
		"Nearest", "Linear")
)

func (t Type) String() string               { return typeNames.format(t) }
func (t Type) Valid() bool                  { return typeNames.valid(t) }
func (t Type) MarshalText() ([]byte, error) { return typeNames.marshal(t) }
func (t *Type) UnmarshalText(text []byte) (err error) {
	*t, err = typeNames.parse(string(text))
	return err
}

// ParseType returns the Type with the given case-insensitive name.
func ParseType(s string) (Type, error) { return typeNames.parse(s) }

func (f InternalFormat) String() string               { return internalFormatNames.format(f) }
func (f InternalFormat) Valid() bool                  { return internalFormatNames.valid(f) }
func (f InternalFormat) MarshalText() ([]byte, error) { return internalFormatNames.marshal(f) }
func (f *InternalFormat) UnmarshalText(text []byte) (err error) {
	*f, err = internalFormatNames.parse(string(text))
	return err
}

// ParseInternalFormat returns the InternalFormat with the given case-insensitive name.
func ParseInternalFormat(s string) (InternalFormat, error) { return internalFormatNames.parse(s) }

func (f PixelFormat) String() string               { return pixelFormatNames.format(f) }
func (f PixelFormat) Valid() bool                  { return pixelFormatNames.valid(f) }
func (f PixelFormat) MarshalText() ([]byte, error) { return pixelFormatNames.marshal(f) }
func (f *PixelFormat) UnmarshalText(text []byte) (err error) {
	*f, err = pixelFormatNames.parse(string(text))
	return err
}

// ParsePixelFormat returns the PixelFormat with the given case-insensitive name.
func ParsePixelFormat(s string) (PixelFormat, error) { return pixelFormatNames.parse(s) }

func (t PixelType) String() string               { return pixelTypeNames.format(t) }
func (t PixelType) Valid() bool                  { return pixelTypeNames.valid(t) }
func (t PixelType) MarshalText() ([]byte, error) { return pixelTypeNames.marshal(t) }
func (t *PixelType) UnmarshalText(text []byte) (err error) {
	*t, err = pixelTypeNames.parse(string(text))
	return err
}

// ParsePixelType returns the PixelType with the given case-insensitive name.
func ParsePixelType(s string) (PixelType, error) { return pixelTypeNames.parse(s) }

func (m WrapMode) String() string               { return wrapModeNames.format(m) }
func (m WrapMode) Valid() bool                  { return wrapModeNames.valid(m) }
func (m WrapMode) MarshalText() ([]byte, error) { return wrapModeNames.marshal(m) }
func (m *WrapMode) UnmarshalText(text []byte) (err error) {
	*m, err = wrapModeNames.parse(string(text))
	return err
}

// ParseWrapMode returns the WrapMode with the given case-insensitive name.
func ParseWrapMode(s string) (WrapMode, error) { return wrapModeNames.parse(s) }

func (f MinFilter) String() string               { return minFilterNames.format(f) }
func (f MinFilter) Valid() bool                  { return minFilterNames.valid(f) }
func (f MinFilter) MarshalText() ([]byte, error) { return minFilterNames.marshal(f) }
func (f *MinFilter) UnmarshalText(text []byte) (err error) {
	*f, err = minFilterNames.parse(string(text))
	return err
}

// ParseMinFilter returns the MinFilter with the given case-insensitive name.
func ParseMinFilter(s string) (MinFilter, error) { return minFilterNames.parse(s) }

func (f MagFilter) String() string               { return magFilterNames.format(f) }
func (f MagFilter) Valid() bool                  { return magFilterNames.valid(f) }
func (f MagFilter) MarshalText() ([]byte, error) { return magFilterNames.marshal(f) }
func (f *MagFilter) UnmarshalText(text []byte) (err error) {
	*f, err = magFilterNames.parse(string(text))
	return err
}

// ParseMagFilter returns the MagFilter with the given case-insensitive name.
func ParseMagFilter(s string) (MagFilter, error) { return magFilterNames.parse(s) }
