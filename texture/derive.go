package texture

// ComponentByteSize returns the size of a single channel of the given type, in bytes.
func ComponentByteSize(t PixelType) (int, error) {
	switch t {
	case UByte, Byte:
		return 1, nil
	case UShort, Short:
		return 2, nil
	case UInt, Int, Float:
		return 4, nil
	default:
		return 0, invariantViolation("PixelType", int64(t))
	}
}

// DefaultInternalFormat8 picks the 8 bits per channel storage format for an
// image with numChannels channels. Counts outside 1..4 yield InternalUnknown
// and an error wrapping ErrUnsupported.
func DefaultInternalFormat8(numChannels int) (InternalFormat, error) {
	switch numChannels {
	case 1:
		return R8, nil
	case 2:
		return RG8, nil
	case 3:
		return RGB8, nil
	case 4:
		return RGBA8, nil
	default:
		return InternalUnknown, unsupportedChannels(numChannels)
	}
}

// DefaultPixelFormat picks the pixel layout for an image with numChannels
// channels. Counts outside 1..4 yield FormatUnknown and an error wrapping
// ErrUnsupported.
func DefaultPixelFormat(numChannels int) (PixelFormat, error) {
	switch numChannels {
	case 1:
		return Red, nil
	case 2:
		return RG, nil
	case 3:
		return RGB, nil
	case 4:
		return RGBA, nil
	default:
		return FormatUnknown, unsupportedChannels(numChannels)
	}
}

// ComponentCount returns the number of channels in a pixel of the given format.
// FormatUnknown is not a pixel layout and is treated like any undefined value.
func ComponentCount(f PixelFormat) (int, error) {
	switch f {
	case FormatDepth, FormatDepthStencil, Red:
		return 1, nil
	case RG:
		return 2, nil
	case RGB, FormatSRGB, BGR:
		return 3, nil
	case RGBA, BGRA:
		return 4, nil
	default:
		return 0, invariantViolation("PixelFormat", int64(f))
	}
}

// TexelByteSize returns the number of bytes needed for a single texel of the
// given format and type.
func TexelByteSize(f PixelFormat, t PixelType) (int, error) {
	size, err := ComponentByteSize(t)
	if err != nil {
		return 0, err
	}
	count, err := ComponentCount(f)
	if err != nil {
		return 0, err
	}
	return size * count, nil
}
