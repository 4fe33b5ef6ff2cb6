package texture

import (
	"encoding/json"
	"fmt"
	"io"
)

// Sampler holds the wrap and filter state applied to a texture object.
type Sampler struct {
	WrapS WrapMode  `json:"wrapS"`
	WrapT WrapMode  `json:"wrapT"`
	WrapR WrapMode  `json:"wrapR"`
	Min   MinFilter `json:"min"`
	Mag   MagFilter `json:"mag"`
}

// DefaultSampler returns the state GL assigns to a freshly created texture.
func DefaultSampler() Sampler {
	return Sampler{
		WrapS: Repeat,
		WrapT: Repeat,
		WrapR: Repeat,
		Min:   NearestMipLinear,
		Mag:   MagLinear,
	}
}

// SamplerFromShadertoy converts Shadertoy sampler strings into sampler state.
// Unrecognized strings fall back to repeat wrapping and linear filtering.
func SamplerFromShadertoy(filter, wrap string) Sampler {
	var mode WrapMode
	switch wrap {
	case "repeat":
		mode = Repeat
	case "clamp":
		mode = ClampToEdge
	default:
		mode = Repeat
	}

	s := Sampler{WrapS: mode, WrapT: mode, WrapR: mode}
	switch filter {
	case "mipmap":
		s.Min, s.Mag = LinearMipLinear, MagLinear
	case "linear":
		s.Min, s.Mag = MinLinear, MagLinear
	case "nearest":
		s.Min, s.Mag = MinNearest, MagNearest
	default:
		s.Min, s.Mag = MinLinear, MagLinear
	}
	return s
}

// SetWrap sets all three wrap axes to m.
func (s *Sampler) SetWrap(m WrapMode) {
	s.WrapS, s.WrapT, s.WrapR = m, m, m
}

// UsesMipmaps reports whether the min filter reads mip levels, in which case
// the texture needs a mip chain.
func (s Sampler) UsesMipmaps() bool {
	return s.Min.IsMipmapped()
}

// Validate checks that every field holds a defined value.
func (s Sampler) Validate() error {
	switch {
	case !s.WrapS.Valid():
		return &InvariantError{Kind: "WrapMode", Value: int64(s.WrapS)}
	case !s.WrapT.Valid():
		return &InvariantError{Kind: "WrapMode", Value: int64(s.WrapT)}
	case !s.WrapR.Valid():
		return &InvariantError{Kind: "WrapMode", Value: int64(s.WrapR)}
	case !s.Min.Valid():
		return &InvariantError{Kind: "MinFilter", Value: int64(s.Min)}
	case !s.Mag.Valid():
		return &InvariantError{Kind: "MagFilter", Value: int64(s.Mag)}
	}
	return nil
}

func (s Sampler) String() string {
	return fmt.Sprintf("wrap=%s/%s/%s min=%s mag=%s", s.WrapS, s.WrapT, s.WrapR, s.Min, s.Mag)
}

// LoadSamplerJSON reads a sampler description such as
//
//	{"wrapS": "ClampToEdge", "min": "LinearMipLinear"}
//
// Omitted fields keep their GL defaults.
func LoadSamplerJSON(r io.Reader) (Sampler, error) {
	s := DefaultSampler()
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Sampler{}, fmt.Errorf("failed to decode sampler: %w", err)
	}
	return s, nil
}
