package options

import (
	"fmt"
	"os"

	"github.com/richinsley/texfmt/source"
	"github.com/richinsley/texfmt/texture"
)

// PreviewOptions collects the command-line settings of the preview and info
// commands.
type PreviewOptions struct {
	Width       int
	Height      int
	Filter      string // Shadertoy filter name: mipmap, linear or nearest
	Wrap        string // Shadertoy wrap name: repeat or clamp
	SamplerFile string // optional JSON sampler description, overrides Filter and Wrap
	SRGB        bool
	VFlip       bool
	Channels    int // forced channel count for ffmpeg decoding, 0 keeps the file's
	FFmpegPath  string
	FFprobePath string
}

// Default returns the options used when no flags are given.
func Default() *PreviewOptions {
	return &PreviewOptions{
		Width:  1280,
		Height: 720,
		Filter: "mipmap",
		Wrap:   "repeat",
	}
}

// Sampler returns the sampler state read from SamplerFile, or the one selected
// by Filter and Wrap when no file is set.
func (o *PreviewOptions) Sampler() (texture.Sampler, error) {
	if o.SamplerFile == "" {
		return texture.SamplerFromShadertoy(o.Filter, o.Wrap), nil
	}

	f, err := os.Open(o.SamplerFile)
	if err != nil {
		return texture.Sampler{}, err
	}
	defer f.Close()

	s, err := texture.LoadSamplerJSON(f)
	if err != nil {
		return texture.Sampler{}, fmt.Errorf("%s: %w", o.SamplerFile, err)
	}
	return s, s.Validate()
}

// SourceOptions converts the options into pixel source settings using the
// given sampler.
func (o *PreviewOptions) SourceOptions(sampler texture.Sampler) source.Options {
	return source.Options{
		Channels:    o.Channels,
		SRGB:        o.SRGB,
		VFlip:       o.VFlip,
		Sampler:     sampler,
		FFmpegPath:  o.FFmpegPath,
		FFprobePath: o.FFprobePath,
	}
}
