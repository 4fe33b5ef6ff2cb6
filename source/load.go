package source

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// LoadFile loads path as a texture. Shadertoy volumes are recognized by their
// .bin extension; other files go through the Go image decoders first and fall
// back to ffmpeg for formats those do not handle.
func LoadFile(ctx context.Context, path string, opt Options) (*Pixels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".bin") {
		p, err := ParseVolume(f, opt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return p, nil
	}

	img, _, err := image.Decode(f)
	switch {
	case err == nil:
		p, err := FromImage(img, opt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return p, nil
	case errors.Is(err, image.ErrFormat):
		logger.Debugf("%s is not a known image format, trying ffmpeg", path)
		return Decode(ctx, path, opt)
	default:
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
}
