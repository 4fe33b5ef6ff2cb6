package main

import (
	"bytes"
	"image"
	"regexp"
	"testing"

	"github.com/richinsley/texfmt/source"
	"github.com/richinsley/texfmt/texture"
)

func TestWriteDescription(t *testing.T) {
	specs := []struct {
		img    image.Image
		expRow map[string]string
	}{
		{
			image.NewNRGBA(image.Rect(0, 0, 3, 2)),
			map[string]string{
				"Internal format":  `RGBA8 \(0x8058\)`,
				"Pixel format":     `RGBA \(0x1908\)`,
				"Size":             "3x2x1",
				"Texel bytes":      "4",
				"Row bytes":        "12",
				"Unpack alignment": "4",
				"Total bytes":      "24",
			},
		},
		{
			image.NewGray(image.Rect(0, 0, 3, 1)),
			map[string]string{
				"Internal format":  `R8 \(0x8229\)`,
				"Pixel format":     `Red \(0x1903\)`,
				"Row bytes":        "3",
				"Unpack alignment": "1",
			},
		},
	}

	for index, spec := range specs {
		p, err := source.FromImage(spec.img, source.Options{Sampler: texture.DefaultSampler()})
		if err != nil {
			t.Fatalf("[spec %d] %v", index, err)
		}

		var buf bytes.Buffer
		if err := writeDescription(&buf, "test.png", p); err != nil {
			t.Fatalf("[spec %d] %v", index, err)
		}
		out := buf.String()
		for prop, value := range spec.expRow {
			re := regexp.MustCompile(`\|\s*` + prop + `\s*\|\s*` + value + `\s*\|`)
			if !re.MatchString(out) {
				t.Fatalf("[spec %d] expected %s = %s in:\n%s", index, prop, value, out)
			}
		}
	}
}
