package source

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/richinsley/texfmt/texture"
)

func TestLoadFilePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err = png.Encode(f, image.NewGray(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	p, err := LoadFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Desc.Format != texture.Red || p.Desc.Width != 3 || p.Desc.Height != 2 {
		t.Fatalf("expected a 3x2 Red texture; got %s", p.Desc)
	}
}

func TestLoadFileVolume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.BIN")
	vol := mockVolume(1, 1, 1, 3, VolumeFormatI8, []byte{1, 2, 3})
	if err := os.WriteFile(path, vol.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Desc.Type != texture.Type3D || p.Desc.Internal != texture.RGB8 {
		t.Fatalf("expected an RGB8 volume; got %s", p.Desc)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.png"), Options{}); !os.IsNotExist(err) {
		t.Fatalf("expected a not-exist error; got %v", err)
	}
}
