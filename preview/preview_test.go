package preview

import (
	"testing"

	"github.com/richinsley/texfmt/texture"
)

func TestIndexOf(t *testing.T) {
	if got := indexOf(texture.AllWrapModes, texture.Repeat); got != 3 {
		t.Fatalf("expected Repeat at index 3; got %d", got)
	}
	if got := indexOf(texture.AllMinFilters, texture.MinFilter(1)); got != -1 {
		t.Fatalf("expected -1 for an undefined filter; got %d", got)
	}
}

func TestQuadCoversViewport(t *testing.T) {
	if len(quadVertices) != 12 {
		t.Fatalf("expected two triangles of 2D vertices; got %d floats", len(quadVertices))
	}
	for i, c := range quadVertices {
		if c != -1 && c != 1 {
			t.Fatalf("vertex component %d is %f; expected a viewport corner", i, c)
		}
	}
}
