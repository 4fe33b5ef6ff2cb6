// Package translator holds the process-wide shader translator. Creating one
// compiles the translator module, so it is done once and shared.
package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	once       sync.Once
	translator *gst.ShaderTranslator
	initErr    error
)

// Get returns the shared translator, creating it on first use.
func Get(ctx context.Context) (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(ctx)
	})
	return translator, initErr
}

// ToDesktop translates WebGL2 source of the given stage ("vertex" or
// "fragment") into GLSL 4.10. It returns the translated code and a map from
// each variable's source name to the name it has in the translated code.
func ToDesktop(ctx context.Context, source, stage string) (string, map[string]string, error) {
	t, err := Get(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create shader translator: %w", err)
	}
	shader, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}

	mapped := make(map[string]string, len(shader.Variables))
	for name, v := range shader.Variables {
		mapped[name] = v.MappedName
	}
	return shader.Code, mapped, nil
}
