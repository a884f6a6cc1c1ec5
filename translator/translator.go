// Package translator converts GLSL ES 3.00 sources to desktop GLSL 4.10 so
// they can be compiled by a core profile context.
package translator

import (
	"context"
	"fmt"
	"sync"

	"github.com/richinsley/spincube/shader"
	gst "github.com/richinsley/goshadertranslator"
)

var (
	once       sync.Once
	translator *gst.ShaderTranslator
	initErr    error
)

// GetTranslator returns the process-wide translator, creating it on first
// use. Startup compiles the translator module and takes a moment.
func GetTranslator() (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, initErr
}

// GLSL implements shader.Translator with WebGL2 input and GLSL 4.10 output.
type GLSL struct {
	t *gst.ShaderTranslator
}

func New() (*GLSL, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader translator: %w", err)
	}
	return &GLSL{t: t}, nil
}

func (g *GLSL) Translate(source string, stage shader.Stage) (string, map[string]string, error) {
	out, err := g.t.TranslateShader(source, stage.String(), gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", nil, err
	}
	names := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		names[name] = v.MappedName
	}
	return out.Code, names, nil
}

var _ shader.Translator = (*GLSL)(nil)
