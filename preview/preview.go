// Package preview draws a single texture on a full-screen quad.
package preview

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/texfmt/glfwcontext"
	"github.com/richinsley/texfmt/gltex"
	"github.com/richinsley/texfmt/graphics"
	"github.com/richinsley/texfmt/log"
	"github.com/richinsley/texfmt/options"
	"github.com/richinsley/texfmt/shader"
	"github.com/richinsley/texfmt/source"
	"github.com/richinsley/texfmt/texture"
	"github.com/richinsley/texfmt/translator"
)

var logger = log.New("preview")

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

type uniformLocations struct {
	texture    int32
	resolution int32
	slice      int32
	channels   int32
	flip       int32
}

// Viewer owns the preview window, its shader program and the texture.
type Viewer struct {
	context graphics.Context
	title   string
	tex     *gltex.Texture
	program uint32
	quadVAO uint32
	quadVBO uint32
	locs    uniformLocations

	channels int32
	flip     bool
	slice    float32
	sampler  texture.Sampler
}

// New opens the preview window and uploads p. GLFW must be initialized and
// the caller must stay on the main OS thread.
func New(ctx context.Context, opts *options.PreviewOptions, title string, p *source.Pixels) (*Viewer, error) {
	fragmentSource, err := shader.BlitFragment(p.Desc.Type)
	if err != nil {
		return nil, err
	}
	channels, err := texture.ComponentCount(p.Desc.Format)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		title:    title,
		channels: int32(channels),
		slice:    0.5,
		sampler:  p.Desc.Sampler,
	}

	window, err := glfwcontext.New(opts, title, true)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize glfw context: %w", err)
	}
	v.context = window
	v.context.MakeCurrent()
	if err = gl.Init(); err != nil {
		v.context.Shutdown()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Infof("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	code, mapped, err := translator.ToDesktop(ctx, fragmentSource, "fragment")
	if err != nil {
		v.context.Shutdown()
		return nil, err
	}
	v.program, err = newProgram(shader.Vertex(), code)
	if err != nil {
		v.context.Shutdown()
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	uniform := func(name string) int32 {
		if mappedName, ok := mapped[name]; ok {
			name = mappedName
		}
		return gl.GetUniformLocation(v.program, gl.Str(name+"\x00"))
	}
	v.locs = uniformLocations{
		texture:    uniform(shader.UniformTexture),
		resolution: uniform(shader.UniformResolution),
		slice:      uniform(shader.UniformSlice),
		channels:   uniform(shader.UniformChannels),
		flip:       uniform(shader.UniformFlip),
	}

	v.tex, err = gltex.New(p)
	if err != nil {
		gl.DeleteProgram(v.program)
		v.context.Shutdown()
		return nil, err
	}

	gl.GenVertexArrays(1, &v.quadVAO)
	gl.GenBuffers(1, &v.quadVBO)
	gl.BindVertexArray(v.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	v.registerKeys(window)
	v.updateTitle()
	return v, nil
}

// registerKeys binds the sampler cycling keys.
func (v *Viewer) registerKeys(window *glfwcontext.Context) {
	window.RegisterKeyCallback(glfw.KeyF, func() {
		s := v.sampler
		s.Min = texture.AllMinFilters[(indexOf(texture.AllMinFilters, s.Min)+1)%len(texture.AllMinFilters)]
		v.setSampler(s)
	})
	window.RegisterKeyCallback(glfw.KeyG, func() {
		s := v.sampler
		s.Mag = texture.AllMagFilters[(indexOf(texture.AllMagFilters, s.Mag)+1)%len(texture.AllMagFilters)]
		v.setSampler(s)
	})
	window.RegisterKeyCallback(glfw.KeyW, func() {
		s := v.sampler
		s.SetWrap(texture.AllWrapModes[(indexOf(texture.AllWrapModes, s.WrapS)+1)%len(texture.AllWrapModes)])
		v.setSampler(s)
	})
	window.RegisterKeyCallback(glfw.KeyV, func() {
		v.flip = !v.flip
	})
	window.RegisterKeyCallback(glfw.KeyUp, func() {
		v.slice = min(v.slice+1.0/float32(max(v.tex.Desc().Depth, 1)), 1)
		v.updateTitle()
	})
	window.RegisterKeyCallback(glfw.KeyDown, func() {
		v.slice = max(v.slice-1.0/float32(max(v.tex.Desc().Depth, 1)), 0)
		v.updateTitle()
	})
}

func indexOf[E comparable](values []E, v E) int {
	for i, value := range values {
		if value == v {
			return i
		}
	}
	return -1
}

func (v *Viewer) setSampler(s texture.Sampler) {
	if err := v.tex.ApplySampler(s); err != nil {
		logger.Warningf("could not apply sampler %s: %v", s, err)
		return
	}
	v.sampler = s
	logger.Noticef("sampler: %s", s)
	v.updateTitle()
}

func (v *Viewer) updateTitle() {
	var sb strings.Builder
	sb.WriteString(v.title)
	sb.WriteString(" | ")
	sb.WriteString(v.sampler.String())
	if v.tex != nil && v.tex.Desc().Type == texture.Type3D {
		fmt.Fprintf(&sb, " slice=%.2f", v.slice)
	}
	v.context.SetTitle(sb.String())
}

// Run draws the texture until the window is closed.
func (v *Viewer) Run() {
	for !v.context.ShouldClose() {
		fbWidth, fbHeight := v.context.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.ClearColor(0.1, 0.1, 0.1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(v.program)
		v.tex.Bind(0)
		v.updateUniforms(fbWidth, fbHeight)
		gl.BindVertexArray(v.quadVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
		gl.BindVertexArray(0)

		v.context.EndFrame()
	}
}

func (v *Viewer) updateUniforms(width, height int) {
	if v.locs.texture != -1 {
		gl.Uniform1i(v.locs.texture, 0)
	}
	if v.locs.resolution != -1 {
		gl.Uniform2f(v.locs.resolution, float32(width), float32(height))
	}
	if v.locs.slice != -1 {
		gl.Uniform1f(v.locs.slice, v.slice)
	}
	if v.locs.channels != -1 {
		gl.Uniform1i(v.locs.channels, v.channels)
	}
	if v.locs.flip != -1 {
		var flip int32
		if v.flip {
			flip = 1
		}
		gl.Uniform1i(v.locs.flip, flip)
	}
}

// Shutdown releases all GL objects and closes the window.
func (v *Viewer) Shutdown() {
	v.tex.Destroy()
	gl.DeleteProgram(v.program)
	gl.DeleteBuffers(1, &v.quadVBO)
	gl.DeleteVertexArrays(1, &v.quadVAO)
	v.context.Shutdown()
}
