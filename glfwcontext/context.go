package glfwcontext

import (
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/texfmt/graphics"
	"github.com/richinsley/texfmt/log"
	options "github.com/richinsley/texfmt/options"
)

var logger = log.New("glfw")

// Context wraps a GLFW window and its OpenGL 4.1 core context.
type Context struct {
	window *glfw.Window
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
}

var _ graphics.Context = (*Context)(nil)

// New creates and initializes a new GLFW window and returns a Context object.
func New(options *options.PreviewOptions, title string, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(options.Width, options.Height, title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func()),
	}

	// Set the key callback for the window to be the method on our new context instance.
	win.SetKeyCallback(c.glfwKeyCallback)

	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

// glfwKeyCallback closes the window on Escape and dispatches to registered callbacks.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) SetTitle(title string) {
	c.window.SetTitle(title)
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	logger.Info("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	logger.Info("GLFW Terminated")
}
