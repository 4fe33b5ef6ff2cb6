package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	SetTitle(title string)
}
