package buffers

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/bloeys/teapot/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is a render target. Id 0 is the default framebuffer of the window (the back buffer)
type Framebuffer struct {
	Id     uint32
	Width  uint32
	Height uint32
}

func (fbo *Framebuffer) IsBackBuffer() bool {
	return fbo.Id == 0
}

func (fbo *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo.Id)
}

// BindWithViewport binds the framebuffer and sets the viewport to cover all of it
func (fbo *Framebuffer) BindWithViewport() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo.Id)
	gl.Viewport(0, 0, int32(fbo.Width), int32(fbo.Height))
}

func (fbo *Framebuffer) UnBind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Resize only updates the stored size, which is enough for the back buffer since the window owns its storage
func (fbo *Framebuffer) Resize(width, height uint32) {
	fbo.Width = width
	fbo.Height = height
}

func (fbo *Framebuffer) AspectRatio() float32 {

	if fbo.Height == 0 {
		return 1
	}

	return float32(fbo.Width) / float32(fbo.Height)
}

// ReadPixels reads the color contents of the framebuffer. Rows are returned top to bottom
func (fbo *Framebuffer) ReadPixels() *image.RGBA {

	assert.T(fbo.Width > 0 && fbo.Height > 0, "Can't read pixels of an empty framebuffer. Width=%d, Height=%d", fbo.Width, fbo.Height)

	img := image.NewNRGBA(image.Rect(0, 0, int(fbo.Width), int(fbo.Height)))

	fbo.Bind()
	if fbo.IsBackBuffer() {
		gl.ReadBuffer(gl.BACK)
	}

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(fbo.Width), int32(fbo.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&img.Pix[0]))

	// OpenGL rows go bottom to top
	return transform.FlipV(img)
}

// NewBackBuffer returns the framebuffer of the window
func NewBackBuffer(width, height uint32) Framebuffer {
	return Framebuffer{
		Id:     0,
		Width:  width,
		Height: height,
	}
}
