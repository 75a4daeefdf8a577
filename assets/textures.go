package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/anthonynsimon/bild/transform"
	"github.com/bloeys/teapot/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/mandykoh/prism"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

type TextureLoadOptions struct {
	// NoSrgba uploads the pixels as linear RGBA. Use it for data textures like normal maps
	NoSrgba bool
	// FlipV flips the image so that its first row ends up at v=0
	FlipV bool
}

type Texture struct {
	// Path only exists for textures loaded from disk
	Path string

	TexID  uint32
	Width  int32
	Height int32

	// Pixels are tightly packed 8-bit NRGBA rows, top to bottom
	Pixels []byte
}

func (t *Texture) Delete() {

	if t.TexID == 0 {
		return
	}

	gl.DeleteTextures(1, &t.TexID)
	t.TexID = 0
}

// DecodeTexture decodes a png or jpeg image into NRGBA pixels. Nothing is uploaded to the GPU
func DecodeTexture(r io.Reader, opts *TextureLoadOptions) (Texture, error) {

	if opts == nil {
		opts = &TextureLoadOptions{}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to read texture data. Err: %w", err)
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to detect texture file type. Err: %w", err)
	}

	if kind != matchers.TypePng && kind != matchers.TypeJpeg {
		return Texture{}, fmt.Errorf("%w: expected png or jpeg but got '%s'", ErrUnsupportedImage, kind.Extension)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Texture{}, fmt.Errorf("failed to decode %s texture. Err: %w", kind.Extension, err)
	}

	if opts.FlipV {
		img = transform.FlipV(img)
	}

	nrgbaImg := prism.ConvertImageToNRGBA(img, 2)
	bounds := nrgbaImg.Bounds()

	tex := Texture{
		Width:  int32(bounds.Dx()),
		Height: int32(bounds.Dy()),
		Pixels: packPixels(nrgbaImg),
	}

	if tex.Width == 0 || tex.Height == 0 {
		return Texture{}, fmt.Errorf("texture has no pixels. Width=%d, Height=%d", tex.Width, tex.Height)
	}

	return tex, nil
}

// packPixels removes any row padding so the pixels can be uploaded as is
func packPixels(img *image.NRGBA) []byte {

	w := img.Rect.Dx()
	h := img.Rect.Dy()
	rowLen := w * 4

	if img.Stride == rowLen && len(img.Pix) == rowLen*h {
		return img.Pix
	}

	pixels := make([]byte, 0, rowLen*h)
	for y := 0; y < h; y++ {
		start := y * img.Stride
		pixels = append(pixels, img.Pix[start:start+rowLen]...)
	}

	return pixels
}

// UploadTexture creates a mipmapped, repeating OpenGL texture from the decoded pixels
func UploadTexture(tex *Texture, opts *TextureLoadOptions) {

	if opts == nil {
		opts = &TextureLoadOptions{}
	}

	gl.GenTextures(1, &tex.TexID)
	if tex.TexID == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL texture")
	}

	gl.BindTexture(gl.TEXTURE_2D, tex.TexID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	internalFormat := int32(gl.SRGB8_ALPHA8)
	if opts.NoSrgba {
		internalFormat = gl.RGBA8
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, tex.Width, tex.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&tex.Pixels[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func LoadTexture(r io.Reader, opts *TextureLoadOptions) (Texture, error) {

	tex, err := DecodeTexture(r, opts)
	if err != nil {
		return Texture{}, err
	}

	UploadTexture(&tex, opts)
	return tex, nil
}
