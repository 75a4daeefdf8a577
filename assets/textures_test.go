package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestImage returns a 3x2 image whose red channel is 10*x and green channel is 10*y
func newTestImage() *image.NRGBA {

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(10 * x), G: uint8(10 * y), B: 200, A: 255})
		}
	}

	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestDecodeTexturePNG(t *testing.T) {

	tex, err := DecodeTexture(bytes.NewReader(encodePNG(t, newTestImage())), nil)
	require.NoError(t, err)

	assert.Equal(t, int32(3), tex.Width)
	assert.Equal(t, int32(2), tex.Height)
	require.Len(t, tex.Pixels, 3*2*4)
	assert.Zero(t, tex.TexID)

	// Second row, third pixel
	assert.Equal(t, []byte{20, 10, 200, 255}, tex.Pixels[(1*3+2)*4:(1*3+2)*4+4])
}

func TestDecodeTextureFlipV(t *testing.T) {

	tex, err := DecodeTexture(bytes.NewReader(encodePNG(t, newTestImage())), &TextureLoadOptions{FlipV: true})
	require.NoError(t, err)

	// The bottom row is now first
	assert.Equal(t, []byte{0, 10, 200, 255}, tex.Pixels[0:4])
	assert.Equal(t, []byte{20, 0, 200, 255}, tex.Pixels[(1*3+2)*4:(1*3+2)*4+4])
}

func TestDecodeTextureJPEG(t *testing.T) {

	buf := &bytes.Buffer{}
	require.NoError(t, jpeg.Encode(buf, newTestImage(), &jpeg.Options{Quality: 100}))

	tex, err := DecodeTexture(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), tex.Width)
	assert.Equal(t, int32(2), tex.Height)
	assert.Len(t, tex.Pixels, 3*2*4)
}

func TestDecodeTextureUnsupported(t *testing.T) {

	buf := &bytes.Buffer{}
	require.NoError(t, gif.Encode(buf, newTestImage(), nil))

	_, err := DecodeTexture(buf, nil)
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = DecodeTexture(strings.NewReader("definitely not an image"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = DecodeTexture(strings.NewReader(""), nil)
	assert.Error(t, err)
}

func TestDecodeTextureCorrupt(t *testing.T) {

	// Valid png signature followed by garbage
	data := encodePNG(t, newTestImage())
	data = append(data[:16:16], bytes.Repeat([]byte{0xAB}, 64)...)

	_, err := DecodeTexture(bytes.NewReader(data), nil)
	assert.ErrorContains(t, err, "failed to decode png texture")
}

func TestPackPixelsRemovesPadding(t *testing.T) {

	img := newTestImage().SubImage(image.Rect(1, 0, 3, 2)).(*image.NRGBA)
	pixels := packPixels(img)

	require.Len(t, pixels, 2*2*4)
	assert.Equal(t, []byte{10, 0, 200, 255}, pixels[0:4])
	assert.Equal(t, []byte{20, 10, 200, 255}, pixels[12:16])
}

func TestSaveScreenshot(t *testing.T) {

	dir := filepath.Join(t.TempDir(), "shots")
	now := time.Date(2024, 3, 5, 14, 7, 9, 123_000_000, time.UTC)

	path, err := SaveScreenshot(dir, newTestImage(), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "screenshot-20240305-140709.123.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}
