package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePNG renders a solid-color square as PNG bytes.
func encodePNG(t *testing.T, size int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestConvert(t *testing.T) {
	t.Run("scales proportionally and packs rows", func(t *testing.T) {
		data := encodePNG(t, 10, color.Gray{Y: 128})

		bm, err := Convert(data, 16)
		require.NoError(t, err)
		assert.Equal(t, 16, bm.Width)
		assert.Equal(t, 16, bm.Height)
		assert.Equal(t, 2, bm.Stride)
		assert.Len(t, bm.Data, 32)
	})

	t.Run("mid gray binarizes to white", func(t *testing.T) {
		// Threshold for a uniform 128 image is 128*0.6; the adjusted sample
		// stays above it, so no dot is printed.
		data := encodePNG(t, 10, color.Gray{Y: 128})

		bm, err := Convert(data, 16)
		require.NoError(t, err)
		for _, b := range bm.Data {
			assert.Equal(t, byte(0), b)
		}
	})

	t.Run("black binarizes to all dots", func(t *testing.T) {
		data := encodePNG(t, 10, color.Black)

		bm, err := Convert(data, 16)
		require.NoError(t, err)
		for _, b := range bm.Data {
			assert.Equal(t, byte(0xFF), b)
		}
	})

	t.Run("transparent pixels are paper white", func(t *testing.T) {
		data := encodePNG(t, 10, color.RGBA{})

		bm, err := Convert(data, 16)
		require.NoError(t, err)
		for _, b := range bm.Data {
			assert.Equal(t, byte(0), b)
		}
	})

	t.Run("undecodable data fails with conversion error", func(t *testing.T) {
		_, err := Convert([]byte("not an image"), 384)
		assert.ErrorIs(t, err, ErrConversionFailed)
	})

	t.Run("invalid target width fails", func(t *testing.T) {
		data := encodePNG(t, 10, color.Black)
		_, err := Convert(data, 0)
		assert.ErrorIs(t, err, ErrConversionFailed)
	})
}
