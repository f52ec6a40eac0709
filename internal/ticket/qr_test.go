package ticket

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeFormat(t *testing.T) {
	lineID := uuid.New()
	personID := uuid.New()

	code := Code(lineID, personID)

	assert.Equal(t, lineID.String()+"|"+personID.String(), code)
	assert.Len(t, code, 73)
	assert.True(t, ValidCode(code))
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"two uuids", Code(uuid.New(), uuid.New()), true},
		{"missing pipe", uuid.New().String() + uuid.New().String(), false},
		{"one uuid", uuid.New().String(), false},
		{"non hex segment", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz|" + uuid.New().String(), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCode(tt.code))
		})
	}
}

func decodeImage(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRenderGradient(t *testing.T) {
	code := Code(uuid.New(), uuid.New())

	data, err := Render(code)
	require.NoError(t, err)

	img := decodeImage(t, data)
	bounds := img.Bounds()
	require.Equal(t, bounds.Dx(), bounds.Dy(), "QR image must be square")

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	assert.Equal(t, white, nrgbaAt(img, 0, 0), "quiet zone stays white")

	var leftmost, rightmost *image.Point
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := nrgbaAt(img, x, y)
			if pixel == white {
				continue
			}

			// Every dark module got a gradient color, none stayed black.
			assert.NotEqual(t, color.NRGBA{A: 0xff}, pixel)
			assert.EqualValues(t, 0xff, pixel.A)

			if leftmost == nil || x < leftmost.X {
				leftmost = &image.Point{X: x, Y: y}
			}
			if rightmost == nil || x > rightmost.X {
				rightmost = &image.Point{X: x, Y: y}
			}
		}
	}
	require.NotNil(t, leftmost, "QR image must contain dark modules")

	// Left side leans to the blue anchor, right side to the orange one.
	left := nrgbaAt(img, leftmost.X, leftmost.Y)
	assert.Greater(t, left.B, left.R)

	right := nrgbaAt(img, rightmost.X, rightmost.Y)
	assert.Greater(t, right.R, right.B)
}

func TestRenderDeterministic(t *testing.T) {
	code := Code(uuid.New(), uuid.New())

	first, err := Render(code)
	require.NoError(t, err)
	second, err := Render(code)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
