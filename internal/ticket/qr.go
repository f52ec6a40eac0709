// Package ticket derives the unique code carried by a purchased ticket and
// renders it as a gradient-styled QR code image.
package ticket

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"regexp"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	// Pixels per QR module and quiet-zone width in modules.
	boxSize   = 10
	quietZone = 5
)

// Horizontal gradient anchors painted over the dark modules.
var (
	gradientStart = [3]float64{0x4b, 0xb1, 0xd7} // #4bb1d7
	gradientEnd   = [3]float64{0xff, 0xbd, 0x59} // #ffbd59
)

var codePattern = regexp.MustCompile(`^[0-9a-fA-F-]{36}\|[0-9a-fA-F-]{36}$`)

// Code composes the payload encoded into a ticket's QR image: the booking
// line id and the buyer's person id joined by a single pipe.
func Code(lineID, personID uuid.UUID) string {
	return lineID.String() + "|" + personID.String()
}

// ValidCode reports whether code has the canonical <UUID>|<UUID> form.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// Render encodes code as a QR code with low error correction and paints the
// dark modules with a left-to-right linear gradient on a white background.
// The output is deterministic for a given code.
func Render(code string) ([]byte, error) {
	qr, err := qrcode.New(code, qrcode.Low)
	if err != nil {
		return nil, err
	}
	qr.DisableBorder = true

	modules := qr.Bitmap()
	moduleCount := len(modules)
	size := (moduleCount + 2*quietZone) * boxSize

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, white)
		}
	}

	for my, row := range modules {
		for mx, dark := range row {
			if !dark {
				continue
			}
			for dy := 0; dy < boxSize; dy++ {
				for dx := 0; dx < boxSize; dx++ {
					x := (mx+quietZone)*boxSize + dx
					y := (my+quietZone)*boxSize + dy
					img.SetNRGBA(x, y, gradientAt(x, size))
				}
			}
		}
	}

	var buffer bytes.Buffer
	if err := png.Encode(&buffer, img); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// gradientAt interpolates between the two anchors by horizontal position
// over the full image width, quiet zone included.
func gradientAt(x, width int) color.NRGBA {
	ratio := float64(x) / float64(width-1)
	return color.NRGBA{
		R: uint8((1-ratio)*gradientStart[0] + ratio*gradientEnd[0]),
		G: uint8((1-ratio)*gradientStart[1] + ratio*gradientEnd[1]),
		B: uint8((1-ratio)*gradientStart[2] + ratio*gradientEnd[2]),
		A: 0xff,
	}
}
