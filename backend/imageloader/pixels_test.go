package imageloader

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/image-matrix/api/apitype"
)

// plainImage hides the concrete type so copyPixels takes the generic path.
type plainImage struct {
	image.Image
}

func TestCopyPixels_GenericPathKeepsStraightAlpha(t *testing.T) {
	a := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	img.SetNRGBA(2, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	fast := make([]byte, 3*apitype.RGBAChannels)
	copyPixels(img, apitype.RGBAChannels, fast)

	generic := make([]byte, 3*apitype.RGBAChannels)
	copyPixels(plainImage{img}, apitype.RGBAChannels, generic)

	a.Equal([]byte{
		200, 100, 50, 128,
		10, 20, 30, 0,
		1, 2, 3, 255,
	}, fast)
	a.Equal(fast, generic)
}
