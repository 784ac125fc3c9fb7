package imageloader

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"vincit.fi/image-matrix/api/apitype"
)

// Gradient pattern used by the fixture images. The marker byte makes
// files distinguishable within a batch.
func gradientPixel(x int, y int, marker byte) color.NRGBA {
	return color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: marker, A: 255}
}

func writeTestPNG(t *testing.T, dir string, name string, width int, height int, marker byte) string {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, gradientPixel(x, y, marker))
		}
	}
	return writePNGFile(t, filepath.Join(dir, name), img)
}

func writeGrayPNG(t *testing.T, dir string, name string, width int, height int) string {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(y*width + x)})
		}
	}
	return writePNGFile(t, filepath.Join(dir, name), img)
}

func writePNGFile(t *testing.T, path string, img image.Image) string {
	file, err := os.Create(path)
	assert.Nil(t, err)
	defer file.Close()
	assert.Nil(t, png.Encode(file, img))
	return path
}

// gradientBytes is the pixel data a fixture image loads as, without
// vertical flipping.
func gradientBytes(width int, height int, channels int, marker byte) []byte {
	data := make([]byte, 0, width*height*channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := gradientPixel(x, y, marker)
			switch channels {
			case apitype.GrayChannels:
				data = append(data, luminance(uint32(pixel.R), uint32(pixel.G), uint32(pixel.B)))
			case apitype.GrayAlphaChannels:
				data = append(data, luminance(uint32(pixel.R), uint32(pixel.G), uint32(pixel.B)), pixel.A)
			case apitype.RGBChannels:
				data = append(data, pixel.R, pixel.G, pixel.B)
			default:
				data = append(data, pixel.R, pixel.G, pixel.B, pixel.A)
			}
		}
	}
	return data
}

func flippedRows(data []byte, width int, height int, channels int) []byte {
	rowLength := width * channels
	flipped := make([]byte, 0, len(data))
	for y := height - 1; y >= 0; y-- {
		flipped = append(flipped, data[y*rowLength:(y+1)*rowLength]...)
	}
	return flipped
}
