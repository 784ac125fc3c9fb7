package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testImage(width int, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	return img
}

func TestDecoder(t *testing.T) {
	a := assert.New(t)

	t.Run("Known extensions", func(t *testing.T) {
		for _, path := range []string{
			"a.png", "a.jpg", "a.jpeg", "a.bmp", "a.tga", "a.gif",
			"a.tif", "a.tiff", "a.webp", "a.hdr", "a.psd",
			"a.pbm", "a.pgm", "a.ppm",
		} {
			decoder, err := Decoder(path)
			a.Nil(err, path)
			a.NotNil(decoder, path)
		}
	})
	t.Run("Case insensitive", func(t *testing.T) {
		decoder, err := Decoder("photo.JPEG")

		a.Nil(err)
		a.NotNil(decoder)
	})
	t.Run("Unsupported", func(t *testing.T) {
		decoder, err := Decoder("document.txt")

		a.Nil(decoder)
		a.True(errors.Is(err, ErrUnsupportedExtension))
	})
	t.Run("No extension", func(t *testing.T) {
		_, err := Decoder("imagefile")

		a.True(errors.Is(err, ErrUnsupportedExtension))
	})
}

func TestEncoder(t *testing.T) {
	a := assert.New(t)

	t.Run("Known extensions", func(t *testing.T) {
		for _, path := range []string{"a.png", "a.jpg", "a.bmp", "a.tga", "a.gif", "a.tif", "a.pgm", "a.ppm"} {
			encoder, err := Encoder(path)
			a.Nil(err, path)
			a.NotNil(encoder, path)
		}
	})
	t.Run("Decode only formats", func(t *testing.T) {
		for _, path := range []string{"a.webp", "a.hdr", "a.psd", "a.pbm"} {
			encoder, err := Encoder(path)
			a.Nil(encoder, path)
			a.True(errors.Is(err, ErrUnsupportedExtension), path)
		}
	})
	t.Run("Unsupported", func(t *testing.T) {
		_, err := Encoder("a.pic")

		a.True(errors.Is(err, ErrUnsupportedExtension))
	})
}

func TestIsSupported(t *testing.T) {
	a := assert.New(t)

	a.True(IsSupported(".png"))
	a.True(IsSupported(".JPG"))
	a.True(IsSupported(".jpeg"))
	a.True(IsSupported(".tiff"))
	a.False(IsSupported(".txt"))
	a.False(IsSupported(""))
}

func TestSupportedExtensions(t *testing.T) {
	a := assert.New(t)

	extensions := SupportedExtensions()

	a.Contains(extensions, ".png")
	a.Contains(extensions, ".jpeg")
	a.Contains(extensions, ".hdr")
	a.NotContains(extensions, ".pic")
}

func TestCodec_PngRoundTrip(t *testing.T) {
	a := assert.New(t)

	original := testImage(4, 3)

	encoder, err := Encoder("a.png")
	a.Nil(err)
	var buffer bytes.Buffer
	a.Nil(encoder.Encode(&buffer, original, 0))

	decoder, err := Decoder("a.png")
	a.Nil(err)
	decoded, err := decoder.Decode(&buffer)
	a.Nil(err)

	a.Equal(original.Bounds(), decoded.Bounds())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			wantR, wantG, wantB, _ := original.At(x, y).RGBA()
			gotR, gotG, gotB, _ := decoded.At(x, y).RGBA()
			a.Equal(wantR, gotR)
			a.Equal(wantG, gotG)
			a.Equal(wantB, gotB)
		}
	}
}

func TestCodec_DecodeConfigFallback(t *testing.T) {
	a := assert.New(t)

	// TGA has no header sniffing support, so its config read decodes
	// the pixels and reports the bounds.
	original := testImage(5, 7)

	encoder, err := Encoder("a.tga")
	a.Nil(err)
	var buffer bytes.Buffer
	a.Nil(encoder.Encode(&buffer, original, 0))

	decoder, err := Decoder("a.tga")
	a.Nil(err)
	config, err := decoder.DecodeConfig(&buffer)
	a.Nil(err)

	a.Equal(5, config.Width)
	a.Equal(7, config.Height)
}
