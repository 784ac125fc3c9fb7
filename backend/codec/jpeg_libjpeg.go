//go:build linux && cgo
// +build linux,cgo

package codec

import (
	"image"
	nativejpeg "image/jpeg"
	"io"

	"github.com/pixiv/go-libjpeg/jpeg"
)

var decoderOptions = &jpeg.DecoderOptions{}

func decodeJpeg(r io.Reader) (image.Image, error) {
	return jpeg.Decode(r, decoderOptions)
}

func decodeJpegConfig(r io.Reader) (image.Config, error) {
	return jpeg.DecodeConfig(r)
}

func encodeJpeg(w io.Writer, img image.Image, quality int) error {
	return nativejpeg.Encode(w, img, &nativejpeg.Options{Quality: quality})
}
