//go:build !linux || !cgo
// +build !linux !cgo

package codec

import (
	"image"
	"image/jpeg"
	"io"
)

func decodeJpeg(r io.Reader) (image.Image, error) {
	return jpeg.Decode(r)
}

func decodeJpegConfig(r io.Reader) (image.Config, error) {
	return jpeg.DecodeConfig(r)
}

func encodeJpeg(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}
