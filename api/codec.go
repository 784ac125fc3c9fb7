package api

import (
	"image"
	"io"

	"vincit.fi/image-matrix/api/apitype"
)

// ImageDecoder decodes one image file format. DecodeConfig reads only
// the header so callers can resolve dimensions without decoding pixels.
type ImageDecoder interface {
	Decode(r io.Reader) (image.Image, error)
	DecodeConfig(r io.Reader) (image.Config, error)
}

// ImageEncoder encodes one image file format. The quality value is only
// meaningful for lossy formats and is ignored by the rest.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image, quality int) error
}

type FileLister interface {
	List(dir string) ([]*apitype.ImageFile, error)
}
