package codec

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ftrvxmtrx/tga"
	pnm "github.com/jbuchbinder/gopnm"
	"github.com/mdouchement/hdr/codec/rgbe"
	_ "github.com/oov/psd"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"vincit.fi/image-matrix/api"
)

// ErrUnsupportedExtension is returned when no codec is registered for a
// file's extension, or when the format is decode only and a save was
// requested.
var ErrUnsupportedExtension = errors.New("unsupported image file extension")

type decodeFunc func(r io.Reader) (image.Image, error)
type decodeConfigFunc func(r io.Reader) (image.Config, error)
type encodeFunc func(w io.Writer, img image.Image, quality int) error

// formatCodec adapts plain codec functions to the decoder/encoder
// capability interfaces. A nil decodeConfig falls back to a full decode;
// a nil encode marks a decode-only format.
type formatCodec struct {
	decode       decodeFunc
	decodeConfig decodeConfigFunc
	encode       encodeFunc
}

func (s *formatCodec) Decode(r io.Reader) (image.Image, error) {
	return s.decode(r)
}

func (s *formatCodec) DecodeConfig(r io.Reader) (image.Config, error) {
	if s.decodeConfig != nil {
		return s.decodeConfig(r)
	}
	img, err := s.decode(r)
	if err != nil {
		return image.Config{}, err
	}
	bounds := img.Bounds()
	return image.Config{
		ColorModel: img.ColorModel(),
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
	}, nil
}

func (s *formatCodec) Encode(w io.Writer, img image.Image, quality int) error {
	return s.encode(w, img, quality)
}

// The registry is keyed by lowercase file extension. TGA and PNM carry
// no reliable magic bytes, so dispatch is always by extension rather
// than content sniffing.
var codecs = map[string]*formatCodec{
	".png": {
		decode:       png.Decode,
		decodeConfig: png.DecodeConfig,
		encode: func(w io.Writer, img image.Image, quality int) error {
			return png.Encode(w, img)
		},
	},
	".jpg": {
		decode:       decodeJpeg,
		decodeConfig: decodeJpegConfig,
		encode:       encodeJpeg,
	},
	".bmp": {
		decode:       bmp.Decode,
		decodeConfig: bmp.DecodeConfig,
		encode: func(w io.Writer, img image.Image, quality int) error {
			return bmp.Encode(w, img)
		},
	},
	".tga": {
		decode: tga.Decode,
		encode: func(w io.Writer, img image.Image, quality int) error {
			return tga.Encode(w, img)
		},
	},
	".gif": {
		decode:       gif.Decode,
		decodeConfig: gif.DecodeConfig,
		encode: func(w io.Writer, img image.Image, quality int) error {
			return gif.Encode(w, img, nil)
		},
	},
	".tif": {
		decode:       tiff.Decode,
		decodeConfig: tiff.DecodeConfig,
		encode: func(w io.Writer, img image.Image, quality int) error {
			return tiff.Encode(w, img, nil)
		},
	},
	".webp": {
		decode:       webp.Decode,
		decodeConfig: webp.DecodeConfig,
	},
	".hdr": {
		decode:       rgbe.Decode,
		decodeConfig: rgbe.DecodeConfig,
	},
	".psd": {
		decode: func(r io.Reader) (image.Image, error) {
			img, _, err := image.Decode(r)
			return img, err
		},
		decodeConfig: func(r io.Reader) (image.Config, error) {
			config, _, err := image.DecodeConfig(r)
			return config, err
		},
	},
	".pbm": {
		decode:       pnm.Decode,
		decodeConfig: pnm.DecodeConfig,
	},
	".pgm": {
		decode:       pnm.Decode,
		decodeConfig: pnm.DecodeConfig,
		encode: func(w io.Writer, img image.Image, quality int) error {
			return pnm.Encode(w, toGray(img), pnm.PGM)
		},
	},
	".ppm": {
		decode:       pnm.Decode,
		decodeConfig: pnm.DecodeConfig,
		encode: func(w io.Writer, img image.Image, quality int) error {
			return pnm.Encode(w, toRGBA(img), pnm.PPM)
		},
	},
}

var extensionAliases = map[string]string{
	".jpeg": ".jpg",
	".tiff": ".tif",
}

func resolveExtension(path string) string {
	extension := strings.ToLower(filepath.Ext(path))
	if canonical, found := extensionAliases[extension]; found {
		return canonical
	}
	return extension
}

// Decoder resolves the decoder for the given path by file extension.
func Decoder(path string) (api.ImageDecoder, error) {
	if codec, found := codecs[resolveExtension(path)]; found {
		return codec, nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, filepath.Ext(path))
}

// Encoder resolves the encoder for the given path by file extension.
// Decode-only formats report the extension as unsupported.
func Encoder(path string) (api.ImageEncoder, error) {
	if codec, found := codecs[resolveExtension(path)]; found && codec.encode != nil {
		return codec, nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, filepath.Ext(path))
}

// IsSupported tells whether files with the given extension can be
// decoded. The extension includes the leading dot.
func IsSupported(extension string) bool {
	extension = strings.ToLower(extension)
	if canonical, found := extensionAliases[extension]; found {
		extension = canonical
	}
	_, found := codecs[extension]
	return found
}

// SupportedExtensions lists the decodable extensions in sorted order.
func SupportedExtensions() []string {
	extensions := make([]string, 0, len(codecs)+len(extensionAliases))
	for extension := range codecs {
		extensions = append(extensions, extension)
	}
	for alias := range extensionAliases {
		extensions = append(extensions, alias)
	}
	sort.Strings(extensions)
	return extensions
}

func toGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}
	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	return gray
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
