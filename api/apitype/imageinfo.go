package apitype

import (
	"fmt"
)

// Supported channel counts, matching the usual interleaved pixel formats.
const (
	GrayChannels      = 1
	GrayAlphaChannels = 2
	RGBChannels       = 3
	RGBAChannels      = 4
)

const DefaultQuality = 90

// ImageInfo carries the dimensions of an image stored in a matrix row.
// The matrix itself only knows its element count; width, height and
// channels are tracked here alongside it.
type ImageInfo struct {
	width    int
	height   int
	channels int
}

func NewImageInfo(width int, height int, channels int) *ImageInfo {
	return &ImageInfo{
		width:    width,
		height:   height,
		channels: channels,
	}
}

func (s *ImageInfo) Width() int {
	if s != nil {
		return s.width
	} else {
		return 0
	}
}

func (s *ImageInfo) Height() int {
	if s != nil {
		return s.height
	} else {
		return 0
	}
}

func (s *ImageInfo) Channels() int {
	if s != nil {
		return s.channels
	} else {
		return 0
	}
}

// PixelBytes is the number of matrix elements one image occupies.
func (s *ImageInfo) PixelBytes() int {
	return s.Width() * s.Height() * s.Channels()
}

func (s *ImageInfo) IsValid() bool {
	return s != nil &&
		s.width > 0 && s.height > 0 &&
		s.channels >= GrayChannels && s.channels <= RGBAChannels
}

func (s *ImageInfo) String() string {
	if s == nil {
		return "ImageInfo<nil>"
	}
	return fmt.Sprintf("ImageInfo{%d x %d x %d}", s.width, s.height, s.channels)
}

// SameDimensionsAs tells whether two images can share a batch matrix.
func (s *ImageInfo) SameDimensionsAs(other *ImageInfo) bool {
	return s.Width() == other.Width() &&
		s.Height() == other.Height() &&
		s.Channels() == other.Channels()
}

// LoadOptions controls how decoded pixels are copied into the matrix.
type LoadOptions struct {
	flipVertical bool
	autoOrient   bool
	channels     int
}

func NewLoadOptions(flipVertical bool) *LoadOptions {
	return &LoadOptions{
		flipVertical: flipVertical,
	}
}

// WithAutoOrient applies the EXIF orientation tag after decoding.
func (s *LoadOptions) WithAutoOrient() *LoadOptions {
	s.autoOrient = true
	return s
}

// WithChannels forces the channel count of the loaded pixels instead of
// deriving it from the decoded color model.
func (s *LoadOptions) WithChannels(channels int) *LoadOptions {
	s.channels = channels
	return s
}

func (s *LoadOptions) FlipVertical() bool {
	if s != nil {
		return s.flipVertical
	} else {
		return false
	}
}

func (s *LoadOptions) AutoOrient() bool {
	if s != nil {
		return s.autoOrient
	} else {
		return false
	}
}

func (s *LoadOptions) Channels() int {
	if s != nil {
		return s.channels
	} else {
		return 0
	}
}

// SaveOptions controls how matrix rows are encoded back to files.
type SaveOptions struct {
	flipVertical bool
	quality      int
}

func NewSaveOptions(flipVertical bool) *SaveOptions {
	return &SaveOptions{
		flipVertical: flipVertical,
		quality:      DefaultQuality,
	}
}

// WithQuality sets the quality for lossy encoders, 1 to 100.
func (s *SaveOptions) WithQuality(quality int) *SaveOptions {
	s.quality = quality
	return s
}

func (s *SaveOptions) FlipVertical() bool {
	if s != nil {
		return s.flipVertical
	} else {
		return false
	}
}

func (s *SaveOptions) Quality() int {
	if s != nil && s.quality > 0 {
		return s.quality
	} else {
		return DefaultQuality
	}
}
