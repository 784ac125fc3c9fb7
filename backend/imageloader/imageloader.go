package imageloader

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"vincit.fi/image-matrix/api"
	"vincit.fi/image-matrix/api/apitype"
	"vincit.fi/image-matrix/backend/codec"
	"vincit.fi/image-matrix/common/logger"
)

var (
	ErrEmptyBatch        = errors.New("no image files to load")
	ErrDimensionMismatch = errors.New("image dimensions don't match the rest of the batch")
)

type MatrixImageLoader struct {
	lister   api.FileLister
	progress api.ProgressReporter

	api.ImageLoader
}

func NewImageLoader(lister api.FileLister, progress api.ProgressReporter) api.ImageLoader {
	if lister == nil {
		lister = NewDirectoryLister()
	}
	if progress == nil {
		progress = noopProgressReporter{}
	}
	return &MatrixImageLoader{
		lister:   lister,
		progress: progress,
	}
}

// Load decodes a single image file into a 1 x (width*height*channels)
// matrix. The matrix is only touched after a successful decode.
func (s *MatrixImageLoader) Load(path string, matrix *apitype.Matrix, options *apitype.LoadOptions) (*apitype.ImageInfo, error) {
	img, info, err := s.decodeImage(path, options)
	if err != nil {
		return nil, err
	}

	matrix.Resize(1, info.PixelBytes())
	copyPixels(img, info.Channels(), matrix.Row(0))
	return info, nil
}

// LoadAll decodes the given files into successive matrix rows. Every
// file must agree with the first one on width, height and channels.
func (s *MatrixImageLoader) LoadAll(paths []string, matrix *apitype.Matrix, options *apitype.LoadOptions) (*apitype.ImageInfo, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyBatch
	}

	var batchInfo *apitype.ImageInfo
	for i, path := range paths {
		img, info, err := s.decodeImage(path, options)
		if err != nil {
			return nil, err
		}

		if batchInfo == nil {
			batchInfo = info
			matrix.Resize(len(paths), info.PixelBytes())
		} else if !info.SameDimensionsAs(batchInfo) {
			return nil, fmt.Errorf("%w: '%s' is %s, first image was %s",
				ErrDimensionMismatch, path, info.String(), batchInfo.String())
		}

		copyPixels(img, batchInfo.Channels(), matrix.Row(i))
		s.progress.Update("Loading images", i+1, len(paths))
	}
	return batchInfo, nil
}

// LoadDir loads every supported image file in the directory, in the
// order the file system enumeration returns them.
func (s *MatrixImageLoader) LoadDir(dir string, matrix *apitype.Matrix, options *apitype.LoadOptions) (*apitype.ImageInfo, error) {
	files, err := s.lister.List(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: directory '%s'", ErrEmptyBatch, dir)
	}

	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = file.Path()
	}
	return s.LoadAll(paths, matrix, options)
}

// Info reads only the image header and reports the dimensions the file
// would load with, without decoding any pixel data.
func (s *MatrixImageLoader) Info(path string) (*apitype.ImageInfo, error) {
	decoder, err := codec.Decoder(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open '%s': %w", path, err)
	}
	defer file.Close()

	config, err := decoder.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("could not read image header of '%s': %w", path, err)
	}
	return apitype.NewImageInfo(config.Width, config.Height, channelsForColorModel(config.ColorModel)), nil
}

func (s *MatrixImageLoader) decodeImage(path string, options *apitype.LoadOptions) (image.Image, *apitype.ImageInfo, error) {
	decoder, err := codec.Decoder(path)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open '%s': %w", path, err)
	}
	defer file.Close()

	img, err := decoder.Decode(file)
	if err != nil {
		return nil, nil, fmt.Errorf("could not decode '%s': %w", path, err)
	}

	// Channels are resolved from the decoded color model before any
	// transform normalizes the image to NRGBA.
	channels := options.Channels()
	if channels == 0 {
		channels = channelCount(img)
	}
	if channels < apitype.GrayChannels || channels > apitype.RGBAChannels {
		return nil, nil, fmt.Errorf("invalid channel count %d for '%s'", channels, path)
	}

	if options.AutoOrient() {
		img = exifOrient(img, path)
	}
	if options.FlipVertical() {
		img = imaging.FlipV(img)
	}

	bounds := img.Bounds()
	return img, apitype.NewImageInfo(bounds.Dx(), bounds.Dy(), channels), nil
}

func exifOrient(img image.Image, path string) image.Image {
	exifData, err := apitype.LoadExifData(apitype.NewImageFile(filepath.Dir(path), filepath.Base(path)))
	if err != nil {
		logger.Debug.Printf("No EXIF data for '%s'", path)
		return img
	}
	if !exifData.NeedsRotation() {
		return img
	}

	if exifData.Rotation() != 0 {
		img = imaging.Rotate(img, exifData.Rotation(), color.Gray{})
	}
	if exifData.IsFlipped() {
		img = imaging.FlipH(img)
	}
	return img
}

type noopProgressReporter struct {
}

func (s noopProgressReporter) Update(name string, current int, total int) {
}

func (s noopProgressReporter) Error(message string, err error) {
}
