package imageloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"vincit.fi/image-matrix/api"
	"vincit.fi/image-matrix/api/apitype"
	"vincit.fi/image-matrix/backend/codec"
	"vincit.fi/image-matrix/common/logger"
)

var ErrMatrixDimensionMismatch = errors.New("matrix dimensions don't match the image info")

type MatrixImageSaver struct {
	progress api.ProgressReporter

	api.ImageSaver
}

func NewImageSaver(progress api.ProgressReporter) api.ImageSaver {
	if progress == nil {
		progress = noopProgressReporter{}
	}
	return &MatrixImageSaver{
		progress: progress,
	}
}

// Save encodes a single-row matrix to the given path. The encoder is
// selected by file extension; nothing is written for an unsupported one.
func (s *MatrixImageSaver) Save(path string, matrix *apitype.Matrix, info *apitype.ImageInfo, options *apitype.SaveOptions) error {
	if err := validateMatrix(matrix, info, 1); err != nil {
		return err
	}
	return s.saveRow(path, matrix.Row(0), info, options)
}

// SaveAll encodes matrix row i to paths[i].
func (s *MatrixImageSaver) SaveAll(paths []string, matrix *apitype.Matrix, info *apitype.ImageInfo, options *apitype.SaveOptions) error {
	if err := validateMatrix(matrix, info, len(paths)); err != nil {
		return err
	}
	for i, path := range paths {
		if err := s.saveRow(path, matrix.Row(i), info, options); err != nil {
			return err
		}
		s.progress.Update("Saving images", i+1, len(paths))
	}
	return nil
}

func validateMatrix(matrix *apitype.Matrix, info *apitype.ImageInfo, rows int) error {
	if !info.IsValid() {
		return fmt.Errorf("%w: invalid %s", ErrMatrixDimensionMismatch, info.String())
	}
	if matrix.Rows() != rows || matrix.Cols() != info.PixelBytes() {
		return fmt.Errorf("%w: %s can't hold %d x %s",
			ErrMatrixDimensionMismatch, matrix.String(), rows, info.String())
	}
	return nil
}

func (s *MatrixImageSaver) saveRow(path string, row []byte, info *apitype.ImageInfo, options *apitype.SaveOptions) error {
	// Resolved before any file is created so an unsupported extension
	// leaves the file system untouched.
	encoder, err := codec.Encoder(path)
	if err != nil {
		return err
	}

	img := imageFromRow(row, info)
	if options.FlipVertical() {
		img = imaging.FlipV(img)
	}

	suffix, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	tempPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+suffix.String()+".tmp")
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("could not create '%s': %w", tempPath, err)
	}

	if err := encoder.Encode(file, img, options.Quality()); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("could not encode '%s': %w", path, err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("could not write '%s': %w", path, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("could not move '%s' into place: %w", tempPath, err)
	}
	logger.Trace.Printf("Saved '%s' (%s)", path, info.String())
	return nil
}
