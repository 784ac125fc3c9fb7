package library

import (
	"os"

	"vincit.fi/image-matrix/api"
	"vincit.fi/image-matrix/api/apitype"
	"vincit.fi/image-matrix/backend/database"
	"vincit.fi/image-matrix/common/logger"
)

// ImageService ties the loader, the file lister and the metadata store
// together: scan a directory, load it into one matrix and record each
// image's dimensions.
type ImageService struct {
	loader        api.ImageLoader
	lister        api.FileLister
	metaDataStore *database.ImageMetaDataStore
	progress      api.ProgressReporter
}

func NewImageService(
	loader api.ImageLoader,
	lister api.FileLister,
	metaDataStore *database.ImageMetaDataStore,
	progress api.ProgressReporter) *ImageService {
	return &ImageService{
		loader:        loader,
		lister:        lister,
		metaDataStore: metaDataStore,
		progress:      progress,
	}
}

// ScanDirectory loads every supported image in the directory into the
// matrix and records per-file metadata. All images must share the same
// dimensions, as with a plain directory load.
func (s *ImageService) ScanDirectory(dir string, matrix *apitype.Matrix, options *apitype.LoadOptions) (*apitype.ImageInfo, error) {
	files, err := s.lister.List(dir)
	if err != nil {
		s.progress.Error("Could not list directory", err)
		return nil, err
	}

	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = file.Path()
	}

	info, err := s.loader.LoadAll(paths, matrix, options)
	if err != nil {
		s.progress.Error("Could not load images", err)
		return nil, err
	}

	for _, file := range files {
		stat, err := os.Stat(file.Path())
		if err != nil {
			logger.Warn.Printf("Could not stat '%s'", file.Path())
			continue
		}
		if err := s.metaDataStore.Upsert(file, info, stat.Size(), stat.ModTime()); err != nil {
			s.progress.Error("Could not record image meta data", err)
			return nil, err
		}
	}

	logger.Info.Printf("Scanned %d images in '%s' (%s)", len(files), dir, info.String())
	return info, nil
}
