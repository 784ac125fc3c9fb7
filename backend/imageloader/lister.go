package imageloader

import (
	"fmt"
	"os"
	"path/filepath"

	"vincit.fi/image-matrix/api"
	"vincit.fi/image-matrix/api/apitype"
	"vincit.fi/image-matrix/backend/codec"
	"vincit.fi/image-matrix/common/logger"
)

type DirectoryLister struct {
	api.FileLister
}

func NewDirectoryLister() api.FileLister {
	return &DirectoryLister{}
}

// List returns the supported image files in a directory, in the sorted
// order the file system enumeration yields them.
func (s *DirectoryLister) List(dir string) ([]*apitype.ImageFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list directory '%s': %w", dir, err)
	}

	logger.Debug.Printf("Scanning directory '%s'", dir)
	var files []*apitype.ImageFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if codec.IsSupported(filepath.Ext(entry.Name())) {
			files = append(files, apitype.NewImageFile(dir, entry.Name()))
		}
	}
	logger.Debug.Printf("Found %d images", len(files))

	return files, nil
}
