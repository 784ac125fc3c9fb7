package api

import (
	"vincit.fi/image-matrix/api/apitype"
)

type ImageLoader interface {
	Load(path string, matrix *apitype.Matrix, options *apitype.LoadOptions) (*apitype.ImageInfo, error)
	LoadAll(paths []string, matrix *apitype.Matrix, options *apitype.LoadOptions) (*apitype.ImageInfo, error)
	LoadDir(dir string, matrix *apitype.Matrix, options *apitype.LoadOptions) (*apitype.ImageInfo, error)
	Info(path string) (*apitype.ImageInfo, error)
}

type ImageSaver interface {
	Save(path string, matrix *apitype.Matrix, info *apitype.ImageInfo, options *apitype.SaveOptions) error
	SaveAll(paths []string, matrix *apitype.Matrix, info *apitype.ImageInfo, options *apitype.SaveOptions) error
}
