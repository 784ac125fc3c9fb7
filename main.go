package main

import (
	"fmt"
	"os"
	"path/filepath"

	"vincit.fi/image-matrix/api"
	"vincit.fi/image-matrix/api/apitype"
	"vincit.fi/image-matrix/backend"
	"vincit.fi/image-matrix/common/logger"
	"vincit.fi/image-matrix/common/util"
)

const eventBusQueueSize = 100

func main() {
	params := util.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	brokers := backend.InitializeEventBrokers(eventBusQueueSize)
	brokers.Broker.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		logger.Info.Printf("%s: %d/%d", command.Name, command.Current, command.Total)
	})
	brokers.Broker.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		logger.Error.Printf("%s", command.Message)
	})

	var stores *backend.Stores
	if params.Scan() {
		var err error
		if stores, err = backend.InitializeStores(params.DatabaseFile()); err != nil {
			logger.Error.Fatal("Could not open database", err)
		}
		defer stores.Close()
	}
	services := backend.InitializeServices(stores, brokers)

	paths := params.Paths()
	switch {
	case params.Info():
		if len(paths) == 0 {
			logger.Error.Fatal("Usage: image-matrix -info <image file>...")
		}
		for _, path := range paths {
			info, err := services.ImageLoader.Info(path)
			if err != nil {
				logger.Error.Fatal(err)
			}
			fmt.Printf("%s: %d x %d, %d channels\n", path, info.Width(), info.Height(), info.Channels())

			imageFile := apitype.NewImageFile(filepath.Dir(path), filepath.Base(path))
			if exifData, exifErr := apitype.LoadExifData(imageFile); exifErr == nil {
				fmt.Printf("%s: exif %s\n", path, exifData)
			}
		}
	case params.Scan():
		if len(paths) != 1 {
			logger.Error.Fatal("Usage: image-matrix -scan <directory>")
		}
		matrix := apitype.NewMatrix(0, 0)
		info, err := services.ImageService.ScanDirectory(paths[0], matrix, loadOptions(params))
		if err != nil {
			logger.Error.Fatal(err)
		}
		fmt.Printf("%s: %d images, %d x %d, %d channels\n",
			paths[0], matrix.Rows(), info.Width(), info.Height(), info.Channels())
	default:
		if len(paths) != 2 {
			logger.Error.Fatal("Usage: image-matrix [flags] <source image or directory> <target image>")
		}
		convert(services, params, paths[0], paths[1])
	}
}

// convert loads the source into a matrix and encodes it back out, going
// through the same marshalling path library users take.
func convert(services *backend.Services, params *util.Params, source string, target string) {
	matrix := apitype.NewMatrix(0, 0)

	var info *apitype.ImageInfo
	var err error
	if stat, statErr := os.Stat(source); statErr == nil && stat.IsDir() {
		info, err = services.ImageLoader.LoadDir(source, matrix, loadOptions(params))
	} else {
		info, err = services.ImageLoader.Load(source, matrix, loadOptions(params))
	}
	if err != nil {
		logger.Error.Fatal(err)
	}
	if matrix.Rows() != 1 {
		logger.Error.Fatal("Can only convert a directory with exactly one image")
	}

	saveOptions := apitype.NewSaveOptions(params.FlipVertical()).WithQuality(params.Quality())
	if err := services.ImageSaver.Save(target, matrix, info, saveOptions); err != nil {
		logger.Error.Fatal(err)
	}
	fmt.Printf("%s -> %s (%d x %d, %d channels)\n", source, target, info.Width(), info.Height(), info.Channels())
}

func loadOptions(params *util.Params) *apitype.LoadOptions {
	options := apitype.NewLoadOptions(params.FlipVertical())
	if params.AutoOrient() {
		options = options.WithAutoOrient()
	}
	if params.Channels() > 0 {
		options = options.WithChannels(params.Channels())
	}
	return options
}
