package backend

import (
	"vincit.fi/image-matrix/api"
	"vincit.fi/image-matrix/backend/database"
	"vincit.fi/image-matrix/backend/imageloader"
	"vincit.fi/image-matrix/backend/library"
	"vincit.fi/image-matrix/common/event"
	"vincit.fi/image-matrix/common/logger"
)

type Stores struct {
	ImageMetaDataStore *database.ImageMetaDataStore

	database *database.Database
}

func (s *Stores) Close() {
	if s.database != nil {
		_ = s.database.Close()
	}
}

type Brokers struct {
	Broker        *event.Broker
	DevNullBroker *event.Broker
}

type Services struct {
	ImageLoader  api.ImageLoader
	ImageSaver   api.ImageSaver
	FileLister   api.FileLister
	ImageService *library.ImageService
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker:        event.InitBus(eventBusQueueSize),
		DevNullBroker: event.InitDevNullBus(),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

func InitializeStores(databaseFile string) (*Stores, error) {
	logger.Debug.Printf("Initialize database...")
	db, err := database.NewDatabase(databaseFile)
	if err != nil {
		return nil, err
	}
	db.Migrate()

	return &Stores{
		ImageMetaDataStore: database.NewImageMetaDataStore(db),
		database:           db,
	}, nil
}

func InitializeServices(stores *Stores, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")
	progressReporter := api.NewSenderProgressReporter(brokers.Broker)
	fileLister := imageloader.NewDirectoryLister()
	loader := imageloader.NewImageLoader(fileLister, progressReporter)
	saver := imageloader.NewImageSaver(progressReporter)

	var imageService *library.ImageService
	if stores != nil {
		imageService = library.NewImageService(loader, fileLister, stores.ImageMetaDataStore, progressReporter)
	}

	services := &Services{
		ImageLoader:  loader,
		ImageSaver:   saver,
		FileLister:   fileLister,
		ImageService: imageService,
	}
	logger.Debug.Printf("Services initialized")
	return services
}
