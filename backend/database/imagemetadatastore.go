package database

import (
	"time"

	"github.com/upper/db/v4"

	"vincit.fi/image-matrix/api/apitype"
	"vincit.fi/image-matrix/common/logger"
)

type ImageMetaData struct {
	Id           int64     `db:"id,omitempty"`
	Directory    string    `db:"directory"`
	FileName     string    `db:"file_name"`
	ByteSize     int64     `db:"byte_size"`
	Width        int       `db:"width"`
	Height       int       `db:"height"`
	Channels     int       `db:"channels"`
	ModifiedTime time.Time `db:"modified_time"`
}

type ImageMetaDataStore struct {
	database   *Database
	collection db.Collection
}

func NewImageMetaDataStore(database *Database) *ImageMetaDataStore {
	return &ImageMetaDataStore{
		database: database,
	}
}

func (s *ImageMetaDataStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("image_meta_data")
	}
	return s.collection
}

// Upsert records the dimensions of a scanned image, replacing any
// earlier row for the same directory and file name.
func (s *ImageMetaDataStore) Upsert(imageFile *apitype.ImageFile, info *apitype.ImageInfo, byteSize int64, modified time.Time) error {
	logger.Trace.Printf("Recording meta data for '%s': %s", imageFile.String(), info.String())

	existing, err := s.findByDirAndFile(imageFile)
	if err != nil {
		return err
	}

	metaData := &ImageMetaData{
		Directory:    imageFile.Directory(),
		FileName:     imageFile.FileName(),
		ByteSize:     byteSize,
		Width:        info.Width(),
		Height:       info.Height(),
		Channels:     info.Channels(),
		ModifiedTime: modified,
	}

	if existing != nil {
		metaData.Id = existing.Id
		return s.getCollection().
			Find(db.Cond{"id": existing.Id}).
			Update(metaData)
	}
	_, err = s.getCollection().Insert(metaData)
	return err
}

func (s *ImageMetaDataStore) FindByDirAndFile(imageFile *apitype.ImageFile) (*ImageMetaData, error) {
	return s.findByDirAndFile(imageFile)
}

func (s *ImageMetaDataStore) findByDirAndFile(imageFile *apitype.ImageFile) (*ImageMetaData, error) {
	var metaData []ImageMetaData
	err := s.getCollection().
		Find(db.Cond{
			"directory": imageFile.Directory(),
			"file_name": imageFile.FileName(),
		}).
		All(&metaData)
	if err != nil {
		return nil, err
	}
	if len(metaData) == 1 {
		return &metaData[0], nil
	}
	return nil, nil
}

func (s *ImageMetaDataStore) GetAllInDirectory(directory string) ([]ImageMetaData, error) {
	var metaData []ImageMetaData
	err := s.getCollection().
		Find(db.Cond{"directory": directory}).
		OrderBy("file_name").
		All(&metaData)
	return metaData, err
}

func (s *ImageMetaDataStore) Count() (int, error) {
	count, err := s.getCollection().Find().Count()
	return int(count), err
}
