package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vincit.fi/image-matrix/api/apitype"
)

func TestImageMetaDataStore_Upsert(t *testing.T) {
	a := assert.New(t)

	db := NewInMemoryDatabase()
	defer db.Close()
	store := NewImageMetaDataStore(db)

	imageFile := apitype.NewImageFile("photos", "sunset.png")
	modified := time.Date(2022, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Insert", func(t *testing.T) {
		err := store.Upsert(imageFile, apitype.NewImageInfo(640, 480, 3), 1234, modified)

		a.Nil(err)

		metaData, err := store.FindByDirAndFile(imageFile)
		a.Nil(err)
		a.NotNil(metaData)
		a.Equal("photos", metaData.Directory)
		a.Equal("sunset.png", metaData.FileName)
		a.Equal(int64(1234), metaData.ByteSize)
		a.Equal(640, metaData.Width)
		a.Equal(480, metaData.Height)
		a.Equal(3, metaData.Channels)
	})
	t.Run("Update existing", func(t *testing.T) {
		err := store.Upsert(imageFile, apitype.NewImageInfo(800, 600, 4), 5678, modified.Add(time.Hour))

		a.Nil(err)

		count, err := store.Count()
		a.Nil(err)
		a.Equal(1, count)

		metaData, err := store.FindByDirAndFile(imageFile)
		a.Nil(err)
		a.Equal(800, metaData.Width)
		a.Equal(600, metaData.Height)
		a.Equal(4, metaData.Channels)
		a.Equal(int64(5678), metaData.ByteSize)
	})
}

func TestImageMetaDataStore_FindMissing(t *testing.T) {
	a := assert.New(t)

	db := NewInMemoryDatabase()
	defer db.Close()
	store := NewImageMetaDataStore(db)

	metaData, err := store.FindByDirAndFile(apitype.NewImageFile("nowhere", "nothing.png"))

	a.Nil(err)
	a.Nil(metaData)
}

func TestImageMetaDataStore_GetAllInDirectory(t *testing.T) {
	a := assert.New(t)

	db := NewInMemoryDatabase()
	defer db.Close()
	store := NewImageMetaDataStore(db)

	info := apitype.NewImageInfo(10, 10, 1)
	now := time.Now()
	a.Nil(store.Upsert(apitype.NewImageFile("dir-a", "b.png"), info, 1, now))
	a.Nil(store.Upsert(apitype.NewImageFile("dir-a", "a.png"), info, 2, now))
	a.Nil(store.Upsert(apitype.NewImageFile("dir-b", "c.png"), info, 3, now))

	metaData, err := store.GetAllInDirectory("dir-a")

	a.Nil(err)
	a.Equal(2, len(metaData))
	a.Equal("a.png", metaData[0].FileName)
	a.Equal("b.png", metaData[1].FileName)
}
