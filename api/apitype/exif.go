package apitype

import (
	"fmt"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

type ExifData struct {
	orientation uint8
	rotation    float64
	flipped     bool
	created     time.Time
	width       uint32
	height      uint32
}

const exifUnchangedOrientation = 1

func (s *ExifData) Orientation() uint8 {
	if s != nil {
		return s.orientation
	} else {
		return exifUnchangedOrientation
	}
}

// Rotation is the counter-clockwise angle in degrees that undoes the
// camera orientation.
func (s *ExifData) Rotation() float64 {
	if s != nil {
		return s.rotation
	} else {
		return 0
	}
}

func (s *ExifData) IsFlipped() bool {
	if s != nil {
		return s.flipped
	} else {
		return false
	}
}

func (s *ExifData) CreatedTime() time.Time {
	if s != nil {
		return s.created
	} else {
		return time.Unix(0, 0)
	}
}

func (s *ExifData) Width() uint32 {
	if s != nil {
		return s.width
	} else {
		return 0
	}
}

func (s *ExifData) Height() uint32 {
	if s != nil {
		return s.height
	} else {
		return 0
	}
}

func (s *ExifData) String() string {
	if s == nil {
		return "ExifData<nil>"
	}
	return fmt.Sprintf("%d x %d, orientation %d, created %s",
		s.Width(), s.Height(), s.Orientation(),
		s.CreatedTime().Format("2006-01-02 15:04:05"))
}

func (s *ExifData) NeedsRotation() bool {
	return s != nil && (s.rotation != 0 || s.flipped)
}

// ExifOrientationToAngleAndFlip maps the EXIF orientation tag to the
// counter-clockwise correction angle and a horizontal flip.
func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 2:
		return 0, true
	case 3:
		return 180, false
	case 4:
		return 180, true
	case 5:
		return 90, true
	case 6:
		return 270, false
	case 7:
		return 270, true
	case 8:
		return 90, false
	default:
		return 0, false
	}
}

func getInt(decodedExif *exif.Exif, tagName exif.FieldName) (int, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return 0, err
	} else {
		return tag.Int(0)
	}
}

func getString(decodedExif *exif.Exif, tagName exif.FieldName) (string, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return "", err
	} else {
		return tag.StringVal()
	}
}

func getTime(decodedExif *exif.Exif, tagName exif.FieldName) (time.Time, error) {
	if stringVal, err := getString(decodedExif, tagName); err != nil {
		return time.Unix(0, 0), err
	} else {
		return time.Parse("2006:01:02 15:04:05", stringVal)
	}
}

func getInvalidExifData() *ExifData {
	return &ExifData{exifUnchangedOrientation, 0, false, time.Unix(0, 0), 0, 0}
}

// LoadExifData reads the EXIF block of the given file. Files without
// EXIF data return an error and a neutral ExifData.
func LoadExifData(imageFile *ImageFile) (*ExifData, error) {
	fileForExif, err := os.Open(imageFile.Path())
	if err != nil {
		return getInvalidExifData(), err
	}
	defer fileForExif.Close()

	decodedExif, err := exif.Decode(fileForExif)
	if err != nil {
		return getInvalidExifData(), err
	}

	orientation, err := getInt(decodedExif, exif.Orientation)
	if err != nil {
		orientation = exifUnchangedOrientation
	}

	// Missing optional tags don't invalidate the orientation.
	created, _ := getTime(decodedExif, exif.DateTimeOriginal)
	width := 0
	height := 0
	if value, err := getInt(decodedExif, exif.PixelXDimension); err == nil {
		width = value
	}
	if value, err := getInt(decodedExif, exif.PixelYDimension); err == nil {
		height = value
	}

	angle, flip := ExifOrientationToAngleAndFlip(orientation)
	return &ExifData{
		orientation: uint8(orientation),
		rotation:    angle,
		flipped:     flip,
		created:     created,
		width:       uint32(width),
		height:      uint32(height),
	}, nil
}
