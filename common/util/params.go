package util

import (
	"flag"
)

type Params struct {
	logLevel     string
	flipVertical bool
	autoOrient   bool
	channels     int
	quality      int
	info         bool
	scan         bool
	databaseFile string
	paths        []string
}

func ParseParams() *Params {
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	flipVertical := flag.Bool("flip", true, "Flip scanlines vertically on load and save")
	autoOrient := flag.Bool("autoOrient", false, "Apply EXIF orientation when loading JPEG files")
	channels := flag.Int("channels", 0, "Force channel count 1-4. 0 uses the decoded color model")
	quality := flag.Int("quality", 90, "Quality for lossy formats, 1-100")
	info := flag.Bool("info", false, "Only print image dimensions, don't load pixel data")
	scan := flag.Bool("scan", false, "Scan a directory and record image metadata to the database")
	databaseFile := flag.String("database", ".image-matrix.db", "Metadata database file name")

	flag.Parse()

	return &Params{
		logLevel:     *logLevel,
		flipVertical: *flipVertical,
		autoOrient:   *autoOrient,
		channels:     *channels,
		quality:      *quality,
		info:         *info,
		scan:         *scan,
		databaseFile: *databaseFile,
		paths:        flag.Args(),
	}
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) FlipVertical() bool {
	return s.flipVertical
}

func (s *Params) AutoOrient() bool {
	return s.autoOrient
}

func (s *Params) Channels() int {
	return s.channels
}

func (s *Params) Quality() int {
	return s.quality
}

func (s *Params) Info() bool {
	return s.info
}

func (s *Params) Scan() bool {
	return s.scan
}

func (s *Params) DatabaseFile() string {
	return s.databaseFile
}

func (s *Params) Paths() []string {
	return s.paths
}
