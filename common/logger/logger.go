package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var (
	nullWriter = &NullWriter{}
	Info       *log.Logger
	Warn       *log.Logger
	Error      *log.Logger
	Debug      *log.Logger
	Trace      *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func newLogger(enabled bool, out io.Writer, prefix string) *log.Logger {
	if !enabled {
		out = nullWriter
	}
	return log.New(out, prefix, log.Ldate|log.Ltime|log.Lshortfile)
}

func init() {
	Initialize(ERROR - 1)
}

func Initialize(logLevel LogLevel) {
	Error = newLogger(logLevel >= ERROR, os.Stderr, "ERROR: ")
	Warn = newLogger(logLevel >= WARN, os.Stdout, "WARN:  ")
	Info = newLogger(logLevel >= INFO, os.Stdout, "INFO:  ")
	Debug = newLogger(logLevel >= DEBUG, os.Stdout, "DEBUG: ")
	Trace = newLogger(logLevel >= TRACE, os.Stdout, "TRACE: ")
}
