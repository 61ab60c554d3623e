package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogWriter is shared by the application logger, gin and gorm.
var LogWriter io.Writer = os.Stdout

// LogFilePath returns the path to the backend log file inside dir.
func LogFilePath(dir string) string {
	if dir == "" {
		dir = "logs"
	}
	return filepath.Join(dir, "crop-api.log")
}

// InitLogging tees the standard logger to stdout and the log file. When the
// file cannot be opened logging stays on stdout only.
func InitLogging(dir string) (*os.File, io.Writer) {
	path := LogFilePath(dir)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create logs directory: %v", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Warning: Failed to open log file: %v", err)
		LogWriter = os.Stdout
		log.SetOutput(LogWriter)
		return nil, LogWriter
	}

	LogWriter = io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(LogWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile, LogWriter
}
