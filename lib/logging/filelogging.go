package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"
)

// Logger builds the process-wide lecho logger. With a file path
// configured the log is written to the timestamped file and STDOUT
// both, so container logs stay usable alongside the file.
func Logger(logFilePath string) *lecho.Logger {
	logger := lecho.New(
		os.Stdout,
		lecho.WithLevel(log.DEBUG),
		lecho.WithTimestamp(),
	)
	if logFilePath != "" {
		file, err := openLogFile(logFilePath)
		if err != nil {
			logger.Errorf("failed to create logging file: %v", err)
			return logger
		}
		logger.SetOutput(io.MultiWriter(os.Stdout, file))
	}

	return logger
}

// openLogFile creates a fresh log file per process start, the current
// timestamp is spliced in before the extension.
func openLogFile(path string) (*os.File, error) {
	stamp := time.Now().Format("2006-01-02_15-04-05")
	if extension := filepath.Ext(path); extension != "" {
		path = strings.Replace(path, extension, stamp+extension, 1)
	} else {
		path = path + stamp
	}

	return os.Create(path)
}
