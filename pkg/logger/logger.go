package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func Init() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

var Log = Init()

func EnableDebug() {
	Log.SetLevel(logrus.DebugLevel)
}

// Silence discards all output. The TUI owns the terminal, so log lines
// would corrupt the rendered screen.
func Silence() {
	Log.SetOutput(io.Discard)
}
