package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Initialize configures logrus to write timestamped text records of given level and above to out.
func Initialize(level logrus.Level, out io.Writer) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.100"})
	logrus.SetOutput(out)
	logrus.SetLevel(level)
	logrus.Debugf("Logging at %s level", level)
}
