package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process-wide JSON logger. The level comes from LOG_LEVEL
// and defaults to info when unset or unparsable.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})

	l.SetLevel(logrus.InfoLevel)
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if level, err := logrus.ParseLevel(raw); err == nil {
			l.SetLevel(level)
		}
	}
	return l
}
