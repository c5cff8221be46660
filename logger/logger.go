package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the process-wide logrus logger.
func InitLogger() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level := logrus.InfoLevel
	if lvlStr := os.Getenv("LOG_LEVEL"); lvlStr != "" {
		if lvl, err := logrus.ParseLevel(lvlStr); err == nil {
			level = lvl
		} else {
			logrus.Warnf("invalid LOG_LEVEL %q, using info", lvlStr)
		}
	}
	logrus.SetLevel(level)

	logrus.Info("Logger initialized")
}
