package config

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// SetupLogging configures log to write text to out and, when a log file is
// configured, JSON to a size-rotated file.
func SetupLogging(log *logrus.Logger, c *Config, out io.Writer) error {
	logLevel := logrus.InfoLevel
	if c.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: c.Color})

	if c.LogFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.LogFile,
		MaxSize:    c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAge:     c.LogMaxAgeDays,
		Level:      logLevel,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", c.LogFile, err)
	}
	log.AddHook(hook)

	return nil
}
