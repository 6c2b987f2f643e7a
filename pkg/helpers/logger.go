package helpers

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LineFormatter renders entries as "[INFO] message" or "[ERROR] message".
// Error and above print as ERROR, everything else as INFO. Fields are dropped.
type LineFormatter struct{}

func (LineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	label := "INFO"
	if e.Level <= logrus.ErrorLevel {
		label = "ERROR"
	}
	var b bytes.Buffer
	b.WriteByte('[')
	b.WriteString(label)
	b.WriteString("] ")
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// NewLogger creates a configured Logrus logger writing to out (stdout when nil).
// format is one of line, text or json; level is any logrus level name.
// The line format never goes below info.
func NewLogger(appName, env, format, level string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stdout
	}
	logger := logrus.New()
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: env == "development"})
	default:
		logger.SetFormatter(LineFormatter{})
		if lvl > logrus.InfoLevel {
			lvl = logrus.InfoLevel
		}
	}
	logger.SetLevel(lvl)
	return logger
}

// LogError Convenience methods to keep a unified logging interface
func LogError(logger *logrus.Logger, msg string, err error, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	logger.WithFields(fields).Error(msg)
}
