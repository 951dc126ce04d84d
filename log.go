package fab

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// logger is shared by every Host and Button. Warn level by default so that
// per-frame traces cost a level check only.
var logger = newDefaultLogger()

func newDefaultLogger() *log.Logger {
	l := log.New()
	l.Out = os.Stderr
	l.SetFormatter(&log.TextFormatter{DisableColors: true})
	l.SetLevel(log.WarnLevel)
	return l
}

// SetLogger replaces the package logger. Existing hosts and buttons log
// through the new logger from the next call on. Passing nil restores the
// default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newDefaultLogger()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

func tracing() bool {
	return logger.IsLevelEnabled(log.TraceLevel)
}

func componentLog(component string) *log.Entry {
	return logger.WithField("component", component)
}
