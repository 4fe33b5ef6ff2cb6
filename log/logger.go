package log

import (
	"io"
	"os"
	"sync"

	"github.com/op/go-logging"
)

type Level int

// The levels that can be passed to the SetLevel function.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// Format used for terminals and other files.
var colorFormat = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// Format used for in-memory sinks; no escape codes and no timestamps.
var plainFormat = logging.MustStringFormatter(
	`[%{module}] [%{level}] %{message}`,
)

var (
	mu             sync.Mutex
	leveledBackend logging.LeveledBackend
	currentLevel   = Notice
)

// The logger interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Override the backend output sink. Writers that are not files get the plain
// format. The current level is preserved.
func SetSink(sink io.Writer) {
	format := plainFormat
	if _, isFile := sink.(*os.File); isFile {
		format = colorFormat
	}

	mu.Lock()
	defer mu.Unlock()

	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(toLoggingLevel(currentLevel), "")
	logging.SetBackend(leveledBackend)
}

// Set logger verbosity.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()

	currentLevel = level
	leveledBackend.SetLevel(toLoggingLevel(level), "")
}

// GetLevel returns the verbosity set by the last SetLevel call.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return currentLevel
}

func toLoggingLevel(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}
