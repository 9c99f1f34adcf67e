package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Fields is the set of key value pairs attached to a log entry
type Fields interface {
	// Add a new key value pair to the fields
	Add(key string, value interface{})
}

// Loggable is implemented by any type that can describe
// itself through a set of Fields
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a map based implementation of both Fields
// and Loggable
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for k, v := range f {
		fields.Add(k, v)
	}
}

// Logger is the logging interface used across the packages
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)

	// ForClass returns a logger that tags all its entries
	// with the package and class provided
	ForClass(pkg, class string) Logger
}

// LogrusLoggerProperties configures a logger backed by logrus
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries written
	Level logrus.Level

	// Output is where the entries are written. Defaults to stderr
	Output io.Writer

	// Format is either "text" or "json". Defaults to text
	Format string
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus creates a new Logger that uses logrus to write
// the log entries
func NewLogrus(props LogrusLoggerProperties) Logger {
	l := logrus.New()
	l.SetLevel(props.Level)

	if props.Output != nil {
		l.SetOutput(props.Output)
	} else {
		l.SetOutput(os.Stderr)
	}

	if props.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return &logrusLogger{entry: logrus.NewEntry(l)}
}

// ParseLevel converts a level name into a logrus.Level. Unknown
// names resolve to info
func ParseLevel(level string) logrus.Level {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}

	return l
}

func (l *logrusLogger) withFields(loggable Loggable) *logrus.Entry {
	if loggable == nil {
		return l.entry
	}

	fields := logrusFields{}
	loggable.Log(fields)
	return l.entry.WithFields(logrus.Fields(fields))
}

func (l *logrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.withFields(loggable).WithContext(ctx).Debug(msg)
}

func (l *logrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	l.withFields(loggable).WithContext(ctx).Info(msg)
}

func (l *logrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.withFields(loggable).WithContext(ctx).Warn(msg)
}

func (l *logrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	l.withFields(loggable).WithContext(ctx).Error(msg)
}

func (l *logrusLogger) ForClass(pkg, class string) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields{
		"package": pkg,
		"class":   class,
	})}
}
