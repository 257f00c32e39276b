package interfaces

import "context"

// Logger is the leveled logger the loader, renderer and site builder write to.
// A go-logger instance satisfies it as is.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by module name, such as "mvb.articles".
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is implemented by loggers that can carry fields like the
// article path or glob pattern on every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
