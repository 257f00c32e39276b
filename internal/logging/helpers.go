package logging

import (
	"maps"

	"github.com/goliatone/go-mvb/pkg/interfaces"
)

// WithFields returns a child logger carrying a copy of fields. A logger
// that cannot hold fields is returned as is and the fields are dropped.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	fl, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	return fl.WithFields(maps.Clone(fields))
}
