package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned when a schema names a type that is not registered.
var ErrUnknownType = errors.New("unknown type")

// ErrInvalidSchema is returned when a schema is malformed, e.g. an array
// schema without an item schema or a range whose minimum exceeds its maximum.
var ErrInvalidSchema = errors.New("invalid schema")

// ConfigError reports a schema that could not be built into a validator.
// It is never represented as a Result.
type ConfigError struct {
	// Type is the type tag of the schema that failed to build.
	Type string
	// Location is the path through the schema tree to the failing schema,
	// e.g. properties.items.item.
	Location Location
	Err      error
}

func (e *ConfigError) Error() string {
	prefix := "schema"
	if len(e.Location) > 0 {
		prefix = "schema at " + e.Location.String()
	}
	if errors.Is(e.Err, ErrUnknownType) {
		return fmt.Sprintf("%s: unknown type: %q", prefix, e.Type)
	}
	if e.Type == "" {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", prefix, e.Type, e.Err)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Invalid returns an ErrInvalidSchema error with the given detail.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSchema, fmt.Sprintf(format, args...))
}

// WithinSchema prepends seg to the location of a *ConfigError.
// Container factories call it on errors returned from building a child schema.
// Other errors are returned unchanged.
func WithinSchema(err error, seg ...Segment) error {
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		return err
	}
	loc := cfgErr.Location
	for i := len(seg) - 1; i >= 0; i-- {
		loc = loc.Prepend(seg[i])
	}
	return &ConfigError{Type: cfgErr.Type, Location: loc, Err: cfgErr.Err}
}
