package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/roentgen/internal/logging"
	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/schema"
)

// Builder turns a schema into a validator.
// Factories receive one so they can build the schemas nested in their own.
type Builder interface {
	Build(s schema.Schema) (domain.Validator, error)
}

// Factory builds the validator for one type tag.
//
// When s is a schema.Map, the "type" option has already been removed. A
// factory typically converts s to its typed options with schema.As, builds
// any nested schemas through b, and returns a validator whose Run honors the
// domain.Validator contract. Malformed options are reported as an error
// wrapping domain.ErrInvalidSchema.
type Factory func(b Builder, s schema.Schema) (domain.Validator, error)

// Middleware wraps every validator the registry builds, innermost first.
// typeName is the tag the validator was built for.
type Middleware func(typeName string, v domain.Validator) domain.Validator

// Registry maps schema type tags to validator factories.
// Registration is expected to happen before the registry is shared, but
// Register and Build are safe to call concurrently.
type Registry struct {
	mu         sync.RWMutex
	factories  map[string]Factory
	middleware []Middleware
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Registry.
type Option func(*Registry)

// WithLogger sets the structured logger used for registration and build diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMiddleware appends middleware applied to every built validator.
func WithMiddleware(m ...Middleware) Option {
	return func(r *Registry) {
		r.middleware = append(r.middleware, m...)
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register installs the factory for typeName.
// If a factory with the same name exists, it is overwritten.
// Register panics if typeName is empty or factory is nil.
func (r *Registry) Register(typeName string, factory Factory) {
	if typeName == "" {
		panic("registry: empty type name")
	}
	if factory == nil {
		panic(fmt.Sprintf("registry: nil factory for type %q", typeName))
	}

	r.mu.Lock()
	_, replaced := r.factories[typeName]
	r.factories[typeName] = factory
	r.mu.Unlock()

	r.logger.Debug("validator type registered", "type", typeName, "replaced", replaced)
}

// RegisterFunc installs a factory for a type whose validator has no options.
// Options present in the schema are ignored.
func (r *Registry) RegisterFunc(typeName string, fn domain.ValidatorFunc) {
	if fn == nil {
		panic(fmt.Sprintf("registry: nil validator func for type %q", typeName))
	}
	r.Register(typeName, func(Builder, schema.Schema) (domain.Validator, error) {
		return fn, nil
	})
}

// Lookup returns the factory registered for typeName.
func (r *Registry) Lookup(typeName string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[typeName]
	return f, ok
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Build turns s, and recursively every schema nested in it, into a validator.
//
// Errors are always *domain.ConfigError. An unregistered type tag wraps
// domain.ErrUnknownType; the error's Location points at the nested schema
// that failed.
func (r *Registry) Build(s schema.Schema) (domain.Validator, error) {
	v, err := r.build(s)
	if err != nil {
		r.logger.Debug("schema build failed", "err", err)
		return nil, err
	}
	return v, nil
}

// MustBuild is like Build but panics on error.
// Use it for schemas fixed at compile time.
func (r *Registry) MustBuild(s schema.Schema) domain.Validator {
	v, err := r.Build(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Registry) build(s schema.Schema) (domain.Validator, error) {
	if s == nil {
		return nil, &domain.ConfigError{Err: domain.Invalid("schema is nil")}
	}

	typeName := s.TypeName()
	if typeName == "" {
		return nil, &domain.ConfigError{Err: domain.Invalid("missing %q option", schema.TypeKey)}
	}

	factory, ok := r.Lookup(typeName)
	if !ok {
		return nil, &domain.ConfigError{Type: typeName, Err: domain.ErrUnknownType}
	}

	if m, ok := s.(schema.Map); ok {
		s = m.Options()
	}

	v, err := factory(nested{r}, s)
	if err != nil {
		var cfgErr *domain.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, &domain.ConfigError{Type: typeName, Err: err}
	}
	if v == nil {
		return nil, &domain.ConfigError{Type: typeName, Err: domain.Invalid("factory returned no validator")}
	}

	for _, m := range r.middleware {
		v = m(typeName, v)
	}
	return v, nil
}

// nested builds the schemas inside a container without repeating the
// failure log line at every level.
type nested struct{ r *Registry }

func (n nested) Build(s schema.Schema) (domain.Validator, error) { return n.r.build(s) }
