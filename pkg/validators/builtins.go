package validators

import (
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
)

// Builtins returns a new map from each built-in type tag to its factory.
func Builtins() map[string]registry.Factory {
	return map[string]registry.Factory{
		schema.TypeArray:     NewArray,
		schema.TypeObject:    NewObject,
		schema.TypeNumber:    NewNumber,
		schema.TypeString:    NewString,
		schema.TypeTimestamp: NewTimestamp,
		schema.TypeURL:       NewURL,
	}
}

// RegisterBuiltins installs every built-in type into r,
// replacing any factory already registered under the same tag.
func RegisterBuiltins(r *registry.Registry) {
	for typeName, factory := range Builtins() {
		r.Register(typeName, factory)
	}
}
