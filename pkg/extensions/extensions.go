// Package extensions provides validator types beyond the built-ins,
// registered through the same public extension point application code uses.
//
//	r := roentgen.New()
//	extensions.Register(r)
//
//	v, err := r.Build(schema.Map{
//	    "type": "object",
//	    "properties": map[string]any{
//	        "id":    map[string]any{"type": "uuid", "version": 4},
//	        "count": map[string]any{"type": "expr", "expr": "self > 0", "message": "positive count required"},
//	    },
//	})
package extensions

import "github.com/aretw0/roentgen/pkg/registry"

// Register installs the expr and uuid types into r.
func Register(r *registry.Registry) {
	r.Register(TypeExpr, NewExpr)
	r.Register(TypeUUID, NewUUID)
}
