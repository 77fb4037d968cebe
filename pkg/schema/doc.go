// Package schema defines the declarative descriptions that validators are
// built from.
//
// A Schema is a tagged union: every variant reports its type tag through
// TypeName. Schemas may be written as untyped configuration records:
//
//	s := schema.Map{
//	    "type": "object",
//	    "properties": map[string]any{
//	        "name": map[string]any{"type": "string", "length": []any{1, 64}},
//	        "tags": map[string]any{"type": "array", "item": map[string]any{"type": "string"}},
//	    },
//	}
//
// or with the typed variants:
//
//	s := schema.Object{Properties: map[string]schema.Schema{
//	    "name": schema.String{Length: &schema.Range{1, 64}},
//	    "tags": schema.Array{Item: schema.String{}},
//	}}
//
// Both forms may be mixed freely. Validators turn either form into their own
// typed options with As, so a custom validator type only has to declare an
// options struct with mapstructure tags.
//
// Range constraints follow one rule everywhere (see ResolveRanges): a plural
// option ("lengths", "ranges") wins over its singular form ("length",
// "range"), and with neither the value is unconstrained.
package schema
