/*
Package roentgen is a schema-driven data validator.

A schema declares the expected shape of a value: a scalar type, a nested
object, a homogeneous array, string and number range constraints, timestamp
and URL formats. Building a schema yields a tree of validators; running the
root validator on a value returns either the (possibly normalized) value or a
failure whose location pinpoints the offending sub-value.

# Usage

	v, err := roentgen.New().Build(schema.Map{
		"type": "object",
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "length": []any{1, 64}},
			"created": map[string]any{"type": "timestamp", "toDate": true},
			"links":   map[string]any{"type": "array", "item": map[string]any{"type": "url"}},
		},
	})
	if err != nil {
		// The schema itself is wrong: unknown type, missing item, bad range.
	}

	res := v.Run(input)
	if !res.OK() {
		fmt.Println(res.Failure.Location, res.Failure.Message) // e.g. links[2] protocol missing
	}

# Key Concepts

  - Two error classes: configuration errors come back from Build as a
    *domain.ConfigError; validation failures are domain.Result values and
    never returned as Go errors from Run.
  - Fail fast: the first failure in traversal order is reported. Objects
    reject unknown properties before checking for missing ones, and check
    configured properties in sorted name order.
  - No mutation: containers return new arrays and objects holding the
    normalized children; the input is never modified.
  - Extension: any type tag can be registered on a registry.Registry; see
    package extensions for examples.
*/
package roentgen
