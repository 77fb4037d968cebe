/*
Package registry maps schema type tags to validator factories and builds
validator trees from schemas.

A Registry starts empty. The root roentgen package returns registries
preloaded with the built-in types; application code adds its own:

	r := roentgen.New()
	r.Register("even", func(b registry.Builder, s schema.Schema) (domain.Validator, error) {
		return domain.ValidatorFunc(func(input any) domain.Result {
			n, ok := input.(int)
			if !ok || n%2 != 0 {
				return domain.Fail("even number required")
			}
			return domain.Ok(n)
		}), nil
	})

	v, err := r.Build(schema.Map{"type": "array", "item": map[string]any{"type": "even"}})

Re-registering a tag replaces the previous factory.
*/
package registry
