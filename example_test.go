package roentgen_test

import (
	"fmt"
	"log"
	"time"

	"github.com/aretw0/roentgen"
	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/schema"
)

func ExampleValidate() {
	person := schema.Map{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "length": []any{1, nil}},
			"tags": map[string]any{"type": "array", "item": map[string]any{"type": "string"}},
		},
	}

	_, err := roentgen.Validate(person, map[string]any{"name": "Ada", "tags": []any{"math", 1843}})
	fmt.Println(err)

	_, err = roentgen.Validate(person, map[string]any{"name": "Ada"})
	fmt.Println(err)
	// Output:
	// tags[1]: string required
	// tags: missing property
}

func ExampleNew() {
	r := roentgen.New()
	r.RegisterFunc("even", func(input any) domain.Result {
		if n, ok := input.(int); ok && n%2 == 0 {
			return domain.Ok(n)
		}
		return domain.Fail("even number required")
	})

	v := r.MustBuild(schema.Map{"type": "array", "item": map[string]any{"type": "even"}})

	fmt.Println(v.Run([]any{2, 4}).OK())
	fmt.Println(v.Run([]any{2, 3}).Err())
	// Output:
	// true
	// [1]: even number required
}

func ExampleBuild_toDate() {
	v, err := roentgen.Build(schema.Timestamp{ToDate: true})
	if err != nil {
		log.Fatal(err)
	}

	res := v.Run("2024-02-29T12:00:00Z")
	fmt.Println(res.Out.(time.Time).Weekday())
	// Output:
	// Thursday
}

func ExampleBuild_configError() {
	_, err := roentgen.Build(schema.Map{
		"type": "array",
		"item": map[string]any{"type": "decimal"},
	})
	fmt.Println(err)
	// Output:
	// schema at item: unknown type: "decimal"
}
