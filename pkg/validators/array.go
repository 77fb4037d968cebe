package validators

import (
	"reflect"

	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
)

// Array validates a homogeneous sequence and normalizes every element
// through the item validator.
type Array struct {
	domain.Base
	item    domain.Validator
	lengths []schema.Range
}

// NewArray is the registry.Factory for schema.TypeArray.
func NewArray(b registry.Builder, s schema.Schema) (domain.Validator, error) {
	opts, err := schema.As[schema.Array](s)
	if err != nil {
		return nil, err
	}
	if opts.Item == nil {
		return nil, domain.Invalid(`"item" option is required`)
	}

	lengths, err := schema.ResolveRanges(opts.Length, opts.Lengths)
	if err != nil {
		return nil, err
	}

	item, err := b.Build(opts.Item)
	if err != nil {
		return nil, domain.WithinSchema(err, domain.Key("item"))
	}

	return &Array{item: item, lengths: lengths}, nil
}

// Run accepts any Go slice or array. The output is always a new []any
// holding the normalized elements; the input is left untouched.
func (a *Array) Run(input any) domain.Result {
	if items, ok := input.([]any); ok {
		return a.run(len(items), func(i int) any { return items[i] })
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return a.Fail(domain.MsgArrayRequired)
	}
	return a.run(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
}

func (a *Array) run(n int, at func(int) any) domain.Result {
	if !schema.AnyContains(a.lengths, float64(n)) {
		return a.Fail(domain.MsgInvalidLength)
	}

	out := make([]any, n)
	for i := 0; i < n; i++ {
		res := a.item.Run(at(i))
		if !res.OK() {
			return res.Within(domain.Index(i))
		}
		out[i] = res.Out
	}
	return a.Ok(out)
}
