package validators

import (
	"reflect"
	"unicode/utf8"

	"github.com/aretw0/roentgen/internal/numeric"
	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
)

// Number checks that a value is numeric and inside one of its ranges.
type Number struct {
	domain.Base
	ranges []schema.Range
}

// NewNumber is the registry.Factory for schema.TypeNumber.
func NewNumber(_ registry.Builder, s schema.Schema) (domain.Validator, error) {
	opts, err := schema.As[schema.Number](s)
	if err != nil {
		return nil, err
	}
	ranges, err := schema.ResolveRanges(opts.Range, opts.Ranges)
	if err != nil {
		return nil, err
	}
	return &Number{ranges: ranges}, nil
}

// Run accepts every Go integer and float kind and json.Number.
// The input is returned unchanged; NaN is numeric but never in range.
func (n *Number) Run(input any) domain.Result {
	f, ok := numeric.Float(input)
	if !ok {
		return n.Fail(domain.MsgNumberRequired)
	}
	if !schema.AnyContains(n.ranges, f) {
		return n.Fail(domain.MsgNotInRange)
	}
	return n.Ok(input)
}

// String checks that a value is text whose length is inside one of its ranges.
type String struct {
	domain.Base
	lengths []schema.Range
}

// NewString is the registry.Factory for schema.TypeString.
func NewString(_ registry.Builder, s schema.Schema) (domain.Validator, error) {
	opts, err := schema.As[schema.String](s)
	if err != nil {
		return nil, err
	}
	lengths, err := schema.ResolveRanges(opts.Length, opts.Lengths)
	if err != nil {
		return nil, err
	}
	return &String{lengths: lengths}, nil
}

// Run accepts any value of a string kind. Length counts runes, not bytes.
func (s *String) Run(input any) domain.Result {
	text, ok := asText(input)
	if !ok {
		return s.Fail(domain.MsgStringRequired)
	}
	if !schema.AnyContains(s.lengths, float64(utf8.RuneCountInString(text))) {
		return s.Fail(domain.MsgInvalidLength)
	}
	return s.Ok(input)
}

func asText(input any) (string, bool) {
	if s, ok := input.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
