package schema

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/roentgen/internal/numeric"
	"github.com/aretw0/roentgen/pkg/domain"
)

var (
	schemaType = reflect.TypeOf((*Schema)(nil)).Elem()
	rangeType  = reflect.TypeOf(Range{})
)

// As returns s as the typed variant T.
//
// A value of type T (or a non-nil *T) is returned as is. A Map is decoded
// into T through its mapstructure tags: nested map[string]any values become
// Maps, and [min, max] sequences become Ranges, where a nil bound is
// unbounded on that side. Options T does not declare are ignored.
func As[T Schema](s Schema) (T, error) {
	var zero T
	switch v := s.(type) {
	case nil:
		return zero, domain.Invalid("schema is nil")
	case T:
		return v, nil
	case Map:
		return decode[T](v)
	}

	if rv := reflect.ValueOf(s); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		if v, ok := rv.Elem().Interface().(T); ok {
			return v, nil
		}
	}
	return zero, domain.Invalid("cannot use %T as a %q schema", s, zero.TypeName())
}

// Decode fills out, a pointer to an options struct, from the options of m.
// It is the untyped half of As, exposed for custom validator types whose
// options are not a Schema themselves.
func Decode(m Map, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(schemaHook, rangeHook),
		Result:     out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any(m.Options())); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSchema, err)
	}
	return nil
}

func decode[T Schema](m Map) (T, error) {
	var out T
	err := Decode(m, &out)
	return out, err
}

// schemaHook turns nested untyped schemas into Maps so they can be stored in
// Schema-typed fields.
func schemaHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != schemaType {
		return data, nil
	}
	switch v := data.(type) {
	case Schema:
		return v, nil
	case map[string]any:
		return Map(v), nil
	}
	return nil, fmt.Errorf("expected a schema, got %T", data)
}

// rangeHook accepts any two-element sequence of numbers (or nils) as a Range.
func rangeHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != rangeType {
		return data, nil
	}
	if r, ok := data.(Range); ok {
		return r, nil
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("range must be a [min, max] pair, got %T", data)
	}
	if rv.Len() != 2 {
		return nil, fmt.Errorf("range must be a [min, max] pair, got %d elements", rv.Len())
	}

	lo, err := bound(rv.Index(0).Interface(), math.Inf(-1))
	if err != nil {
		return nil, err
	}
	hi, err := bound(rv.Index(1).Interface(), math.Inf(1))
	if err != nil {
		return nil, err
	}
	return Range{lo, hi}, nil
}

func bound(v any, unbounded float64) (float64, error) {
	if v == nil {
		return unbounded, nil
	}
	f, ok := numeric.Float(v)
	if !ok {
		return 0, fmt.Errorf("range bound must be a number, got %T", v)
	}
	return f, nil
}
