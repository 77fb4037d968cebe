package validators

import (
	"reflect"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
)

// Object validates a record against a closed set of required properties.
type Object struct {
	domain.Base
	// properties is nil when the schema accepts any object.
	properties map[string]domain.Validator
	// names holds the keys of properties in sorted order.
	names []string
}

// NewObject is the registry.Factory for schema.TypeObject.
func NewObject(b registry.Builder, s schema.Schema) (domain.Validator, error) {
	opts, err := schema.As[schema.Object](s)
	if err != nil {
		return nil, err
	}
	if opts.Properties == nil {
		return &Object{}, nil
	}

	names := make([]string, 0, len(opts.Properties))
	for name := range opts.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	properties := make(map[string]domain.Validator, len(names))
	for _, name := range names {
		v, err := b.Build(opts.Properties[name])
		if err != nil {
			return nil, domain.WithinSchema(err, domain.Key("properties"), domain.Key(name))
		}
		properties[name] = v
	}

	return &Object{properties: properties, names: names}, nil
}

// Run accepts map[string]any, any other map keyed by a string kind, and
// *orderedmap.OrderedMap[string, any].
//
// Unknown properties are rejected first, walking the input's own keys: in
// insertion order for ordered maps, in sorted order for Go maps. Required
// properties are then checked in sorted order of the configured names, so
// when several properties are missing the alphabetically first is reported.
//
// The output is a new object of the same family with normalized values.
func (o *Object) Run(input any) domain.Result {
	obj, ok := asFields(input)
	if !ok {
		return o.Fail(domain.MsgObjectRequired)
	}
	if o.properties == nil {
		return o.Ok(input)
	}

	for _, key := range obj.keys() {
		if _, ok := o.properties[key]; !ok {
			return o.Fail(domain.MsgUnknownProperty, domain.Key(key))
		}
	}

	values := make(map[string]any, len(o.names))
	for _, name := range o.names {
		value, ok := obj.get(name)
		if !ok {
			return o.Fail(domain.MsgMissingProperty, domain.Key(name))
		}

		res := o.properties[name].Run(value)
		if !res.OK() {
			return res.Within(domain.Key(name))
		}
		values[name] = res.Out
	}

	return o.Ok(obj.rebuild(values))
}

// fields is the view of an object-like input the object validator needs.
type fields interface {
	// keys returns the input's own keys in its own order.
	keys() []string
	get(key string) (any, bool)
	// rebuild returns a new object of the same family holding values,
	// keyed like the input.
	rebuild(values map[string]any) any
}

func asFields(input any) (fields, bool) {
	switch v := input.(type) {
	case map[string]any:
		return goMap(v), true
	case *orderedmap.OrderedMap[string, any]:
		if v == nil {
			return nil, false
		}
		return ordered{v}, true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return reflectMap{rv}, true
	}
	return nil, false
}

type goMap map[string]any

func (m goMap) keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m goMap) get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m goMap) rebuild(values map[string]any) any {
	return values
}

type reflectMap struct{ rv reflect.Value }

func (m reflectMap) keys() []string {
	keys := make([]string, 0, m.rv.Len())
	for _, k := range m.rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys
}

func (m reflectMap) get(key string) (any, bool) {
	v := m.rv.MapIndex(reflect.ValueOf(key).Convert(m.rv.Type().Key()))
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func (m reflectMap) rebuild(values map[string]any) any {
	return values
}

type ordered struct {
	om *orderedmap.OrderedMap[string, any]
}

func (o ordered) keys() []string {
	keys := make([]string, 0, o.om.Len())
	for pair := o.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (o ordered) get(key string) (any, bool) {
	return o.om.Get(key)
}

func (o ordered) rebuild(values map[string]any) any {
	out := orderedmap.New[string, any]()
	for pair := o.om.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, values[pair.Key])
	}
	return out
}
