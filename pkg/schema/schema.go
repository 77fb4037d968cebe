package schema

// Type tags of the built-in validators.
const (
	TypeArray     = "array"
	TypeObject    = "object"
	TypeNumber    = "number"
	TypeString    = "string"
	TypeTimestamp = "timestamp"
	TypeURL       = "url"
)

// TypeKey is the option naming the validator type in an untyped Map.
const TypeKey = "type"

// Schema is a declarative description of the expected shape of a value.
// TypeName returns the tag used to look up the validator factory.
//
// A Schema is either an untyped Map or one of the typed variants below.
// Custom validator types may define their own variants.
type Schema interface {
	TypeName() string
}

// Map is the untyped form of a schema: a configuration record whose "type"
// option names the validator and whose remaining options are
// validator-specific. Nested schemas are Maps (or map[string]any) too.
type Map map[string]any

// TypeName returns the "type" option, or "" if it is missing or not a string.
func (m Map) TypeName() string {
	t, _ := m[TypeKey].(string)
	return t
}

// Options returns a shallow copy of m without the "type" option.
func (m Map) Options() Map {
	out := make(Map, len(m))
	for k, v := range m {
		if k == TypeKey {
			continue
		}
		out[k] = v
	}
	return out
}

// Array describes a homogeneous sequence.
// Lengths takes precedence over Length; with neither, any length is accepted.
type Array struct {
	Item    Schema  `mapstructure:"item"`
	Length  *Range  `mapstructure:"length"`
	Lengths []Range `mapstructure:"lengths"`
}

func (Array) TypeName() string { return TypeArray }

// Object describes a record with a closed set of required properties.
// A nil Properties accepts any object unchanged.
type Object struct {
	Properties map[string]Schema `mapstructure:"properties"`
}

func (Object) TypeName() string { return TypeObject }

// Number describes a numeric value within one of the given inclusive ranges.
// Ranges takes precedence over Range; with neither, any number is accepted.
type Number struct {
	Range  *Range  `mapstructure:"range"`
	Ranges []Range `mapstructure:"ranges"`
}

func (Number) TypeName() string { return TypeNumber }

// String describes a text value whose length lies in one of the given ranges.
type String struct {
	Length  *Range  `mapstructure:"length"`
	Lengths []Range `mapstructure:"lengths"`
}

func (String) TypeName() string { return TypeString }

// Timestamp describes a value parseable as a moment in time.
// With ToDate the validator outputs the parsed time.Time instead of the input.
type Timestamp struct {
	ToDate bool `mapstructure:"toDate"`
}

func (Timestamp) TypeName() string { return TypeTimestamp }

// URL describes a URL string. Hostname and Protocol say whether each part is
// mandatory; nil means true.
type URL struct {
	Hostname *bool `mapstructure:"hostname"`
	Protocol *bool `mapstructure:"protocol"`
}

func (URL) TypeName() string { return TypeURL }

// RequireHostname reports whether a hostname is mandatory.
func (u URL) RequireHostname() bool { return u.Hostname == nil || *u.Hostname }

// RequireProtocol reports whether a protocol is mandatory.
func (u URL) RequireProtocol() bool { return u.Protocol == nil || *u.Protocol }

// Flag returns a pointer to b, for the optional boolean options of URL.
func Flag(b bool) *bool { return &b }
