package extensions

import (
	"github.com/google/uuid"

	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
)

// TypeUUID is the type tag of the UUID validator.
const TypeUUID = "uuid"

const (
	MsgUUIDRequired       = "uuid required"
	MsgInvalidUUIDVersion = "invalid uuid version"
)

// UUID is a schema accepting UUID strings. A zero Version accepts any version.
type UUID struct {
	Version int `mapstructure:"version"`
}

func (UUID) TypeName() string { return TypeUUID }

type uuidValidator struct {
	domain.Base
	version uuid.Version
}

// NewUUID is the registry.Factory for TypeUUID.
func NewUUID(_ registry.Builder, s schema.Schema) (domain.Validator, error) {
	opts, err := schema.As[UUID](s)
	if err != nil {
		return nil, err
	}
	if opts.Version < 0 || opts.Version > 8 {
		return nil, domain.Invalid("uuid version %d is out of range 0-8", opts.Version)
	}
	return &uuidValidator{version: uuid.Version(opts.Version)}, nil
}

// Run returns the input string unchanged.
func (v *uuidValidator) Run(input any) domain.Result {
	text, ok := input.(string)
	if !ok {
		return v.Fail(MsgUUIDRequired)
	}
	id, err := uuid.Parse(text)
	if err != nil {
		return v.Fail(MsgUUIDRequired)
	}
	if v.version != 0 && id.Version() != v.version {
		return v.Fail(MsgInvalidUUIDVersion)
	}
	return v.Ok(input)
}
