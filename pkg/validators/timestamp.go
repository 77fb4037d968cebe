package validators

import (
	"math"
	"reflect"
	"time"

	"github.com/spf13/cast"

	"github.com/aretw0/roentgen/internal/numeric"
	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
)

// maxEpochMillis bounds accepted moments to 100,000,000 days either side of the epoch.
const maxEpochMillis = 8.64e15

// Timestamp checks that a value denotes a moment in time.
type Timestamp struct {
	domain.Base
	toDate bool
}

// NewTimestamp is the registry.Factory for schema.TypeTimestamp.
func NewTimestamp(_ registry.Builder, s schema.Schema) (domain.Validator, error) {
	opts, err := schema.As[schema.Timestamp](s)
	if err != nil {
		return nil, err
	}
	return &Timestamp{toDate: opts.ToDate}, nil
}

// Run accepts time.Time, *time.Time, numbers as milliseconds since the Unix
// epoch, and strings in any layout cast understands (interpreted in UTC when
// they carry no zone). With toDate the output is the parsed time.Time,
// otherwise the input itself.
func (t *Timestamp) Run(input any) domain.Result {
	when, ok := parseTime(input)
	if !ok {
		return t.Fail(domain.MsgTimestampRequired)
	}
	if t.toDate {
		return t.Ok(when)
	}
	return t.Ok(input)
}

func parseTime(input any) (time.Time, bool) {
	switch v := input.(type) {
	case nil, bool:
		return time.Time{}, false
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	}

	if ms, ok := numeric.Float(input); ok {
		return fromEpochMillis(ms)
	}

	if reflect.ValueOf(input).Kind() != reflect.String {
		return time.Time{}, false
	}
	text, _ := asText(input)
	when, err := cast.ToTimeInDefaultLocationE(text, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return when, true
}

func fromEpochMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(math.Trunc(ms))).UTC(), true
}
