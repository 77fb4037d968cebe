package domain

import "fmt"

// Messages emitted by the built-in validators.
const (
	MsgArrayRequired     = "array required"
	MsgInvalidLength     = "invalid length"
	MsgNotInRange        = "not in range"
	MsgObjectRequired    = "object required"
	MsgUnknownProperty   = "unknown property"
	MsgMissingProperty   = "missing property"
	MsgNumberRequired    = "number required"
	MsgStringRequired    = "string required"
	MsgTimestampRequired = "timestamp required"
	MsgProtocolMissing   = "protocol missing"
	MsgHostnameMissing   = "hostname missing"
)

// Result is the outcome of running a validator.
// Exactly one of the two shapes is meaningful: on success Failure is nil and
// Out holds the (possibly normalized) value; on failure Out is nil.
type Result struct {
	Out     any
	Failure *Failure
}

// Failure describes why a value did not conform to its schema.
type Failure struct {
	Message  string
	Location Location
}

// Error renders the failure as "<location>: <message>", or just the message
// when the failure is at the root value.
func (f *Failure) Error() string {
	if len(f.Location) == 0 {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Location, f.Message)
}

// Ok returns a successful Result carrying out.
func Ok(out any) Result {
	return Result{Out: out}
}

// Fail returns a failed Result with the given message and location.
func Fail(message string, location ...Segment) Result {
	return Result{Failure: &Failure{Message: message, Location: Location(location)}}
}

// OK reports whether the result is a success.
func (r Result) OK() bool { return r.Failure == nil }

// Err returns the failure as an error, or nil on success.
func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

// Within prepends seg to the location of a failed result.
// Container validators use it to report where in the container a child failed.
// Successful results are returned unchanged.
func (r Result) Within(seg Segment) Result {
	if r.Failure == nil {
		return r
	}
	return Result{Failure: &Failure{
		Message:  r.Failure.Message,
		Location: r.Failure.Location.Prepend(seg),
	}}
}
