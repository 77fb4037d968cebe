package domain

// Validator is the compiled, runnable form of a schema.
//
// Run must never panic on any input and must return exactly one of the two
// Result shapes, built with Ok or Fail. Run must not mutate its input;
// normalized values are returned in Result.Out. A Validator holds no
// per-call state, so one instance may run on disjoint inputs concurrently.
type Validator interface {
	Run(input any) Result
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(input any) Result

// Run calls f(input).
func (f ValidatorFunc) Run(input any) Result { return f(input) }

// Base gives validator implementations the two result constructors as
// methods. Embed it in a validator struct:
//
//	type evenValidator struct {
//		domain.Base
//	}
//
//	func (v *evenValidator) Run(input any) domain.Result {
//		n, ok := input.(int)
//		if !ok || n%2 != 0 {
//			return v.Fail("even number required")
//		}
//		return v.Ok(n)
//	}
type Base struct{}

// Ok returns a successful Result carrying out.
func (Base) Ok(out any) Result { return Ok(out) }

// Fail returns a failed Result with the given message and location.
func (Base) Fail(message string, location ...Segment) Result {
	return Fail(message, location...)
}
