/*
Package domain contains the protocol shared by every validator.

It is kept free of schema parsing and registry concerns so that custom
validators can depend on it alone.

# Key Entities

  - Result: the outcome of Validator.Run, built with Ok or Fail.
  - Failure: a message from a fixed vocabulary plus the Location of the offending value.
  - Location: property names and array indices, outer to inner.
  - Validator: anything with Run(input any) Result. Embed Base to get Ok and Fail as methods.
  - ConfigError: a schema that could not be built (unknown type, malformed options).
*/
package domain
