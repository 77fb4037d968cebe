/*
Package validators implements the built-in validator types.

  - array: a homogeneous sequence; options item, length, lengths.
  - object: a record with a closed set of required properties; option properties.
  - number: any numeric value; options range, ranges.
  - string: text; options length, lengths.
  - timestamp: a moment in time; option toDate.
  - url: a URL string; options hostname, protocol (both default true).

Containers report child failures with the child's location prefixed by the
element index or property name. Validation stops at the first failure.
*/
package validators
