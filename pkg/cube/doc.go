// Package cube defines the value type for PostgreSQL's multi-dimensional
// cube extension type.
//
// A Cube is an axis-aligned box described by two corner coordinate
// sequences of equal length. Values are immutable: both corners are
// validated once at construction, and because a Cube owns its slice
// headers by value, the lengths it observes can never change afterwards.
// Queries such as Dimensions and IsPoint therefore have no error path.
//
// The Golden Rule: pkg/cube imports ONLY the stdlib. Parsing, formatting,
// and driver integration live in pkg/codec, which depends on this package
// and never the reverse.
package cube
