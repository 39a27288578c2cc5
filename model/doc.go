// Package model defines the value types shared by every ledger component.
//
// # Identity Types
//
//   - Input: the seven parameters that define a generated graph input
//   - ID: comparable canonical form of an Input, safe to use as a map key
//
// # Ordering
//
// Input.Compare orders by precision, dimensionality, min, max, vertex count,
// edge count and seed. Floats are compared with CompareFloat, which places NaN
// after every other value so that sorting always sees a total order.
//
// # Errors
//
//   - ParseError: a token could not be coerced to its declared type
//   - DataError: arity mismatch, I/O failure or malformed line
//   - ArityError: wrong token count, wrapped by DataError
package model
