// Package diagnostic provides structured, positioned errors and warnings for
// enum declarations.
//
// Key capabilities:
//   - "not an enum" errors for declarations that are not interfaces
//   - Malformed variant reports (results, variadic or blank parameters)
//   - Variant name collisions after identifier conversion
//   - "did you mean" suggestions for unknown declaration names
package diagnostic
