// Package diagnostic provides structured errors, warnings and notes
// collected while loading an entry model.
//
// Key capabilities:
//   - Structural problems in entry declarations (empty or duplicate names)
//   - Bounds declared on kinds that have no ordering
//   - Signals referenced by entries but never declared
//   - Notes about emission decisions (e.g. skipped unsigned lower bounds)
package diagnostic
