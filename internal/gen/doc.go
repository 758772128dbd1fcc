// Package gen emits the method bodies of generated configuration-access
// classes and the boilerplate around them.
//
// Generation writes plain text through a Writer that owns the indentation
// level and the open destination.
//
// Emission patterns:
//   - Getter bodies (optionally indexed, optionally cast to the enum type)
//   - Immutability predicates keyed by entry name or by a formatted index key
//   - Setter bodies with range clamping, an immutability guard and change
//     notification (direct signal emission or settingsChanged bitmask)
//   - Banner, include directives, namespace wrapping and brace scopes
package gen
