// Package match suggests the closest known name for a misspelled one.
//
// It backs the "did you mean" hints of schema diagnostics: an undeclared
// signal or an unknown entry type is compared against the declared names
// by edit distance.
package match
