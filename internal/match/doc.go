// Package match ranks names by how closely they resemble a misspelled one.
//
// It backs the "did you mean" hints attached to diagnostics: an unknown
// operator family in a config or directive, or a container type, method or
// constructor that the target package does not declare under the configured
// name.
//
// Key functions:
//   - NormalizeIdent: folds case and separators out of an identifier
//   - Levenshtein: computes edit distance between strings
//   - Rank: scores candidates against an input
//   - Suggest: returns the best candidates above a threshold
package match
