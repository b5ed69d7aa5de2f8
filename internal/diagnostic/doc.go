// Package diagnostic provides structured warnings and errors collected
// while loading operator requests and generating code.
//
// Key capabilities:
//   - Config and directive validation errors with source positions
//   - Warnings for undocumented operator variants
//   - Container verification reports
package diagnostic
