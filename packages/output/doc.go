// Package output provides formatters for displaying comparison results.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output
//
// Formatters write a Run, which pairs a validation result with the file
// names and timing of the comparison that produced it.
package output
