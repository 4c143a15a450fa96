// Package cli implements the sfta command-line surface (spec.md §6.3):
// analyze, validate, and explain, each available in text, JSON, or
// YAML output, with a 0/1/2 exit-code taxonomy distinguishing success,
// analysis-level failure, and command usage errors.
package cli
