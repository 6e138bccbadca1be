// Package core defines the shared types used across the embedlog framework.
//
// It provides the Level type for severity filtering. Levels are ordered
// with severity decreasing as the numeric value grows: Off < Critical <
// Error < Warning < Info < Debug. This matches the convention of embedded
// logging stacks where the configured level is a ceiling and everything at
// or below the ceiling is admitted. Filtering is a pure comparison, so a
// ceiling held in a constant lets the compiler eliminate disabled call
// sites entirely.
//
// The package also carries the framework-wide defaults (initial ceiling,
// staging capacity) so that sinks and the engine agree without importing
// each other.
package core
