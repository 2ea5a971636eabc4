// Package memory provides in-memory implementations of driven ports.
// They back tests and serve as a fallback when the config directory
// cannot be used.
package memory
