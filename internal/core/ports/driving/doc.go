// Package driving declares what the TUI, CLI and MCP server may ask of
// the core. internal/core/services provides the implementations.
package driving
