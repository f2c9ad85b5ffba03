// Package memory provides in-memory implementations of the driven ports.
// They back tests and the MCP server, where nothing needs to reach disk.
package memory
