// Package mcp provides an MCP (Model Context Protocol) server adapter for
// rustdoc-md. It lets AI assistants pull crate documentation as Markdown
// straight into their context.
package mcp

import "errors"

// ErrMissingConvertService is returned when the convert service is not provided.
var ErrMissingConvertService = errors.New("mcp: convert service is required")
