package mcp

import (
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Convert fetches and converts rustdoc pages.
	Convert driving.ConvertService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Convert == nil {
		return ErrMissingConvertService
	}
	return nil
}
