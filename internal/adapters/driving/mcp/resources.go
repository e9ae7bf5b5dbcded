package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for rustdoc-md resources.
const uriScheme = "rustdoc-md://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing cached pages.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cache",
		Name:        "cache",
		Description: "List of all cached documentation pages",
		MIMEType:    "application/json",
	}, s.handleCacheResource)

	// Template for cached page content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "pages/{pageId}",
		Name:        "page-content",
		Description: "Markdown content of a cached documentation page",
		MIMEType:    "text/markdown",
	}, s.handlePageResource)
}

// handleCacheResource returns a listing of all cached pages.
func (s *Server) handleCacheResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	pages, err := s.ports.Convert.CachedPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cached pages: %w", err)
	}

	// Build simplified page list.
	type pageInfo struct {
		ID      string `json:"id"`
		Crate   string `json:"crate"`
		Version string `json:"version"`
		Title   string `json:"title"`
		URI     string `json:"uri"`
	}

	infos := make([]pageInfo, len(pages))
	for i, page := range pages {
		infos[i] = pageInfo{
			ID:      page.ID,
			Crate:   page.Crate,
			Version: page.Version,
			Title:   page.Title,
			URI:     page.URI,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling pages: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handlePageResource returns the Markdown of one cached page.
func (s *Server) handlePageResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract pageId from URI: rustdoc-md://pages/{pageId}
	pageID := strings.TrimPrefix(req.Params.URI, uriScheme+"pages/")
	if pageID == "" || pageID == req.Params.URI {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	pages, err := s.ports.Convert.CachedPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cached pages: %w", err)
	}

	for _, page := range pages {
		if page.ID != pageID {
			continue
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     page.Markdown,
			}},
		}, nil
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}
