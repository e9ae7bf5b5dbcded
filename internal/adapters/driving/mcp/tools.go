package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driving"
)

// FetchCrateInput is the input schema for the fetch_crate_docs tool.
type FetchCrateInput struct {
	Crate    string `json:"crate" jsonschema:"the crate name as published on crates.io"`
	Version  string `json:"version,omitempty" jsonschema:"the crate version (default latest)"`
	ItemPath string `json:"item_path,omitempty" jsonschema:"path to an item page below the crate root, e.g. de/trait.Deserialize.html"`
	NoCache  bool   `json:"no_cache,omitempty" jsonschema:"bypass the page cache"`
}

// FetchCrateOutput is the output schema for the fetch_crate_docs tool.
type FetchCrateOutput struct {
	Title    string `json:"title"`
	URI      string `json:"uri"`
	Markdown string `json:"markdown"`
}

// ConvertHTMLInput is the input schema for the convert_html tool.
type ConvertHTMLInput struct {
	HTML string `json:"html" jsonschema:"a rustdoc-generated HTML document to convert"`
}

// ConvertHTMLOutput is the output schema for the convert_html tool.
type ConvertHTMLOutput struct {
	Markdown string `json:"markdown"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_crate_docs",
		Description: "Fetch a crate's documentation from docs.rs as Markdown",
	}, s.handleFetchCrate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_html",
		Description: "Convert a rustdoc HTML document to Markdown",
	}, s.handleConvertHTML)
}

// handleFetchCrate handles the fetch_crate_docs tool invocation.
func (s *Server) handleFetchCrate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchCrateInput,
) (*mcp.CallToolResult, FetchCrateOutput, error) {
	opts := driving.FetchOptions{SkipCache: input.NoCache}

	page, err := s.ports.Convert.FetchCrate(ctx, input.Crate, input.Version, input.ItemPath, opts)
	if err != nil {
		return nil, FetchCrateOutput{}, err
	}

	return nil, FetchCrateOutput{
		Title:    page.Title,
		URI:      page.URI,
		Markdown: page.Markdown,
	}, nil
}

// handleConvertHTML handles the convert_html tool invocation.
func (s *Server) handleConvertHTML(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertHTMLInput,
) (*mcp.CallToolResult, ConvertHTMLOutput, error) {
	page, err := s.ports.Convert.ConvertHTML(ctx, &domain.RawPage{
		URI:      "mcp://convert_html",
		MIMEType: "text/html",
		Content:  []byte(input.HTML),
	})
	if err != nil {
		return nil, ConvertHTMLOutput{}, err
	}

	return nil, ConvertHTMLOutput{Markdown: page.Markdown}, nil
}
