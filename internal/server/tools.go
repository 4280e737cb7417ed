package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/payflowhq/payflow-mcp/internal/payapi"
)

// registerTools registers every catalog tool with the MCP server, in
// catalog order. All tools share the envelope output schema.
func (s *Server) registerTools() {
	for _, name := range s.registry.names() {
		def, _ := s.registry.get(name)
		s.mcpServer.AddTool(
			&mcp.Tool{
				Name:         def.Name,
				Description:  def.Description,
				InputSchema:  def.InputSchema,
				OutputSchema: envelopeOutputSchema,
			},
			s.wrapTool(def),
		)
	}
}

// wrapTool adapts a catalog definition to an MCP tool handler: parse the
// JSON arguments, run the shared handler, render the envelope or error.
func (s *Server) wrapTool(def toolDef) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, err
			}
		}

		env, err := s.handleTool(ctx, def, args)
		if err != nil {
			return errorResult(err), nil
		}

		return toCallToolResult(env)
	}
}

// errorResult creates an error CallToolResult carrying the error class so
// callers can react without parsing prose.
func errorResult(err error) *mcp.CallToolResult {
	apiErr := payapi.AsError(err)
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{
			Text: fmt.Sprintf("[%s] %s", apiErr.Code, apiErr.Error()),
		}},
	}
}

// toCallToolResult converts an envelope to a CallToolResult with JSON text
// content.
func toCallToolResult(env *payapi.Envelope) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return errorResult(err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}
