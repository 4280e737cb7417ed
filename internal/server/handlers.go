package server

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/payflowhq/payflow-mcp/internal/payapi"
)

// handleTool executes one catalog tool: marshal the MCP arguments into the
// HTTP call the definition describes, issue it, normalize the response.
func (s *Server) handleTool(ctx context.Context, def toolDef, args map[string]any) (*payapi.Envelope, error) {
	account, _ := args["account"].(string)
	client, err := s.client(account)
	if err != nil {
		return nil, err
	}

	path := def.Path
	for _, name := range def.PathParams {
		v, ok := args[name].(string)
		if !ok || v == "" {
			return nil, payapi.ErrUsage(fmt.Sprintf("%s is required", name))
		}
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(v), 1)
	}

	var query url.Values
	for _, name := range def.QueryParams {
		v, ok := args[name]
		if !ok || v == nil {
			continue
		}
		if query == nil {
			query = url.Values{}
		}
		query.Set(name, paramString(v))
	}

	var body map[string]any
	for _, name := range def.BodyParams {
		v, ok := args[name]
		if !ok || v == nil {
			continue
		}
		if body == nil {
			body = make(map[string]any)
		}
		body[name] = v
	}

	var bodyArg any
	if body != nil {
		bodyArg = body
	}

	raw, err := client.Request(ctx, def.Method, path, query, bodyArg)
	if err != nil {
		return nil, err
	}

	return payapi.Normalize(raw, def.Name), nil
}

// paramString renders a JSON-decoded argument as a query parameter value.
// JSON numbers arrive as float64; integral values must not pick up a
// decimal point on the wire.
func paramString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
