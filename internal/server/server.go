// Package server exposes the payments API as MCP tools. Every tool maps
// one upstream operation to one authenticated HTTP call and returns the
// normalized envelope.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/payflowhq/payflow-mcp/internal/config"
	"github.com/payflowhq/payflow-mcp/internal/logging"
	"github.com/payflowhq/payflow-mcp/internal/payapi"
)

const (
	serverName    = "payflow-mcp"
	serverVersion = "0.4.1"
)

// Server is the payflow-mcp server. It holds one API client per configured
// account; clients share no state with each other.
type Server struct {
	mcpServer *mcp.Server
	clients   map[string]*payapi.Client
	accounts  []string // configured account names, in config order
	registry  *registry
	logger    logging.Logger
}

// New creates a Server from a validated account config.
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Server{
		clients:  make(map[string]*payapi.Client, len(cfg.Accounts)),
		registry: newRegistry(catalog),
		logger:   logging.Default(),
	}

	for _, name := range cfg.Order {
		a := cfg.Accounts[name]
		s.clients[name] = payapi.NewClient(payapi.Options{
			BaseURL:  a.BaseURL,
			TokenURL: a.TokenURL,
			Credentials: payapi.Credentials{
				ClientID:     a.ClientID,
				ClientSecret: a.ClientSecret,
			},
			Timeout: a.Timeout,
			Logger:  s.logger.With("account", name),
		})
		s.accounts = append(s.accounts, name)
	}

	s.mcpServer = mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		},
		&mcp.ServerOptions{
			Capabilities: &mcp.ServerCapabilities{
				Tools: &mcp.ToolCapabilities{},
			},
		},
	)

	s.registerTools()
	return s, nil
}

// client resolves the API client for an account argument. An empty account
// selects the first configured account.
func (s *Server) client(account string) (*payapi.Client, error) {
	if account == "" {
		account = s.accounts[0]
	}
	c, ok := s.clients[account]
	if !ok {
		return nil, payapi.ErrUsage(fmt.Sprintf("unknown account %q", account))
	}
	return c, nil
}

// Accounts returns the configured account names in config order.
func (s *Server) Accounts() []string {
	return s.accounts
}

// RunStdio runs the server using stdio transport.
func (s *Server) RunStdio(ctx context.Context) error {
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

// RunHTTP runs the server using HTTP/SSE transport.
func (s *Server) RunHTTP(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)

	sseHandler := mcp.NewSSEHandler(func(r *http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/", sseHandler)

	s.logger.Info("payflow-mcp server running", "addr", addr)
	return http.ListenAndServe(addr, mux)
}

// CallTool calls a tool directly (for testing purposes).
func (s *Server) CallTool(ctx context.Context, toolName string, args map[string]any) (*payapi.Envelope, error) {
	def, ok := s.registry.get(toolName)
	if !ok {
		return nil, payapi.ErrUsage(fmt.Sprintf("unknown tool: %s", toolName))
	}
	return s.handleTool(ctx, def, args)
}
