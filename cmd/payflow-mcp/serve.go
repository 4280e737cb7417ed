package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/payflowhq/payflow-mcp/internal/config"
	"github.com/payflowhq/payflow-mcp/internal/server"
)

func cmdServe(args []string) {
	port := 0
	showHelp := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--port", "-p":
			if i+1 < len(args) {
				fmt.Sscanf(args[i+1], "%d", &port)
				i++
			}
		case "--help", "-h":
			showHelp = true
		}
	}

	if showHelp {
		printServeUsage()
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting current directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srv, err := server.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if port > 0 {
		if err := srv.RunHTTP(ctx, port); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := srv.RunStdio(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printServeUsage() {
	fmt.Print(`payflow-mcp serve - Start the MCP server

Usage:
  payflow-mcp serve [options]

Options:
  --port, -p PORT    Run with SSE/HTTP transport on PORT
                     (default: stdio transport)
  --help, -h         Show this help

Examples:
  payflow-mcp serve                 # Run with stdio transport
  payflow-mcp serve --port 8080     # Run with HTTP/SSE on port 8080

Configuration:
  Accounts are loaded and merged from:
  1. User config: ~/.config/payflow-mcp/config.kdl
  2. Project config: .payflow-mcp.kdl (in current directory)
  3. Environment: PAYFLOW_BASE_URL, PAYFLOW_CLIENT_ID,
     PAYFLOW_CLIENT_SECRET (and optionally PAYFLOW_TOKEN_URL,
     PAYFLOW_TIMEOUT)

  Later sources override earlier ones for the same account name.
`)
}
