package main

import (
	"fmt"
	"os"
)

const version = "0.4.1"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "accounts":
		cmdAccounts(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("payflow-mcp version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`payflow-mcp - MCP server for the Payflow payments API

Usage:
  payflow-mcp <command> [options]

Commands:
  serve       Start the MCP server
  accounts    List configured accounts
  version     Show version
  help        Show this help

Run 'payflow-mcp <command> --help' for more information on a command.
`)
}
