package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/payflowhq/payflow-mcp/internal/config"
)

// cmdAccounts prints the merged account list. Secrets are never printed,
// only whether a secret is configured.
func cmdAccounts(args []string) {
	for _, a := range args {
		if a == "--help" || a == "-h" {
			printAccountsUsage()
			return
		}
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

	if len(cfg.Order) == 0 {
		fmt.Println("No accounts configured.")
		fmt.Println("Add accounts to ~/.config/payflow-mcp/config.kdl, .payflow-mcp.kdl, or set PAYFLOW_* environment variables.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBASE URL\tCLIENT ID\tSECRET\tSOURCE")
	for i, name := range cfg.Order {
		a := cfg.Accounts[name]
		secret := "missing"
		if a.ClientSecret != "" {
			secret = "set"
		}
		label := name
		if i == 0 {
			label = name + " (default)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", label, a.BaseURL, a.ClientID, secret, a.Source)
	}
	w.Flush()
}

func printAccountsUsage() {
	fmt.Print(`payflow-mcp accounts - List configured accounts

Usage:
  payflow-mcp accounts

Shows the merged account list with its source (user config, project
config, or environment). The first account is the default when a tool
call does not name one. Client secrets are never printed.
`)
}
