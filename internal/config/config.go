// Package config loads payments-account configuration for payflow-mcp.
//
// Accounts come from KDL files (user and project scope) with an optional
// environment-variable account for credential-only deployments. The config
// layer owns validation; consumers receive values only.
package config

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeout applies when an account does not configure one.
const DefaultTimeout = 30 * time.Second

// Config is the merged account configuration.
type Config struct {
	Accounts map[string]Account
	Order    []string // account names in first-appearance order
}

// Account is one configured payments account. One API client is created
// per account; clients share nothing.
type Account struct {
	Name         string
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	Source       Source
}

// Source indicates where an account configuration came from.
type Source int

const (
	SourceUser Source = iota
	SourceProject
	SourceEnv
)

func (s Source) String() string {
	switch s {
	case SourceUser:
		return "user"
	case SourceProject:
		return "project"
	case SourceEnv:
		return "env"
	default:
		return "unknown"
	}
}

// New creates an empty config.
func New() *Config {
	return &Config{Accounts: make(map[string]Account)}
}

// Set adds or replaces an account, preserving first-appearance order.
func (c *Config) Set(a Account) {
	if _, exists := c.Accounts[a.Name]; !exists {
		c.Order = append(c.Order, a.Name)
	}
	c.Accounts[a.Name] = a
}

// Default returns the first configured account.
func (c *Config) Default() (Account, bool) {
	if len(c.Order) == 0 {
		return Account{}, false
	}
	return c.Accounts[c.Order[0]], true
}

// Validate checks that every account carries the fields the API client
// needs. Secrets are never echoed back in validation errors.
func (c *Config) Validate() error {
	if len(c.Accounts) == 0 {
		return fmt.Errorf("no accounts configured")
	}
	for _, name := range c.Order {
		a := c.Accounts[name]
		var missing []string
		if a.BaseURL == "" {
			missing = append(missing, "base_url")
		}
		if a.TokenURL == "" {
			missing = append(missing, "token_url")
		}
		if a.ClientID == "" {
			missing = append(missing, "client_id")
		}
		if a.ClientSecret == "" {
			missing = append(missing, "client_secret")
		}
		if len(missing) > 0 {
			return fmt.Errorf("account %q: missing %s", name, strings.Join(missing, ", "))
		}
	}
	return nil
}
