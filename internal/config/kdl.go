package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	kdl "github.com/sblinch/kdl-go"
)

const (
	ProjectConfigFile = ".payflow-mcp.kdl"
	UserConfigDir     = "payflow-mcp"
	UserConfigFile    = "config.kdl"
)

// Environment variables for the implicit "default" account.
const (
	EnvBaseURL      = "PAYFLOW_BASE_URL"
	EnvTokenURL     = "PAYFLOW_TOKEN_URL"
	EnvClientID     = "PAYFLOW_CLIENT_ID"
	EnvClientSecret = "PAYFLOW_CLIENT_SECRET"
	EnvTimeout      = "PAYFLOW_TIMEOUT"
)

// kdlConfig is the raw KDL structure for unmarshaling.
type kdlConfig struct {
	Accounts []kdlAccount `kdl:"account,multiple"`
}

// kdlAccount represents an account node in KDL:
//
//	account "default" {
//	    base_url "https://api.example.com"
//	    token_url "https://auth.example.com/oauth/token"
//	    client_id "cid_..."
//	    client_secret_env "PAYFLOW_CLIENT_SECRET"
//	    timeout "30s"
//	}
type kdlAccount struct {
	Name            string `kdl:",arg"`
	BaseURL         string `kdl:"base_url"`
	TokenURL        string `kdl:"token_url"`
	ClientID        string `kdl:"client_id"`
	ClientSecret    string `kdl:"client_secret"`
	ClientSecretEnv string `kdl:"client_secret_env"`
	Timeout         string `kdl:"timeout"`
}

// UserConfigPath returns the path to the user config file.
func UserConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, UserConfigDir, UserConfigFile)
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFile)
}

// LoadUserConfig loads configuration from the user config file.
func LoadUserConfig() (*Config, error) {
	path := UserConfigPath()
	if path == "" {
		return New(), nil
	}
	return loadConfigFile(path, SourceUser)
}

// LoadProjectConfig loads configuration from the project config file.
func LoadProjectConfig(dir string) (*Config, error) {
	return loadConfigFile(ProjectConfigPath(dir), SourceProject)
}

func loadConfigFile(path string, source Source) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}
	return ParseKDLConfig(string(data), source)
}

// ParseKDLConfig parses KDL configuration data. Secrets referenced via
// client_secret_env are resolved from the environment at load time so the
// secret value never has to live in the file.
func ParseKDLConfig(data string, source Source) (*Config, error) {
	var kdlCfg kdlConfig
	if err := kdl.Unmarshal([]byte(data), &kdlCfg); err != nil {
		return nil, err
	}

	cfg := New()
	for _, a := range kdlCfg.Accounts {
		secret := a.ClientSecret
		if a.ClientSecretEnv != "" {
			secret = os.Getenv(a.ClientSecretEnv)
		}

		timeout := DefaultTimeout
		if a.Timeout != "" {
			d, err := time.ParseDuration(a.Timeout)
			if err != nil {
				return nil, fmt.Errorf("account %q: invalid timeout %q: %w", a.Name, a.Timeout, err)
			}
			timeout = d
		}

		cfg.Set(Account{
			Name:         a.Name,
			BaseURL:      a.BaseURL,
			TokenURL:     a.TokenURL,
			ClientID:     a.ClientID,
			ClientSecret: secret,
			Timeout:      timeout,
			Source:       source,
		})
	}
	return cfg, nil
}

// EnvConfig builds the implicit "default" account from environment
// variables, if PAYFLOW_BASE_URL is set.
func EnvConfig() (*Config, error) {
	cfg := New()
	baseURL := os.Getenv(EnvBaseURL)
	if baseURL == "" {
		return cfg, nil
	}

	timeout := DefaultTimeout
	if raw := os.Getenv(EnvTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvTimeout, raw, err)
		}
		timeout = d
	}

	tokenURL := os.Getenv(EnvTokenURL)
	if tokenURL == "" {
		tokenURL = baseURL + "/oauth/token"
	}

	cfg.Set(Account{
		Name:         "default",
		BaseURL:      baseURL,
		TokenURL:     tokenURL,
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		Timeout:      timeout,
		Source:       SourceEnv,
	})
	return cfg, nil
}
