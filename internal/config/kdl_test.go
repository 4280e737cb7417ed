package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKDLConfig_SingleAccount(t *testing.T) {
	data := `
account "default" {
    base_url "https://api.payments.test"
    token_url "https://auth.payments.test/oauth/token"
    client_id "cid_123"
    client_secret "cs_456"
    timeout "45s"
}
`
	cfg, err := ParseKDLConfig(data, SourceProject)
	require.NoError(t, err)
	require.Len(t, cfg.Accounts, 1)

	a := cfg.Accounts["default"]
	assert.Equal(t, "https://api.payments.test", a.BaseURL)
	assert.Equal(t, "https://auth.payments.test/oauth/token", a.TokenURL)
	assert.Equal(t, "cid_123", a.ClientID)
	assert.Equal(t, "cs_456", a.ClientSecret)
	assert.Equal(t, 45*time.Second, a.Timeout)
	assert.Equal(t, SourceProject, a.Source)
}

func TestParseKDLConfig_MultipleAccountsKeepOrder(t *testing.T) {
	data := `
account "sandbox" {
    base_url "https://sandbox.payments.test"
    token_url "https://sandbox.payments.test/oauth/token"
    client_id "cid_sb"
    client_secret "cs_sb"
}
account "production" {
    base_url "https://api.payments.test"
    token_url "https://api.payments.test/oauth/token"
    client_id "cid_pr"
    client_secret "cs_pr"
}
`
	cfg, err := ParseKDLConfig(data, SourceUser)
	require.NoError(t, err)
	assert.Equal(t, []string{"sandbox", "production"}, cfg.Order)

	def, ok := cfg.Default()
	require.True(t, ok)
	assert.Equal(t, "sandbox", def.Name)
}

func TestParseKDLConfig_SecretFromEnv(t *testing.T) {
	t.Setenv("TEST_PAYFLOW_SECRET", "cs_from_env")

	data := `
account "default" {
    base_url "https://api.payments.test"
    token_url "https://api.payments.test/oauth/token"
    client_id "cid_123"
    client_secret_env "TEST_PAYFLOW_SECRET"
}
`
	cfg, err := ParseKDLConfig(data, SourceUser)
	require.NoError(t, err)
	assert.Equal(t, "cs_from_env", cfg.Accounts["default"].ClientSecret)
}

func TestParseKDLConfig_DefaultTimeout(t *testing.T) {
	data := `
account "default" {
    base_url "https://api.payments.test"
    token_url "https://api.payments.test/oauth/token"
    client_id "cid"
    client_secret "cs"
}
`
	cfg, err := ParseKDLConfig(data, SourceUser)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, cfg.Accounts["default"].Timeout)
}

func TestParseKDLConfig_InvalidTimeout(t *testing.T) {
	data := `
account "default" {
    base_url "https://api.payments.test"
    timeout "not-a-duration"
}
`
	_, err := ParseKDLConfig(data, SourceUser)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}

func TestEnvConfig(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://api.payments.test")
	t.Setenv(EnvClientID, "cid_env")
	t.Setenv(EnvClientSecret, "cs_env")
	t.Setenv(EnvTimeout, "10s")

	cfg, err := EnvConfig()
	require.NoError(t, err)
	require.Len(t, cfg.Accounts, 1)

	a := cfg.Accounts["default"]
	assert.Equal(t, "https://api.payments.test", a.BaseURL)
	assert.Equal(t, "https://api.payments.test/oauth/token", a.TokenURL, "token URL derives from base URL when unset")
	assert.Equal(t, "cid_env", a.ClientID)
	assert.Equal(t, "cs_env", a.ClientSecret)
	assert.Equal(t, 10*time.Second, a.Timeout)
	assert.Equal(t, SourceEnv, a.Source)
}

func TestEnvConfig_AbsentWithoutBaseURL(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	cfg, err := EnvConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.Accounts)
}
