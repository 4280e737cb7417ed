package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func account(name string, source Source) Account {
	return Account{
		Name:         name,
		BaseURL:      "https://" + name + ".payments.test",
		TokenURL:     "https://" + name + ".payments.test/oauth/token",
		ClientID:     "cid_" + name,
		ClientSecret: "cs_" + name,
		Timeout:      DefaultTimeout,
		Source:       source,
	}
}

func TestMerge_ProjectOverridesUser(t *testing.T) {
	user := New()
	user.Set(account("default", SourceUser))
	user.Set(account("sandbox", SourceUser))

	project := New()
	override := account("default", SourceProject)
	override.ClientID = "cid_project"
	project.Set(override)

	merged := Merge(user, project)
	require.Len(t, merged.Accounts, 2)
	assert.Equal(t, "cid_project", merged.Accounts["default"].ClientID)
	assert.Equal(t, SourceProject, merged.Accounts["default"].Source)
	assert.Equal(t, SourceUser, merged.Accounts["sandbox"].Source)
}

func TestMerge_PreservesFirstAppearanceOrder(t *testing.T) {
	user := New()
	user.Set(account("alpha", SourceUser))
	user.Set(account("beta", SourceUser))

	project := New()
	project.Set(account("beta", SourceProject)) // override keeps position
	project.Set(account("gamma", SourceProject))

	merged := Merge(user, project)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, merged.Order)
}

func TestMerge_NilConfigsIgnored(t *testing.T) {
	project := New()
	project.Set(account("default", SourceProject))

	merged := Merge(nil, project, nil)
	assert.Len(t, merged.Accounts, 1)
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.Set(account("default", SourceUser))
	assert.NoError(t, cfg.Validate())

	t.Run("empty config", func(t *testing.T) {
		assert.Error(t, New().Validate())
	})

	t.Run("missing fields named, secret value absent", func(t *testing.T) {
		bad := New()
		bad.Set(Account{Name: "broken", BaseURL: "https://api.test", ClientSecret: "cs_hidden"})
		err := bad.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token_url")
		assert.Contains(t, err.Error(), "client_id")
		assert.NotContains(t, err.Error(), "cs_hidden")
	})
}
