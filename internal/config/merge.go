package config

// Merge combines configs in precedence order: later configs override
// earlier ones for the same account name. First-appearance order of
// account names is preserved across the merge.
func Merge(configs ...*Config) *Config {
	merged := New()
	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		for _, name := range cfg.Order {
			merged.Set(cfg.Accounts[name])
		}
	}
	return merged
}

// Load loads and merges account configs: user file, then project file,
// then environment variables, in increasing precedence.
func Load(projectDir string) (*Config, error) {
	user, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	project, err := LoadProjectConfig(projectDir)
	if err != nil {
		return nil, err
	}

	env, err := EnvConfig()
	if err != nil {
		return nil, err
	}

	return Merge(user, project, env), nil
}
