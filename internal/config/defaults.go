package config

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Google: GoogleConfig{},
		Source: SourceConfig{},
		Output: OutputConfig{
			Pretty:         false,
			ViewportHeight: 0,
		},
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 30,
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Google = mergeGoogleConfig(loaded.Google, defaults.Google)
	result.Source = mergeSourceConfig(loaded.Source, defaults.Source)
	result.Output = mergeOutputConfig(loaded.Output, defaults.Output)
	result.Server = mergeServerConfig(loaded.Server, defaults.Server)

	return result
}

func mergeGoogleConfig(loaded, defaults GoogleConfig) GoogleConfig {
	result := GoogleConfig{}

	if loaded.APIKey != "" {
		result.APIKey = loaded.APIKey
	} else {
		result.APIKey = defaults.APIKey
	}

	if loaded.CredentialsFile != "" {
		result.CredentialsFile = loaded.CredentialsFile
	} else {
		result.CredentialsFile = defaults.CredentialsFile
	}

	return result
}

func mergeSourceConfig(loaded, defaults SourceConfig) SourceConfig {
	result := SourceConfig{}

	if loaded.Reference != "" {
		result.Reference = loaded.Reference
	} else {
		result.Reference = defaults.Reference
	}

	if loaded.SheetName != "" {
		result.SheetName = loaded.SheetName
	} else {
		result.SheetName = defaults.SheetName
	}

	return result
}

func mergeOutputConfig(loaded, defaults OutputConfig) OutputConfig {
	result := OutputConfig{}

	// Pretty: booleans cannot distinguish unset from false, so the loaded
	// value wins as-is.
	result.Pretty = loaded.Pretty

	if loaded.ViewportHeight != 0 {
		result.ViewportHeight = loaded.ViewportHeight
	} else {
		result.ViewportHeight = defaults.ViewportHeight
	}

	return result
}

func mergeServerConfig(loaded, defaults ServerConfig) ServerConfig {
	result := ServerConfig{}

	if loaded.Addr != "" {
		result.Addr = loaded.Addr
	} else {
		result.Addr = defaults.Addr
	}

	if loaded.ReadTimeoutSeconds != 0 {
		result.ReadTimeoutSeconds = loaded.ReadTimeoutSeconds
	} else {
		result.ReadTimeoutSeconds = defaults.ReadTimeoutSeconds
	}

	if loaded.WriteTimeoutSeconds != 0 {
		result.WriteTimeoutSeconds = loaded.WriteTimeoutSeconds
	} else {
		result.WriteTimeoutSeconds = defaults.WriteTimeoutSeconds
	}

	return result
}
