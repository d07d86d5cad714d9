package config

import (
	"encoding/json"
	"os"
)

// Config represents the application configuration
type Config struct {
	Variant     string   `json:"variant"`
	RedirectURI string   `json:"redirect_uri,omitempty"`
	Query       string   `json:"query,omitempty"`
	RPCURLs     []RPCUrl `json:"rpc_urls"`
	Logger      bool     `json:"logger"`
}

// RPCUrl represents an EVM RPC endpoint used for balance lookups
type RPCUrl struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Variant: "default",
		RPCURLs: []RPCUrl{
			{
				Name:   "Public Mainnet",
				URL:    "https://ethereum-rpc.publicnode.com",
				Active: true,
			},
		},
		Logger: false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	// Try to read existing config
	data, err := os.ReadFile(path)
	if err != nil {
		// File doesn't exist, create default
		cfg := DefaultConfig()
		Save(path, cfg)
		return cfg
	}

	// Parse existing config
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Invalid config, return default
		return DefaultConfig()
	}

	return cfg
}

// ActiveRPC returns the URL of the active RPC endpoint, or "" if none
func (c Config) ActiveRPC() string {
	for _, r := range c.RPCURLs {
		if r.Active {
			return r.URL
		}
	}
	return ""
}
