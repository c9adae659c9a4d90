// Package config loads the server configuration from the environment, with
// an optional YAML file filling in values the environment leaves unset.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	EnvAPIToken    = "CLICKUP_API_TOKEN"
	EnvWorkspaceID = "CLICKUP_WORKSPACE_ID"
	EnvFolderID    = "CLICKUP_FOLDER_ID"
	EnvAPIURL      = "CLICKUP_API_URL"
	EnvConfigFile  = "CLICKUP_MCP_CONFIG"
)

// Config holds everything the server needs to talk to ClickUp.
type Config struct {
	// APIToken is the personal or OAuth bearer token. Forwarded as-is;
	// the server performs no authentication of its own.
	APIToken string `yaml:"api_token"`

	// WorkspaceID scopes every Docs API call.
	WorkspaceID string `yaml:"workspace_id"`

	// FolderID scopes the playbook listing. Empty means workspace-wide.
	FolderID string `yaml:"folder_id"`

	// APIURL overrides the ClickUp API base URL (tests, proxies).
	APIURL string `yaml:"api_url"`
}

// Load reads configuration from the environment, then from the YAML file
// named by CLICKUP_MCP_CONFIG (if set) for any value still missing.
func Load() (Config, error) {
	cfg := Config{
		APIToken:    os.Getenv(EnvAPIToken),
		WorkspaceID: os.Getenv(EnvWorkspaceID),
		FolderID:    os.Getenv(EnvFolderID),
		APIURL:      os.Getenv(EnvAPIURL),
	}

	if path := os.Getenv(EnvConfigFile); path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.merge(fileCfg)
	}

	return cfg, nil
}

// loadFile parses a YAML config file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// merge fills unset fields of c from other. Environment wins.
func (c *Config) merge(other Config) {
	if c.APIToken == "" {
		c.APIToken = other.APIToken
	}
	if c.WorkspaceID == "" {
		c.WorkspaceID = other.WorkspaceID
	}
	if c.FolderID == "" {
		c.FolderID = other.FolderID
	}
	if c.APIURL == "" {
		c.APIURL = other.APIURL
	}
}

// Validate checks that the fields required for serving are present.
func (c Config) Validate() error {
	if c.APIToken == "" {
		return errors.New("missing ClickUp API token (set " + EnvAPIToken + ")")
	}
	if c.WorkspaceID == "" {
		return errors.New("missing ClickUp workspace id (set " + EnvWorkspaceID + ")")
	}
	return nil
}
