// Package config assembles server configuration from the environment with
// an optional YAML overlay file. None of it is part of the wire contract;
// the zero configuration reproduces baseline behavior exactly.
package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// Config controls both transports. CallTimeout of zero disables the
// per-call timeout, an empty Token leaves the HTTP endpoints open, and an
// empty DisabledTools keeps every built-in tool registered.
type Config struct {
	// ConfigPath points at an optional YAML file whose values override the
	// environment. ENV: TOOLS_MCP_CONFIG
	ConfigPath string `env:"TOOLS_MCP_CONFIG"`
	// CallTimeout bounds a single tool invocation. ENV: TOOLS_MCP_CALL_TIMEOUT
	CallTimeout time.Duration `env:"TOOLS_MCP_CALL_TIMEOUT"`
	// DisabledTools are removed from the registry at startup, semicolon
	// separated. ENV: TOOLS_MCP_DISABLED_TOOLS
	DisabledTools []string `env:"TOOLS_MCP_DISABLED_TOOLS"`
	// Port is only used by the HTTP transport. ENV: PORT
	Port string `env:"PORT,default=3000"`
	// Token guards the HTTP /mcp routes when set. ENV: MCP_TOKEN
	Token string `env:"MCP_TOKEN"`

	Debug bool `yaml:"-"`
}

type fileConfig struct {
	CallTimeout   string   `yaml:"call_timeout"`
	DisabledTools []string `yaml:"disabled_tools"`
	Port          string   `yaml:"port"`
	Token         string   `yaml:"token"`
}

// Load builds the Config from the environment, then applies the YAML file
// named by TOOLS_MCP_CONFIG, if any. File values win over environment
// values so a deployment file can pin behavior regardless of shell state.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return cfg, fmt.Errorf("failed to decode environment: %w", err)
	}
	cfg.Debug = misc.Truthy(os.Getenv("DEBUG"))

	if cfg.ConfigPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(cfg.ConfigPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", cfg.ConfigPath, err)
	}

	if fc.CallTimeout != "" {
		d, err := time.ParseDuration(fc.CallTimeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid call_timeout in %s: %w", cfg.ConfigPath, err)
		}
		cfg.CallTimeout = d
	}
	if len(fc.DisabledTools) > 0 {
		cfg.DisabledTools = fc.DisabledTools
	}
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.Token != "" {
		cfg.Token = fc.Token
	}
	return cfg, nil
}

// ToolDisabled reports whether name is configured off.
func (c Config) ToolDisabled(name string) bool {
	return slices.Contains(c.DisabledTools, name)
}
