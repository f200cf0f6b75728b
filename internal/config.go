package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries everything the CLI injects into the core at startup. The
// admin allow-list lives here rather than in a process-wide constant so tests
// and deployments can swap it.
type Config struct {
	DataDir    string   `yaml:"data_dir"`
	ResourceDB string   `yaml:"resource_db,omitempty"`
	ChatDB     string   `yaml:"chat_db,omitempty"`
	Admins     []string `yaml:"admins"`
	GateRate   float64  `yaml:"gate_success_rate"`
	DefaultFee float64  `yaml:"default_fee"`
}

// DefaultDataDir returns ~/.campus-share
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".campus-share"), nil
}

// LoadConfig reads config.yaml from dataDir when present and applies
// CAMPUS_SHARE_* environment overrides. A missing config file is not an
// error; the defaults stand.
func LoadConfig(dataDir string) (*Config, error) {
	cfg := &Config{
		DataDir:    dataDir,
		Admins:     []string{},
		GateRate:   0.9,
		DefaultFee: 50,
	}

	path := filepath.Join(dataDir, "config.yaml")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if cfg.DataDir == "" {
			cfg.DataDir = dataDir
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("CAMPUS_SHARE_ADMINS")); v != "" {
		admins := make([]string, 0)
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				admins = append(admins, a)
			}
		}
		cfg.Admins = admins
	}
	if v := strings.TrimSpace(os.Getenv("CAMPUS_SHARE_GATE_RATE")); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.GateRate = rate
		} else {
			LogWarn("ignoring invalid CAMPUS_SHARE_GATE_RATE %q", v)
		}
	}
	if v := strings.TrimSpace(os.Getenv("CAMPUS_SHARE_FEE")); v != "" {
		if fee, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.DefaultFee = fee
		} else {
			LogWarn("ignoring invalid CAMPUS_SHARE_FEE %q", v)
		}
	}
}

// ResourceDBPath returns the resource store file path
func (c *Config) ResourceDBPath() string {
	if c.ResourceDB != "" {
		return c.ResourceDB
	}
	return filepath.Join(c.DataDir, "resources.db")
}

// ChatDBPath returns the conversation store file path
func (c *Config) ChatDBPath() string {
	if c.ChatDB != "" {
		return c.ChatDB
	}
	return filepath.Join(c.DataDir, "chats.db")
}

// IsAdmin reports whether email is on the allow-list, case-insensitively
func (c *Config) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	low := strings.ToLower(email)
	for _, a := range c.Admins {
		if strings.ToLower(a) == low {
			return true
		}
	}
	return false
}
