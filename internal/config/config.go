// Package config loads operator settings from an optional TOML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Enumerator selection values.
const (
	EnumeratorStatic  = "static"
	EnumeratorCompare = "compare"
	EnumeratorGit     = "git"
)

// Config holds all operator-tunable settings. Task inputs never live here;
// they arrive with each task message.
type Config struct {
	// GitHubBaseURL overrides the API endpoint, e.g. for GitHub Enterprise
	// or a test server. Empty means api.github.com.
	GitHubBaseURL string `toml:"github_base_url"`

	// HTTPTimeoutSeconds bounds each API call. Zero disables the client
	// timeout, matching the reference behavior of blocking indefinitely.
	HTTPTimeoutSeconds int `toml:"http_timeout_seconds"`

	LogLevel   string `toml:"log_level"`
	ListenAddr string `toml:"listen_addr"`

	// Enumerator picks the commit source: static, compare, or git.
	Enumerator string `toml:"enumerator"`
	// RepoPath is the local clone the git enumerator reads.
	RepoPath string `toml:"repo_path"`

	GitHubApp AppConfig `toml:"github_app"`
}

// AppConfig identifies a GitHub App installation for minting access tokens
// when no static token is supplied.
type AppConfig struct {
	AppID          int64  `toml:"app_id"`
	InstallationID int64  `toml:"installation_id"`
	PrivateKeyPath string `toml:"private_key_path"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:   "info",
		ListenAddr: ":8080",
		Enumerator: EnumeratorStatic,
	}
}

// Load builds the effective configuration: defaults, then the TOML file at
// path (skipped when path is empty or the file does not exist), then
// environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file; fall through to env.
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	switch cfg.Enumerator {
	case EnumeratorStatic, EnumeratorCompare, EnumeratorGit:
	default:
		return Config{}, fmt.Errorf("unknown enumerator %q (want static, compare, or git)", cfg.Enumerator)
	}
	if cfg.Enumerator == EnumeratorGit && cfg.RepoPath == "" {
		return Config{}, fmt.Errorf("the git enumerator requires a repository path")
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&c.GitHubBaseURL, "CHECK_TICKETS_GITHUB_BASE_URL")
	setString(&c.LogLevel, "CHECK_TICKETS_LOG_LEVEL")
	setString(&c.ListenAddr, "CHECK_TICKETS_LISTEN_ADDR")
	setString(&c.Enumerator, "CHECK_TICKETS_ENUMERATOR")
	setString(&c.RepoPath, "CHECK_TICKETS_REPO_PATH")
	setString(&c.GitHubApp.PrivateKeyPath, "GITHUB_APP_PRIVATE_KEY")

	if v := os.Getenv("CHECK_TICKETS_HTTP_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CHECK_TICKETS_HTTP_TIMEOUT_SECONDS: %w", err)
		}
		c.HTTPTimeoutSeconds = n
	}
	if v := os.Getenv("GITHUB_APP_ID"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid GITHUB_APP_ID: %w", err)
		}
		c.GitHubApp.AppID = n
	}
	if v := os.Getenv("GITHUB_INSTALLATION_ID"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid GITHUB_INSTALLATION_ID: %w", err)
		}
		c.GitHubApp.InstallationID = n
	}

	return nil
}

// HTTPTimeout converts the configured seconds to a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
