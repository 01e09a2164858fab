package internal

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"http_server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Directory  DirectoryConfig  `mapstructure:"directory"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

// StorageConfig points at the sqlite file backing the bookmark store.
// The service owns no other durable state.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// DirectoryConfig describes the read-only remote user source.
type DirectoryConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	FetchLimit   int           `mapstructure:"fetch_limit"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

// AuthConfig holds the demo credential gate. This is a hardcoded-check
// login with no security guarantee beyond keeping the dashboard behind
// a sign-in screen.
type AuthConfig struct {
	DemoEmail            string        `mapstructure:"demo_email"`
	DemoPasswordHash     string        `mapstructure:"demo_password_hash"`
	SessionSecret        string        `mapstructure:"session_secret"`
	AccessTokenDuration  time.Duration `mapstructure:"access_token_duration"`
	RefreshTokenDuration time.Duration `mapstructure:"refresh_token_duration"`
}

// SimulationConfig controls the fake-write behavior: create-employee and
// feedback submissions mutate in-memory state only, after an artificial
// delay that mimics a slow backend.
type SimulationConfig struct {
	WriteDelay time.Duration `mapstructure:"write_delay"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Directory.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("directory config: %v", err))
	}

	if err := c.Auth.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("auth config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.AllowedOrigins != "" {
		origins := strings.Split(c.AllowedOrigins, ",")
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				continue
			}
			if _, err := url.Parse(origin); err != nil {
				return fmt.Errorf("invalid allowed origin %s: %w", origin, err)
			}
		}
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *DirectoryConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if c.FetchLimit < 0 {
		return errors.New("fetch_limit cannot be negative")
	}
	return nil
}

func (c *AuthConfig) Validate() error {
	if c.DemoEmail == "" {
		return errors.New("demo_email is required")
	}
	if c.DemoPasswordHash == "" {
		return errors.New("demo_password_hash is required")
	}
	if len(c.SessionSecret) < 32 {
		return errors.New("session secret must be at least 32 characters")
	}
	return nil
}

// ApplyDefaults fills in the values the original dashboard shipped with.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "hr-dashboard.db"
	}
	if c.Directory.FetchLimit == 0 {
		c.Directory.FetchLimit = 20
	}
	if c.Directory.FetchTimeout == 0 {
		c.Directory.FetchTimeout = 10 * time.Second
	}
	if c.Auth.AccessTokenDuration == 0 {
		c.Auth.AccessTokenDuration = 15 * time.Minute
	}
	if c.Auth.RefreshTokenDuration == 0 {
		c.Auth.RefreshTokenDuration = 7 * 24 * time.Hour
	}
	if c.Simulation.WriteDelay == 0 {
		c.Simulation.WriteDelay = 1500 * time.Millisecond
	}
}
