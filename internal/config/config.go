package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-signupform/internal/logger"
	"github.com/goliatone/go-signupform/pkg/formapi"
)

// Environment variables read by Load after the YAML file is applied.
const (
	EnvEndpoint  = "SIGNUP_ENDPOINT"
	EnvTimeout   = "SIGNUP_TIMEOUT"
	EnvUserAgent = "SIGNUP_USER_AGENT"
	EnvLogLevel  = "SIGNUP_LOG_LEVEL"
	EnvAddr      = "SIGNUP_SERVER_ADDR"
)

// Config is the runtime configuration shared by the CLI commands.
type Config struct {
	Endpoint  string        `yaml:"endpoint"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	LogLevel  string        `yaml:"log_level"`
	Server    Server        `yaml:"server"`
}

// Server configures the `serve` command.
type Server struct {
	Addr      string `yaml:"addr"`
	RoutePath string `yaml:"route_path"`
}

// Overrides carries explicitly set CLI flags. Zero values are ignored.
type Overrides struct {
	Endpoint string
	Timeout  time.Duration
	LogLevel string
	Addr     string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint:  formapi.DefaultEndpoint,
		Timeout:   formapi.DefaultTimeout,
		UserAgent: "go-signupform",
		LogLevel:  string(logger.LevelInfo),
		Server: Server{
			Addr:      ":8080",
			RoutePath: "/api/form",
		},
	}
}

// Load builds a Config from defaults, the optional YAML file at path, an
// optional dotenv file, the process environment and finally overrides.
func Load(path, envFile string, overrides Overrides) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := Decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load env file: %w", err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	cfg.apply(overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

// Decode merges a YAML document into cfg. Keys absent from the document keep
// their current values; unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		c.Endpoint = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v, ok := lookup(EnvUserAgent); ok && v != "" {
		c.UserAgent = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	return nil
}

func (c *Config) apply(o Overrides) {
	if o.Endpoint != "" {
		c.Endpoint = o.Endpoint
	}
	if o.Timeout > 0 {
		c.Timeout = o.Timeout
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Addr != "" {
		c.Server.Addr = o.Addr
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint must be an absolute http(s) URL, got %q", c.Endpoint)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if !strings.HasPrefix(c.Server.RoutePath, "/") {
		return fmt.Errorf("server.route_path must start with /")
	}
	return nil
}

// ClientOptions translates the configuration into formapi client options.
func (c Config) ClientOptions() []formapi.Option {
	return []formapi.Option{
		formapi.WithEndpoint(c.Endpoint),
		formapi.WithTimeout(c.Timeout),
		formapi.WithUserAgent(c.UserAgent),
	}
}

// Logger returns the logger configuration for the configured level.
func (c Config) Logger() logger.Config {
	return logger.Config{Level: logger.LogLevel(strings.ToLower(c.LogLevel))}
}
