// Package config provides connection configuration for Borealis
// sessions.
//
// Configuration is loaded from a YAML file with ${VAR} environment
// substitution, or built from a flat string map. Secrets are masked by
// Redacted before any value reaches a log line.
package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/borealis-data/borealis/pkg/errors"
)

// Config holds the parameters for one remote session.
type Config struct {
	Account   string `yaml:"account" json:"account"`
	User      string `yaml:"user" json:"user"`
	Password  string `yaml:"password" json:"password"`
	Database  string `yaml:"database" json:"database"`
	Schema    string `yaml:"schema" json:"schema"`
	Warehouse string `yaml:"warehouse" json:"warehouse"`
	Role      string `yaml:"role" json:"role"`

	// KeyMapper names the key-mapping convention for the session
	// (identity, upper, camel-upper). An empty value lets the session
	// pick its documented default.
	KeyMapper string `yaml:"key_mapper" json:"key_mapper"`

	Timeouts TimeoutConfig `yaml:"timeouts" json:"timeouts"`
	Log      LogConfig     `yaml:"log" json:"log"`
}

// TimeoutConfig bounds connection establishment and individual queries.
type TimeoutConfig struct {
	Login   time.Duration `yaml:"login" json:"login"`
	Request time.Duration `yaml:"request" json:"request"`
}

// UnmarshalYAML parses durations from their string form ("30s", "1m"),
// which the yaml decoder does not do for time.Duration on its own.
// Fields absent from the document keep their current values.
func (t *TimeoutConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Login   string `yaml:"login"`
		Request string `yaml:"request"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.Login != "" {
		d, err := time.ParseDuration(raw.Login)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "parsing login timeout")
		}
		t.Login = d
	}
	if raw.Request != "" {
		d, err := time.ParseDuration(raw.Request)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "parsing request timeout")
		}
		t.Request = d
	}
	return nil
}

// LogConfig selects logging verbosity and encoding.
type LogConfig struct {
	Level       string `yaml:"level" json:"level"`
	Development bool   `yaml:"development" json:"development"`
	Encoding    string `yaml:"encoding" json:"encoding"`
}

// New returns a Config with production defaults.
func New() *Config {
	return &Config{
		Timeouts: TimeoutConfig{
			Login:   60 * time.Second,
			Request: 30 * time.Second,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Load reads a configuration from a YAML file, substituting ${VAR}
// references with environment variable values before parsing.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: path is caller-controlled
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "reading config file")
	}

	cfg := New()
	content := substituteEnvVars(string(data))
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "parsing config YAML")
	}

	return cfg, nil
}

// FromMap builds a configuration from a flat parameter map, as handed
// over by callers that manage their own configuration source.
func FromMap(params map[string]string) (*Config, error) {
	cfg := New()
	for key, value := range params {
		switch key {
		case "account":
			cfg.Account = value
		case "user":
			cfg.User = value
		case "password":
			cfg.Password = value
		case "database":
			cfg.Database = value
		case "schema":
			cfg.Schema = value
		case "warehouse":
			cfg.Warehouse = value
		case "role":
			cfg.Role = value
		case "key_mapper":
			cfg.KeyMapper = value
		default:
			return nil, errors.Newf(errors.ErrorTypeConfig, "unknown parameter %q", key)
		}
	}
	return cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Account == "" {
		return errors.New(errors.ErrorTypeConfig, "account is required")
	}
	if c.User == "" {
		return errors.New(errors.ErrorTypeConfig, "user is required")
	}
	if c.Database == "" {
		return errors.New(errors.ErrorTypeConfig, "database is required")
	}
	if c.Schema == "" {
		return errors.New(errors.ErrorTypeConfig, "schema is required")
	}
	return nil
}

// Redacted returns a copy safe for logging, with secrets masked.
func (c *Config) Redacted() *Config {
	out := *c
	if out.Password != "" {
		out.Password = "****"
	}
	return &out
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
