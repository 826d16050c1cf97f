package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/markup/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "markup.yaml"

	// DefaultAddr is the default server address.
	DefaultAddr = ":8080"

	// DefaultDocs is the default description directory.
	DefaultDocs = "docs"

	// DefaultCacheTTL is how long rendered documents stay cached.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultIndent is one indentation level of rendered output.
	DefaultIndent = "    "
)

// fileNames are probed in order by Load.
var fileNames = []string{ConfigFileName, "markup.yml", "markup.json"}

// Config represents the complete markup.yaml configuration.
type Config struct {
	// Render contains serializer settings.
	Render RenderConfig `yaml:"render"`

	// Server contains HTTP server settings.
	Server ServerConfig `yaml:"server"`

	// Publish contains bucket upload settings.
	Publish PublishConfig `yaml:"publish"`

	// Log contains logger settings.
	Log LogConfig `yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains serializer settings.
type RenderConfig struct {
	// Indent is the string written per nesting level.
	Indent string `yaml:"indent"`

	// Compact disables line breaks and indentation.
	Compact bool `yaml:"compact"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`

	// Docs is the directory holding document descriptions.
	Docs string `yaml:"docs"`

	// CacheTTL is the render cache lifetime. A negative value disables
	// caching.
	CacheTTL time.Duration `yaml:"cacheTTL"`

	// RedisURL selects the Redis cache. Empty uses an in-process cache.
	RedisURL string `yaml:"redisURL"`
}

// PublishConfig contains bucket upload settings.
type PublishConfig struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`

	// Anonymous skips credential resolution and sends unsigned requests.
	Anonymous bool `yaml:"anonymous"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the configuration file from dir. It looks for markup.yaml,
// markup.yml and markup.json in that order.
func Load(dir string) (*Config, error) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E031").
		WithDetail("No markup.yaml found in " + dir).
		WithSuggestion("Create markup.yaml or pass --config")
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E031").WithDetail("Cannot read " + path).Wrap(err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E031").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// LoadOrDefault loads path when set, otherwise markup.yaml from the working
// directory when present, otherwise the defaults. Environment overrides are
// applied and the result is validated.
func LoadOrDefault(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch {
	case path != "":
		cfg, err = LoadFile(path)
	case fileExists("."):
		cfg, err = Load(".")
	default:
		cfg = New()
	}
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fileExists(dir string) bool {
	for _, name := range fileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// Save writes the configuration as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("E031").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E031").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.Docs == "" {
		c.Server.Docs = DefaultDocs
	}
	if c.Server.CacheTTL == 0 {
		c.Server.CacheTTL = DefaultCacheTTL
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Server.Addr, "MARKUP_ADDR")
	set(&c.Server.Docs, "MARKUP_DOCS")
	set(&c.Server.RedisURL, "MARKUP_REDIS_URL")
	set(&c.Publish.Bucket, "MARKUP_BUCKET")
	set(&c.Publish.Region, "MARKUP_REGION")
	set(&c.Log.Level, "MARKUP_LOG_LEVEL")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E030").
			WithDetailf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("E030").
			WithDetailf("log.format %q is not text or json", c.Log.Format)
	}
	if strings.Trim(c.Render.Indent, " \t") != "" {
		return errors.New("E030").
			WithDetail("render.indent may only contain spaces and tabs")
	}
	return nil
}
