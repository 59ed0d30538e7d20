package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/schedulforge-go/pkg/schedulforge"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Extraction ExtractionConfig `yaml:"extraction"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Env     string `yaml:"env"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ExtractionConfig extends the built-in layout table and label rules.
type ExtractionConfig struct {
	Layouts        map[string]models.Layout `yaml:"layouts"`
	DefaultLayout  *models.Layout           `yaml:"default_layout"`
	ExcludedLabels []string                 `yaml:"excluded_labels"`
	MinLabelLength int                      `yaml:"min_label_length"`
	Raw            bool                     `yaml:"raw"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "schedulforge",
			Version: "dev",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:            8000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxUploadBytes:  10 << 20,
			AllowedOrigins:  []string{"https://manas-mahawar.github.io"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads CONFIG_PATH (default config.yaml) on top of Default after
// loading a .env file if one exists. A missing config file is not an error
// unless a non-empty CONFIG_PATH names it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	configPath, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit || configPath == "" {
		configPath = "config.yaml"
		explicit = false
	}

	config := Default()
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SCHEDULFORGE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SCHEDULFORGE_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("SCHEDULFORGE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SCHEDULFORGE_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// ExtractOptions builds extraction options from the extraction section.
func (c *Config) ExtractOptions() schedulforge.Options {
	opts := schedulforge.DefaultOptions()
	opts.Raw = c.Extraction.Raw

	opts.Layouts = opts.Layouts.With(c.Extraction.Layouts)
	if c.Extraction.DefaultLayout != nil {
		opts.Layouts.Default = *c.Extraction.DefaultLayout
	}

	if c.Extraction.ExcludedLabels != nil {
		opts.Labels.Excluded = c.Extraction.ExcludedLabels
	}
	if c.Extraction.MinLabelLength > 0 {
		opts.Labels.MinLength = c.Extraction.MinLabelLength
	}
	return opts
}
