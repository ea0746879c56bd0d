// Package config loads settings for the translator Lambda and the imgtext CLI.
//
// Settings come from an optional YAML file and are overridden by environment
// variables:
//
//	IMGTEXT_API_BASE            base URL of the translation service
//	IMGTEXT_ENDPOINT            "http" or "lambda"
//	IMGTEXT_MODEL               default model ("nmt" or "llm")
//	IMGTEXT_MAX_SEGMENT_LENGTH  segment size in characters
//	IMGTEXT_REQUEST_TIMEOUT     per-segment timeout (Go duration)
//	IMGTEXT_FUNCTION_PREFIX     translator Lambda name prefix
//	IMGTEXT_HISTORY_DB          local history database path
//	ENVIRONMENT                 deployment environment (dev, prod, ...)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pricofy/image-translator/internal/segmenter"
	"github.com/pricofy/image-translator/internal/translator"
)

// MinRequestTimeout rejects timeouts that were almost certainly written
// without a unit.
const MinRequestTimeout = time.Millisecond

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "imgtext.yml"

// Endpoint kinds.
const (
	EndpointHTTP   = "http"
	EndpointLambda = "lambda"
)

// Config is the complete structure of imgtext.yml.
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url"`
		// Endpoint selects how segments are translated: "http" or "lambda".
		Endpoint string `yaml:"endpoint"`
	} `yaml:"api"`

	Translation struct {
		Model            string `yaml:"model"`
		SourceLanguage   string `yaml:"source_language"`
		MaxSegmentLength int    `yaml:"max_segment_length"`
		// RequestTimeout needs a unit ("30s"); a bare number is nanoseconds.
		RequestTimeout time.Duration `yaml:"request_timeout"`
	} `yaml:"translation"`

	Lambda struct {
		FunctionPrefix string `yaml:"function_prefix"`
		Environment    string `yaml:"environment"`
	} `yaml:"lambda"`

	Image struct {
		MaxDimension int `yaml:"max_dimension"`
	} `yaml:"image"`

	History struct {
		Path string `yaml:"path"`
	} `yaml:"history"`
}

// Default returns the built-in settings.
func Default() *Config {
	var cfg Config
	cfg.API.BaseURL = "http://localhost:5005"
	cfg.API.Endpoint = EndpointHTTP
	cfg.Translation.Model = string(translator.ModelStatistical)
	cfg.Translation.SourceLanguage = translator.AutoLanguage
	cfg.Translation.MaxSegmentLength = segmenter.DefaultMaxLength
	cfg.Translation.RequestTimeout = 60 * time.Second
	cfg.Lambda.FunctionPrefix = "image-translator"
	cfg.Lambda.Environment = "dev"
	cfg.Image.MaxDimension = 2048
	return &cfg
}

// Load reads path (or DefaultFileName when path is empty) over the defaults
// and applies environment overrides. A missing default file is not an error;
// a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.History.Path == "" {
		cfg.History.Path = defaultHistoryPath()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("IMGTEXT_API_BASE"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("IMGTEXT_ENDPOINT"); v != "" {
		c.API.Endpoint = v
	}
	if v := os.Getenv("IMGTEXT_MODEL"); v != "" {
		c.Translation.Model = v
	}
	if v := os.Getenv("IMGTEXT_MAX_SEGMENT_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("IMGTEXT_MAX_SEGMENT_LENGTH: %w", err)
		}
		c.Translation.MaxSegmentLength = n
	}
	if v := os.Getenv("IMGTEXT_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("IMGTEXT_REQUEST_TIMEOUT: %w", err)
		}
		c.Translation.RequestTimeout = d
	}
	if v := os.Getenv("IMGTEXT_FUNCTION_PREFIX"); v != "" {
		c.Lambda.FunctionPrefix = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Lambda.Environment = v
	}
	if v := os.Getenv("IMGTEXT_HISTORY_DB"); v != "" {
		c.History.Path = v
	}
	return nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Endpoint != EndpointHTTP && c.API.Endpoint != EndpointLambda {
		return fmt.Errorf("api.endpoint must be %q or %q, got %q", EndpointHTTP, EndpointLambda, c.API.Endpoint)
	}
	if _, err := translator.ParseModel(c.Translation.Model); err != nil {
		return fmt.Errorf("translation.model: %w", err)
	}
	if c.Translation.MaxSegmentLength <= 0 {
		return fmt.Errorf("translation.max_segment_length must be positive")
	}
	if c.Translation.RequestTimeout <= 0 {
		return fmt.Errorf("translation.request_timeout must be positive")
	}
	if c.Translation.RequestTimeout < MinRequestTimeout {
		return fmt.Errorf("translation.request_timeout %v is below %v (write a unit, e.g. \"30s\")",
			c.Translation.RequestTimeout, MinRequestTimeout)
	}
	if c.Image.MaxDimension < 0 {
		return fmt.Errorf("image.max_dimension must not be negative")
	}
	return nil
}

// Model returns the parsed default model.
func (c *Config) Model() translator.Model {
	m, err := translator.ParseModel(c.Translation.Model)
	if err != nil {
		return translator.ModelStatistical
	}
	return m
}

// TranslatorOptions returns the chunked translator settings.
func (c *Config) TranslatorOptions() translator.Options {
	return translator.Options{
		MaxSegmentLength: c.Translation.MaxSegmentLength,
		RequestTimeout:   c.Translation.RequestTimeout,
	}
}

// DataDir returns the per-user data directory, honouring $XDG_DATA_HOME.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "image-translator"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "image-translator"), nil
}

func defaultHistoryPath() string {
	dir, err := DataDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(dir, "history.db")
}
