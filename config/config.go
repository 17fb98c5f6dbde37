// Package config loads Manager settings from a YAML file and BOXSYNC_ environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/c2fo/boxsync/box"
	"github.com/c2fo/boxsync/options"
	"github.com/c2fo/boxsync/utils"
)

// EnvPrefix prefixes every environment override, e.g. BOXSYNC_BOX_AUTH_TOKEN.
const EnvPrefix = "BOXSYNC"

// Config holds all library configuration
type Config struct {
	Box    BoxConfig    `mapstructure:"box"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// BoxConfig holds Manager configuration
type BoxConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	AuthToken      string        `mapstructure:"auth_token"`
	UploadBaseURL  string        `mapstructure:"upload_base_url"`
	RESTBaseURL    string        `mapstructure:"rest_base_url"`
	Proxy          string        `mapstructure:"proxy"`
	Timeout        time.Duration `mapstructure:"timeout"`
	ResponseLimit  int64         `mapstructure:"response_limit"`
	CollisionCheck bool          `mapstructure:"collision_check"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from configPath and environment variables. An empty configPath reads
// only defaults and the environment. A leading ~ in configPath is expanded.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		expanded, err := utils.ExpandPath(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to expand config path: %w", err)
		}
		v.SetConfigFile(expanded)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key, which also makes it visible to AutomaticEnv.
func setDefaults(v *viper.Viper) {
	v.SetDefault("box.api_key", "")
	v.SetDefault("box.auth_token", "")
	v.SetDefault("box.upload_base_url", box.DefaultUploadBaseURL)
	v.SetDefault("box.rest_base_url", box.DefaultRESTBaseURL)
	v.SetDefault("box.proxy", "")
	v.SetDefault("box.timeout", 5*time.Minute)
	v.SetDefault("box.response_limit", 0)
	v.SetDefault("box.collision_check", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stderr")
	v.SetDefault("logger.format", "json")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Box.APIKey == "" {
		return errors.New("box.api_key is required")
	}
	if c.Box.AuthToken == "" {
		return errors.New("box.auth_token is required")
	}
	if c.Box.UploadBaseURL == "" {
		return errors.New("box.upload_base_url is required")
	}
	if c.Box.RESTBaseURL == "" {
		return errors.New("box.rest_base_url is required")
	}
	if c.Box.Timeout < 0 {
		return errors.New("box.timeout must not be negative")
	}
	if _, err := c.proxyURL(); err != nil {
		return err
	}

	if _, err := zap.ParseAtomicLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("logger.level: %w", err)
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logger.format must be json or console, got %q", c.Logger.Format)
	}

	return nil
}

func (c *Config) proxyURL() (*url.URL, error) {
	if c.Box.Proxy == "" {
		return nil, nil
	}
	u, err := url.Parse(c.Box.Proxy)
	if err != nil {
		return nil, fmt.Errorf("box.proxy: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "socks5", "socks5h":
		return u, nil
	default:
		return nil, fmt.Errorf("box.proxy: unsupported scheme %q", u.Scheme)
	}
}

// ManagerOptions returns the options that configure a box.Manager from c.
func (c *Config) ManagerOptions() ([]options.NewClientOption[box.Manager], error) {
	proxyURL, err := c.proxyURL()
	if err != nil {
		return nil, err
	}

	return []options.NewClientOption[box.Manager]{
		box.WithOptions(box.Options{
			APIKey:         c.Box.APIKey,
			AuthToken:      c.Box.AuthToken,
			UploadBaseURL:  c.Box.UploadBaseURL,
			RESTBaseURL:    c.Box.RESTBaseURL,
			Proxy:          proxyURL,
			Timeout:        c.Box.Timeout,
			ResponseLimit:  c.Box.ResponseLimit,
			CollisionCheck: c.Box.CollisionCheck,
		}),
	}, nil
}

// NewManager builds a logger and a box.Manager from c. Extra options are applied last.
func (c *Config) NewManager(extra ...options.NewClientOption[box.Manager]) (*box.Manager, error) {
	logger, err := NewLogger(c.Logger)
	if err != nil {
		return nil, err
	}

	opts, err := c.ManagerOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, box.WithLogger(logger))

	return box.NewManager(append(opts, extra...)...), nil
}
