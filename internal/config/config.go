package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wekeepgrowing/merchant-gateway/pkg/config"
	"gopkg.in/yaml.v3"
)

// ServiceName is the configuration and health-check name of this service.
const ServiceName = "merchant-gateway"

type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Events   EventsConfig   `yaml:"events"`
}

// LoadConfig reads CONFIG_PATH when set, otherwise the layered
// configs/{APP_ENV}/merchant-gateway.yaml with environment overrides.
func LoadConfig() (*Config, error) {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		}

		data, err := os.ReadFile(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	} else {
		loaded, err := config.Load(ServiceName)
		if err != nil {
			return nil, err
		}
		if err := loaded.Unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = ServiceName
	}
	if c.Service.Environment == "" {
		c.Service.Environment = "dev"
	}
	c.Database.applyDefaults()
	c.Server.applyDefaults()
	c.Log.applyDefaults()
	c.Auth.applyDefaults()
	c.Events.applyDefaults()
}

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	switch c.Events.Driver {
	case EventsDriverNone, EventsDriverRedis:
	case EventsDriverSQS:
		if c.Events.SQS.QueueURL == "" {
			return fmt.Errorf("events.sqs.queue_url is required when events.driver is %q", EventsDriverSQS)
		}
	default:
		return fmt.Errorf("unknown events driver: %q", c.Events.Driver)
	}
	return nil
}
