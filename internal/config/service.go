package config

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

// LogConfig mirrors pkg/logger.Config
type LogConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	Output      string `yaml:"output"`
	FilePath    string `yaml:"file_path"`
	Development bool   `yaml:"development"`
}

func (c *LogConfig) applyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}

// AuthConfig holds the admin API credentials
type AuthConfig struct {
	AdminJWTSecret string `yaml:"admin_jwt_secret"`
	AdminJWTIssuer string `yaml:"admin_jwt_issuer"`
}

func (c *AuthConfig) applyDefaults() {
	if c.AdminJWTIssuer == "" {
		c.AdminJWTIssuer = ServiceName
	}
}
