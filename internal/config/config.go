package shopping

import (
	"github.com/go-sod/shopping/internal/database"
	"github.com/go-sod/shopping/internal/dataset"
	"github.com/go-sod/shopping/internal/pipeline"
	"github.com/go-sod/shopping/internal/predictor"
	"github.com/go-sod/shopping/internal/setup"
	"github.com/go-sod/shopping/internal/tracing"
)

var (
	_ setup.ConfigFileProvider      = (*Config)(nil)
	_ setup.LogConfigProvider       = (*Config)(nil)
	_ setup.PredictorConfigProvider = (*Config)(nil)
	_ setup.DatabaseConfigProvider  = (*Config)(nil)
	_ setup.TraceConfigProvider     = (*Config)(nil)
)

// Config is read from the environment first; a TOML file named by
// SHOP_CONFIG_FILE overrides the values it sets.
type Config struct {
	File           string `envconfig:"SHOP_CONFIG_FILE" toml:"-"`
	Level          string `envconfig:"SHOP_LOG_LEVEL" default:"warn" toml:"log_level"`
	DevelopmentLog bool   `envconfig:"SHOP_LOG_DEVELOPMENT" default:"false" toml:"log_development"`

	Split     pipeline.Config  `toml:"split"`
	Dataset   dataset.Config   `toml:"dataset"`
	Predictor predictor.Config `toml:"predictor"`
	Database  database.Config  `toml:"database"`
	Trace     tracing.Config   `toml:"trace"`
}

func (c *Config) ConfigFile() string {
	return c.File
}

func (c *Config) LogLevel() string {
	return c.Level
}

func (c *Config) LogDevelopment() bool {
	return c.DevelopmentLog
}

func (c *Config) PredictConfig() *predictor.Config {
	return &c.Predictor
}

func (c *Config) PredictType() predictor.AlgType {
	return c.Predictor.Type
}

func (c *Config) DatabaseConfig() *database.Config {
	return &c.Database
}

func (c *Config) TraceConfig() *tracing.Config {
	return &c.Trace
}
