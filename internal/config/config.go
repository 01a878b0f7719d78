// Package config loads service configuration from file and environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/questkeep/hero-api/internal/errors"
)

// Config is the top-level service configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// ServerConfig configures the gRPC process surface
type ServerConfig struct {
	GRPCPort int `mapstructure:"grpc_port"`
}

// RedisConfig configures the backing store connection
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the host:port address for the Redis client
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks the loaded configuration for usable values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.GRPCPort <= 0 || c.Server.GRPCPort > 65535 {
		vb.InvalidField("server.grpc_port", "must be between 1 and 65535")
	}
	if c.Redis.Host == "" {
		vb.RequiredField("redis.host")
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		vb.InvalidField("redis.port", "must be between 1 and 65535")
	}

	return vb.Build()
}

// Load reads configuration from the given file path, with environment
// variables (HEROAPI_ prefix) overriding file values. An empty path loads
// defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.grpc_port", 50051)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetEnvPrefix("HEROAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
