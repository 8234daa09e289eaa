package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}

func WithStoreDriver(driver string) Option {
	return func(c *Config) {
		c.Store.Driver = driver
	}
}

func WithPort(port string) Option {
	return func(c *Config) {
		c.Server.Port = port
	}
}
