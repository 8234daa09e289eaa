package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/Astemirdum/book-swap-service/pkg/auth"
	"github.com/Astemirdum/book-swap-service/pkg/circuit_breaker"
	"github.com/Astemirdum/book-swap-service/pkg/kafka"
	"github.com/Astemirdum/book-swap-service/pkg/logger"
	"github.com/Astemirdum/book-swap-service/pkg/postgres"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/cover"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"SWAP_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"SWAP_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Store selects the persistence adapter and the timeout applied to every store call.
type Store struct {
	Driver  string        `envconfig:"STORE_DRIVER" default:"postgres"`
	Timeout time.Duration `envconfig:"STORE_TIMEOUT" default:"5s"`
}

type Swap struct {
	ClearAvailabilityOnComplete bool `envconfig:"SWAP_CLEAR_AVAILABILITY_ON_COMPLETE" default:"false"`
}

type Notify struct {
	Attempts  int           `envconfig:"NOTIFY_ATTEMPTS" default:"3"`
	BaseDelay time.Duration `envconfig:"NOTIFY_BASE_DELAY" default:"100ms"`
	Timeout   time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
}

type Review struct {
	MinTextLength int `envconfig:"REVIEW_MIN_TEXT_LENGTH" default:"10"`
}

type Config struct {
	Server   HTTPServer             `yaml:"server"`
	Database postgres.DB            `yaml:"db"`
	Store    Store                  `yaml:"store"`
	Breaker  circuit_breaker.Config `yaml:"breaker"`
	Kafka    kafka.Config           `yaml:"kafka"`
	Auth     auth.Config            `yaml:"auth"`
	Swap     Swap                   `yaml:"swap"`
	Notify   Notify                 `yaml:"notify"`
	Cover    cover.Config           `yaml:"cover"`
	Review   Review                 `yaml:"review"`
	Log      logger.Log             `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment once per process.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
	})

	return cfg
}

// Load processes the environment and then applies ops, so explicit options win.
func Load(ops ...Option) (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.Wrap(err, "envconfig")
	}
	for _, op := range ops {
		op(&config)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return errors.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Store.Timeout <= 0 {
		return errors.New("STORE_TIMEOUT must be positive")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if c.Review.MinTextLength < 0 {
		return errors.New("REVIEW_MIN_TEXT_LENGTH must not be negative")
	}
	return nil
}
