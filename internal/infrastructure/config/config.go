package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Service is the configuration shared by the two resource services. PORT has
// no static default because each binary supplies its own.
type Service struct {
	Port     string `env:"PORT"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
}

// Gateway is the configuration of the API gateway. Backend base URLs are
// environment-supplied; the gateway itself holds no routing state beyond them.
type Gateway struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	UsersServiceURL    string        `env:"USERS_SERVICE_URL,    default=http://localhost:3001"`
	ProductsServiceURL string        `env:"PRODUCTS_SERVICE_URL, default=http://localhost:3002"`
	ProxyTimeout       time.Duration `env:"PROXY_TIMEOUT,        default=5s"`
	RateLimitRPS       float64       `env:"RATE_LIMIT_RPS,       default=50"`
}

// LoadService reads resource-service configuration from the environment,
// falling back to defaultPort when PORT is unset.
func LoadService(defaultPort string) *Service {
	var cfg Service
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	return &cfg
}

// LoadGateway reads gateway configuration from the environment.
func LoadGateway() *Gateway {
	var cfg Gateway
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
