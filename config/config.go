// Package config defines the environment configuration for the SDK.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

// Config holds the credentials and environment selection read from the
// process environment or flags.
type Config struct {
	gofigure      interface{} `order:"env,flag"`
	ClientID      string      `env:"PAYPAL_CLIENT_ID" flag:"paypal-client-id" flagDesc:"PayPal REST API client ID"`
	Secret        string      `env:"PAYPAL_SECRET" flag:"paypal-secret" flagDesc:"PayPal REST API secret"`
	Env           string      `env:"PAYPAL_ENV" flag:"paypal-env" flagDesc:"PayPal environment (sandbox or live)"`
	APIBase       string      `env:"PAYPAL_API_BASE" flag:"paypal-api-base" flagDesc:"Override for the PayPal API base URL"`
	TokenCacheTTL int         `env:"PAYPAL_TOKEN_CACHE_TTL" flag:"paypal-token-cache-ttl" flagDesc:"Seconds to keep an access token before the reported expiry"`
}

var cfg *Config
var mtx sync.Mutex

// Get returns a pointer to a Config instance populated from the environment,
// reading it once.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults for the sandbox
// environment.
func DefaultConfig() *Config {
	return &Config{
		Env:           "sandbox",
		TokenCacheTTL: 60,
	}
}
