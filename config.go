package client

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config is the connection snapshot a Client is built from. It is copied at
// construction; changing settings means building a new Client.
type Config struct {
	// BaseURL is the root of the remote instance, e.g.
	// "https://canvas.example.com". A trailing slash is tolerated.
	BaseURL string `envconfig:"BASE_URL"`

	// Token is the static bearer token sent on every request.
	Token string `envconfig:"TOKEN"`

	// UseProxy routes every request through ProxyURL when true.
	UseProxy bool `envconfig:"USE_PROXY"`

	// ProxyURL is the intermediary endpoint the percent-encoded target URL
	// is appended to. Ignored unless UseProxy is set.
	ProxyURL string `envconfig:"PROXY_URL"`
}

// ConfigFromEnv loads a Config from CANVAS_* environment variables
// (CANVAS_BASE_URL, CANVAS_TOKEN, CANVAS_USE_PROXY, CANVAS_PROXY_URL).
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("CANVAS", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the config can produce a usable client.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL must not be empty")
	}
	if c.Token == "" {
		return errors.New("access token must not be empty")
	}
	return nil
}
