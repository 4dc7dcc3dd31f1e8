package config

import (
	"github.com/kinetra/kinetra/internal/apiserver/options"
)

// Config is the running configuration structure of the kinetra API server.
type Config struct {
	*options.Options
}

// CreateConfigFromOptions creates a running configuration instance based
func CreateConfigFromOptions(opts *options.Options) (*Config, error) {
	return &Config{opts}, nil
}
