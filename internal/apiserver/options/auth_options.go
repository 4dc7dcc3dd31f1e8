package options

import (
	"github.com/spf13/pflag"
)

// AuthOptions holds the API authentication options.
type AuthOptions struct {
	// Enabled controls whether Bearer authentication is enforced.
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// Token is the expected Bearer token. Can also be set via the
	// KINETRA_API_TOKEN environment variable.
	Token string `json:"token" mapstructure:"token"`
}

// NewAuthOptions creates a default AuthOptions instance.
func NewAuthOptions() *AuthOptions {
	return &AuthOptions{Enabled: true}
}

// AddFlags adds the AuthOptions flags to the given flag set.
func (o *AuthOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Enabled, "auth.enabled", o.Enabled, "Enforce Bearer token authentication.")
	fs.StringVar(&o.Token, "auth.token", o.Token, "Expected Bearer token (or set KINETRA_API_TOKEN).")
}
