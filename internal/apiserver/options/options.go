// Package options defines the command line and config file options of the
// kinetra API server.
package options

import (
	"github.com/spf13/pflag"

	"github.com/kinetra/kinetra/pkg/utils/json"
)

// Options is the aggregate of all kinetra API server options.
type Options struct {
	ServingOptions *ServingOptions `json:"serving" mapstructure:"serving"`
	AIOptions      *AIOptions      `json:"ai"      mapstructure:"ai"`
	StoreOptions   *StoreOptions   `json:"store"   mapstructure:"store"`
	AuthOptions    *AuthOptions    `json:"auth"    mapstructure:"auth"`
}

// NewOptions creates the default Options.
func NewOptions() *Options {
	return &Options{
		ServingOptions: NewServingOptions(),
		AIOptions:      NewAIOptions(),
		StoreOptions:   NewStoreOptions(),
		AuthOptions:    NewAuthOptions(),
	}
}

// AddFlags registers all option flags on the given flag set.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.ServingOptions.AddFlags(fs)
	o.AIOptions.AddFlags(fs)
	o.StoreOptions.AddFlags(fs)
	o.AuthOptions.AddFlags(fs)
}

// Validate checks all options for correctness.
func (o *Options) Validate() error {
	if err := o.ServingOptions.Validate(); err != nil {
		return err
	}
	if err := o.AIOptions.Validate(); err != nil {
		return err
	}
	if err := o.StoreOptions.Validate(); err != nil {
		return err
	}
	return nil
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}
