package options

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// ServingOptions holds the HTTP serving options.
type ServingOptions struct {
	// BindAddress is the IP address to listen on. Default: "127.0.0.1".
	BindAddress string `json:"bind_address" mapstructure:"bind_address"`

	// BindPort is the port to listen on. Default: 8000.
	BindPort int `json:"bind_port" mapstructure:"bind_port"`
}

// NewServingOptions creates a default ServingOptions instance.
func NewServingOptions() *ServingOptions {
	return &ServingOptions{
		BindAddress: "127.0.0.1",
		BindPort:    8000,
	}
}

// Addr returns the host:port address to listen on.
func (o *ServingOptions) Addr() string {
	return net.JoinHostPort(o.BindAddress, strconv.Itoa(o.BindPort))
}

// Validate checks the ServingOptions for correctness.
func (o *ServingOptions) Validate() error {
	if o.BindPort < 1 || o.BindPort > 65535 {
		return fmt.Errorf("bind_port %d must be between 1 and 65535", o.BindPort)
	}
	return nil
}

// AddFlags adds the ServingOptions flags to the given flag set.
func (o *ServingOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BindAddress, "serving.bind-address", o.BindAddress, "The IP address on which to serve.")
	fs.IntVar(&o.BindPort, "serving.bind-port", o.BindPort, "The port on which to serve.")
}
