package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// StoreOptions holds the persistence backend options.
type StoreOptions struct {
	// Type selects the backend: "inmemory" or "boltdb". Default: "boltdb".
	Type string `json:"type" mapstructure:"type"`

	// BoltDBPath is the database file path when Type is "boltdb".
	// Default: "data/kinetra.db".
	BoltDBPath string `json:"boltdb_path" mapstructure:"boltdb_path"`
}

// NewStoreOptions creates a default StoreOptions instance.
func NewStoreOptions() *StoreOptions {
	return &StoreOptions{
		Type:       "boltdb",
		BoltDBPath: "data/kinetra.db",
	}
}

// Validate checks the StoreOptions for correctness.
func (o *StoreOptions) Validate() error {
	switch o.Type {
	case "inmemory", "boltdb":
		return nil
	}
	return fmt.Errorf("store type %q must be \"inmemory\" or \"boltdb\"", o.Type)
}

// AddFlags adds the StoreOptions flags to the given flag set.
func (o *StoreOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Type, "store.type", o.Type, "Persistence backend (inmemory or boltdb).")
	fs.StringVar(&o.BoltDBPath, "store.boltdb-path", o.BoltDBPath, "BoltDB database file path.")
}
