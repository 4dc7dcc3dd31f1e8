// Package provider selects the active LLM vendor adapter.
package provider

import (
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/spi"
)

// Select picks the adapter to use: the preferred one when it has
// credentials, otherwise the first configured adapter, otherwise nil.
// A nil result means the assistant runs in "not configured" mode.
func Select(preferred string, adapters []spi.Adapter) spi.Adapter {
	for _, a := range adapters {
		if a.Name() == preferred && a.Configured() {
			return a
		}
	}
	for _, a := range adapters {
		if a.Configured() {
			return a
		}
	}
	return nil
}
