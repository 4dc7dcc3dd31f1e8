package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/spi"
)

type fakeAdapter struct {
	name       string
	configured bool
}

func (f *fakeAdapter) Name() string     { return f.name }
func (f *fakeAdapter) Configured() bool { return f.configured }

func (f *fakeAdapter) Complete(context.Context, *spi.CompletionRequest) (*entity.Completion, error) {
	return &entity.Completion{Model: f.name}, nil
}

func (f *fakeAdapter) AnalyzeImage(context.Context, *spi.VisionRequest) (*entity.VisionObservation, error) {
	return &entity.VisionObservation{Model: f.name}, nil
}

func TestSelectPreferredWhenConfigured(t *testing.T) {
	adapters := []spi.Adapter{
		&fakeAdapter{name: "anthropic", configured: true},
		&fakeAdapter{name: "openai", configured: true},
	}

	got := Select("openai", adapters)
	assert.Equal(t, "openai", got.Name())
}

func TestSelectFallsBackWhenPreferredUnconfigured(t *testing.T) {
	adapters := []spi.Adapter{
		&fakeAdapter{name: "anthropic", configured: false},
		&fakeAdapter{name: "openai", configured: true},
	}

	got := Select("anthropic", adapters)
	assert.Equal(t, "openai", got.Name())
}

func TestSelectFirstConfiguredWithoutPreference(t *testing.T) {
	adapters := []spi.Adapter{
		&fakeAdapter{name: "anthropic", configured: true},
		&fakeAdapter{name: "openai", configured: true},
	}

	got := Select("", adapters)
	assert.Equal(t, "anthropic", got.Name())
}

func TestSelectNilWhenNothingConfigured(t *testing.T) {
	adapters := []spi.Adapter{
		&fakeAdapter{name: "anthropic", configured: false},
		&fakeAdapter{name: "openai", configured: false},
	}

	assert.Nil(t, Select("anthropic", adapters))
	assert.Nil(t, Select("", nil))
}
