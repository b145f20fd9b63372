package commands

import (
	"fmt"
	"sync"

	"github.com/petal-labs/sous/cli/config"
	"github.com/petal-labs/sous/core"
	"github.com/petal-labs/sous/providers"
	"github.com/petal-labs/sous/providers/openai"
)

var registerOnce sync.Once

// registerBuiltinProviders wires the built-in providers into the provider
// registry. Called from NewApp so registration is explicit.
func registerBuiltinProviders() {
	registerOnce.Do(func() {
		providers.Register("openai", func(apiKey string) core.Provider {
			return openai.New(apiKey)
		})
	})
}

func defaultProviderFactory() ProviderFactory {
	return func(providerID, apiKey string, cfg *config.Config) (core.Provider, error) {
		switch providerID {
		case "openai":
			var opts []openai.Option
			if baseURL := providerBaseURL(cfg, providerID); baseURL != "" {
				opts = append(opts, openai.WithBaseURL(baseURL))
			}
			if cfg != nil && cfg.Convention != "" {
				opts = append(opts, openai.WithConvention(core.APIConvention(cfg.Convention)))
			}
			return openai.New(apiKey, opts...), nil
		default:
			// Fall back to the registry for externally-registered providers.
			if providers.IsRegistered(providerID) {
				return providers.Create(providerID, apiKey)
			}
			return nil, fmt.Errorf("unsupported provider: %s (available: %v)", providerID, providers.List())
		}
	}
}

func providerBaseURL(cfg *config.Config, providerID string) string {
	if cfg == nil {
		return ""
	}
	pc := cfg.GetProvider(providerID)
	if pc == nil {
		return ""
	}
	return pc.BaseURL
}
