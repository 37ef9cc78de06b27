package lookup

import (
	"net/http"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/config"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/provider"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/provider/htmlmeta"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/provider/offacts"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/provider/upcitemdb"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

// DefaultProviders is the chain used when the configuration lists none:
// the open databases first, the commercial trial API last.
func DefaultProviders() []config.Provider {
	return []config.Provider{
		{Name: "openfoodfacts", Kind: config.ProviderKindOpenFacts, Priority: 10, BaseURL: offacts.FoodBaseURL},
		{Name: "openbeautyfacts", Kind: config.ProviderKindOpenFacts, Priority: 20, BaseURL: offacts.BeautyBaseURL},
		{Name: "openpetfoodfacts", Kind: config.ProviderKindOpenFacts, Priority: 30, BaseURL: offacts.PetFoodBaseURL},
		{Name: "openproductsfacts", Kind: config.ProviderKindOpenFacts, Priority: 40, BaseURL: offacts.ProductsBaseURL},
		{Name: "upcitemdb", Kind: config.ProviderKindUPCItemDB, Priority: 50},
	}
}

// RegistryFromConfig registers one provider per enabled configuration entry.
// Unknown kinds and invalid entries are rejected.
func RegistryFromConfig(cfg *config.Config, httpClient *http.Client) (*Registry, error) {
	entries := cfg.Lookup.Providers
	if len(entries) == 0 {
		entries = DefaultProviders()
	}

	registry := NewRegistry()
	for _, entry := range entries {
		if entry.Disabled {
			continue
		}

		p, err := newProvider(entry, cfg.Lookup.UserAgent, httpClient)
		if err != nil {
			return nil, err
		}
		registry.Register(ProviderSpec{Name: entry.Name, Priority: entry.Priority, Provider: p})
	}

	return registry, nil
}

func newProvider(entry config.Provider, userAgent string, httpClient *http.Client) (provider.Provider, error) {
	switch entry.Kind {
	case config.ProviderKindOpenFacts:
		baseURL := entry.BaseURL
		if baseURL == "" {
			baseURL = offacts.FoodBaseURL
		}

		return offacts.New(httpClient, offacts.Options{
			Name:      entry.Name,
			BaseURL:   baseURL,
			UserAgent: userAgent,
		}), nil
	case config.ProviderKindUPCItemDB:
		return upcitemdb.New(httpClient, upcitemdb.Options{
			Name:      entry.Name,
			BaseURL:   entry.BaseURL,
			APIKey:    entry.APIKey,
			UserAgent: userAgent,
		}), nil
	case config.ProviderKindHTMLMeta:
		return htmlmeta.New(httpClient, htmlmeta.Options{ //nolint: wrapcheck
			Name:           entry.Name,
			URLTemplate:    entry.BaseURL,
			UserAgent:      userAgent,
			NotFoundMarker: entry.NotFoundMarker,
		})
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "provider %q has unknown kind %q", entry.Name, entry.Kind)
	}
}
