package verifier

import (
	"github.com/hookworks/hookd/pkg/gateway/model"
)

type Config struct {
	PayPalWebhookID string `yaml:"paypal_webhook_id"`
	StripeSecret    string `yaml:"stripe_secret"`
	GenericSecret   string `yaml:"generic_secret"`
}

// NewRegistryWithConfig builds a registry with one verifier per configured
// provider. Providers without credentials stay unregistered and their
// requests are rejected as unknown.
func NewRegistryWithConfig(cfg Config) *Registry {
	registry := NewRegistry()
	if cfg.PayPalWebhookID != "" {
		registry.Register(model.ProviderPayPal, NewCertVerifier(cfg.PayPalWebhookID))
	}
	if cfg.StripeSecret != "" {
		registry.Register(model.ProviderStripe, NewHMACVerifier(cfg.StripeSecret))
	}
	if cfg.GenericSecret != "" {
		registry.Register(model.ProviderGeneric, NewGenericVerifier(cfg.GenericSecret))
	}
	return registry
}
