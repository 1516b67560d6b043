// Package verifier authenticates inbound webhook calls before anything else
// looks at them. Every strategy operates on the raw, unparsed request body;
// re-serialized JSON does not verify.
package verifier

import (
	"context"
	"net/http"

	"github.com/hookworks/hookd/pkg/gateway/model"
)

// Verifier validates the authenticity of one inbound webhook request.
// A nil return means the request is authentic. Any non-nil error wraps
// model.ErrVerification and names the failing step; implementations fail
// closed and never panic past this boundary.
type Verifier interface {
	Verify(ctx context.Context, headers http.Header, rawBody []byte) error
}

// Registry selects the verification strategy by provider.
type Registry struct {
	verifiers map[model.Provider]Verifier
}

func NewRegistry() *Registry {
	return &Registry{
		verifiers: map[model.Provider]Verifier{},
	}
}

func (r *Registry) Register(provider model.Provider, v Verifier) {
	r.verifiers[provider] = v
}

func (r *Registry) Verify(ctx context.Context, provider model.Provider, headers http.Header, rawBody []byte) error {
	v, ok := r.verifiers[provider]
	if !ok {
		return model.ErrUnknownProvider
	}
	return v.Verify(ctx, headers, rawBody)
}
