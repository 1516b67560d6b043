package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/hookworks/hookd/pkg/gateway/auth"
)

type AdminTokenAuth struct {
	verifier *auth.AdminTokenVerifier
}

func NewAdminTokenAuth(verifier *auth.AdminTokenVerifier) *AdminTokenAuth {
	return &AdminTokenAuth{
		verifier: verifier,
	}
}

func (a *AdminTokenAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := getBearerToken(r)
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("missing admin token"))
			return
		}

		subject, err := a.verifier.Verify(token)
		if errors.Is(err, auth.ErrAdminTokenError) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(err.Error()))
			return
		} else if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		ctx = context.WithValue(ctx, ADMIN_SUBJECT, subject)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}
