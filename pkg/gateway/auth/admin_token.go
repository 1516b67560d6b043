package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const adminScope = "admin"

// AdminTokenVerifier validates the HS256 signed bearer tokens used by the
// operator endpoints of the management API (tenant and API key
// provisioning). Tenant-scoped endpoints use API keys instead.
type AdminTokenVerifier struct {
	secret []byte
}

func NewAdminTokenVerifier(secret []byte) *AdminTokenVerifier {
	return &AdminTokenVerifier{secret: secret}
}

// Verify checks signature, validity window and the admin scope claim. It
// returns the token subject.
func (v *AdminTokenVerifier) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256, v.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", err.Error(), ErrInvalidAdminToken)
	}

	scopeClaim, ok := token.Get("scope")
	if !ok {
		return "", ErrMissingAdminScope
	}
	scopes, ok := scopeClaim.(string)
	if !ok {
		return "", ErrMissingAdminScope
	}
	for _, scope := range strings.Fields(scopes) {
		if scope == adminScope {
			return token.Subject(), nil
		}
	}
	return "", ErrMissingAdminScope
}

// IssueAdminToken mints an admin token for the subject. Used by provisioning
// tooling and tests.
func IssueAdminToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token, err := jwt.NewBuilder().
		Subject(subject).
		IssuedAt(now).
		Expiration(now.Add(ttl)).
		Claim("scope", adminScope).
		Build()
	if err != nil {
		return "", err
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, secret))
	if err != nil {
		return "", err
	}
	return string(signed), nil
}
