package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type APIKeyStatus string
type APIKeyScope string

const (
	APIKeyStatusActive  = APIKeyStatus("active")
	APIKeyStatusRevoked = APIKeyStatus("revoked")

	// APIKeyScopeAll grants every management operation. Keys may instead
	// carry the narrower read or write scopes.
	APIKeyScopeAll   = APIKeyScope("all")
	APIKeyScopeRead  = APIKeyScope("webhooks:read")
	APIKeyScopeWrite = APIKeyScope("webhooks:write")
)

// APIKeyString is the string representation of an API key. Management API
// clients present it as a bearer token. The format is [ID]:[SECRET].
type APIKeyString string

// APIKeyHashedString is the hashed string representation of an API key.
// It is stored in the database. The gateway is not able to recover the
// original APIKeyString from this.
type APIKeyHashedString string

func (ks APIKeyString) ID() (string, error) {
	parts := strings.Split(string(ks), ":")
	if len(parts) != 2 {
		return "", ErrInvalidAPIKeyString
	}

	return parts[0], nil
}

func (ks APIKeyString) Hash() (APIKeyHashedString, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(string(ks)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return APIKeyHashedString(hashed), nil
}

func NewAPIKeyString() (APIKeyString, error) {
	prefixBytes := make([]byte, 16)
	secretBytes := make([]byte, 32)

	if _, err := rand.Read(prefixBytes); err != nil {
		return "", err
	}
	if _, err := rand.Read(secretBytes); err != nil {
		return "", err
	}

	base64Prefix := base64.RawURLEncoding.EncodeToString(prefixBytes)
	base64Secret := base64.RawURLEncoding.EncodeToString(secretBytes)
	return APIKeyString(fmt.Sprintf("%s:%s", base64Prefix, base64Secret)), nil
}

func VerifyAPIKeyString(ks APIKeyString, hashedKs APIKeyHashedString) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedKs), []byte(ks))
	if err == nil {
		return nil
	}

	if err == bcrypt.ErrMismatchedHashAndPassword {
		return ErrMismatchAPIKey
	}

	return err
}
