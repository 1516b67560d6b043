package verifier

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hookworks/hookd/pkg/gateway/model"
)

const (
	GenericTimestampHeader = "X-Hookd-Timestamp"
	GenericSignatureHeader = "X-Hookd-Signature"
)

// GenericVerifier authenticates first-party producers using the same scheme
// the gateway applies to its own outbound deliveries: X-Hookd-Timestamp plus
// X-Hookd-Signature "v1=<hex HMAC-SHA256 of ts.body>".
type GenericVerifier struct {
	secret    string
	tolerance time.Duration
	now       func() time.Time
}

type GenericVerifierOption func(*GenericVerifier)

func WithGenericTolerance(tolerance time.Duration) GenericVerifierOption {
	return func(v *GenericVerifier) {
		v.tolerance = tolerance
	}
}

func WithGenericNowFunc(now func() time.Time) GenericVerifierOption {
	return func(v *GenericVerifier) {
		v.now = now
	}
}

func NewGenericVerifier(secret string, opts ...GenericVerifierOption) *GenericVerifier {
	v := &GenericVerifier{
		secret:    secret,
		tolerance: DefaultTolerance,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *GenericVerifier) Verify(ctx context.Context, headers http.Header, rawBody []byte) error {
	tsHeader := headers.Get(GenericTimestampHeader)
	sigHeader := headers.Get(GenericSignatureHeader)
	if tsHeader == "" {
		return fmt.Errorf("%s: %w", GenericTimestampHeader, model.ErrMissingHeader)
	}
	if sigHeader == "" {
		return fmt.Errorf("%s: %w", GenericSignatureHeader, model.ErrMissingHeader)
	}

	timestamp, err := strconv.ParseInt(tsHeader, 10, 64)
	if err != nil {
		return fmt.Errorf("malformed timestamp: %w", model.ErrSignatureMismatch)
	}

	age := v.now().Unix() - timestamp
	if age < 0 {
		age = -age
	}
	if time.Duration(age)*time.Second > v.tolerance {
		return model.ErrTimestampOutOfTolerance
	}

	candidate := strings.TrimPrefix(sigHeader, "v1=")
	if !signatureMatches(v.secret, timestamp, rawBody, candidate) {
		return model.ErrSignatureMismatch
	}
	return nil
}
