package verifier

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/sirupsen/logrus"
)

const (
	StripeSignatureHeader = "Stripe-Signature"

	// DefaultTolerance bounds how old a signed timestamp may be. Older (or
	// equally far in the future) requests are rejected as replays.
	DefaultTolerance = 5 * time.Minute
)

type HMACVerifierOption func(*HMACVerifier)

func WithTolerance(tolerance time.Duration) HMACVerifierOption {
	return func(v *HMACVerifier) {
		v.tolerance = tolerance
	}
}

func WithSignatureHeader(header string) HMACVerifierOption {
	return func(v *HMACVerifier) {
		v.header = header
	}
}

// WithNowFunc overrides the clock. Tests only.
func WithNowFunc(now func() time.Time) HMACVerifierOption {
	return func(v *HMACVerifier) {
		v.now = now
	}
}

// HMACVerifier implements the shared-secret scheme used by Stripe-style
// providers. The signature header carries "t=<unix>,v1=<hex>[,v1=<hex>...]";
// the signed payload is "<t>.<raw body>". Multiple v1 entries appear during
// secret rotation, any single match passes.
type HMACVerifier struct {
	secret    string
	header    string
	tolerance time.Duration
	now       func() time.Time
}

func NewHMACVerifier(secret string, opts ...HMACVerifierOption) *HMACVerifier {
	v := &HMACVerifier{
		secret:    secret,
		header:    StripeSignatureHeader,
		tolerance: DefaultTolerance,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *HMACVerifier) Verify(ctx context.Context, headers http.Header, rawBody []byte) error {
	sigHeader := headers.Get(v.header)
	if sigHeader == "" {
		logrus.Debugf("hmac verify: header %s missing", v.header)
		return fmt.Errorf("%s: %w", v.header, model.ErrMissingHeader)
	}

	timestamp, candidates, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return err
	}

	age := v.now().Unix() - timestamp
	if age < 0 {
		age = -age
	}
	if time.Duration(age)*time.Second > v.tolerance {
		logrus.Debugf("hmac verify: timestamp %d outside tolerance", timestamp)
		return model.ErrTimestampOutOfTolerance
	}

	for _, candidate := range candidates {
		if signatureMatches(v.secret, timestamp, rawBody, candidate) {
			return nil
		}
	}
	logrus.Debugf("hmac verify: no matching signature among %d candidates", len(candidates))
	return model.ErrSignatureMismatch
}

func parseSignatureHeader(header string) (int64, []string, error) {
	var timestamp int64
	var haveTimestamp bool
	var candidates []string

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			ts, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("malformed timestamp: %w", model.ErrSignatureMismatch)
			}
			timestamp = ts
			haveTimestamp = true
		case "v1":
			candidates = append(candidates, kv[1])
		}
	}

	if !haveTimestamp || len(candidates) == 0 {
		return 0, nil, fmt.Errorf("malformed signature header: %w", model.ErrSignatureMismatch)
	}
	return timestamp, candidates, nil
}
