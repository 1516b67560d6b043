package verifier

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"hash/crc32"
	"io"
	"net/http"
	"net/url"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/pkix"
	"github.com/sirupsen/logrus"
)

const (
	PaypalTransmissionIDHeader   = "Paypal-Transmission-Id"
	PaypalTransmissionTimeHeader = "Paypal-Transmission-Time"
	PaypalCertURLHeader          = "Paypal-Cert-Url"
	PaypalAuthAlgoHeader         = "Paypal-Auth-Algo"
	PaypalTransmissionSigHeader  = "Paypal-Transmission-Sig"

	certFetchTimeout = 5 * time.Second
	certCacheTTL     = 10 * time.Minute
)

var defaultCertOrigins = []string{
	"https://api.paypal.com",
	"https://api.sandbox.paypal.com",
	"https://www.paypal.com",
}

// CertVerifier implements the certificate based strategy: the provider signs
// a message derived from per-delivery headers and the payload CRC with the
// RSA key of a certificate it hosts, and the verifier fetches and validates
// that certificate before checking the signature.
type CertVerifier struct {
	webhookID      string
	allowedOrigins map[string]struct{}
	allowedAlgos   map[string]struct{}
	rootCerts      []*x509.Certificate
	cache          *CertCache
	client         *http.Client
}

type CertVerifierOption func(*CertVerifier)

// WithCertOrigins replaces the allow-list of origins certificates may be
// fetched from.
func WithCertOrigins(origins ...string) CertVerifierOption {
	return func(v *CertVerifier) {
		v.allowedOrigins = make(map[string]struct{}, len(origins))
		for _, origin := range origins {
			v.allowedOrigins[origin] = struct{}{}
		}
	}
}

// WithRootCerts pins the trust anchors used to validate fetched certificate
// chains instead of relying on the system pool alone.
func WithRootCerts(certs ...*x509.Certificate) CertVerifierOption {
	return func(v *CertVerifier) {
		v.rootCerts = certs
	}
}

func WithHTTPClient(client *http.Client) CertVerifierOption {
	return func(v *CertVerifier) {
		v.client = client
	}
}

func NewCertVerifier(webhookID string, opts ...CertVerifierOption) *CertVerifier {
	v := &CertVerifier{
		webhookID:      webhookID,
		allowedOrigins: make(map[string]struct{}, len(defaultCertOrigins)),
		allowedAlgos:   map[string]struct{}{"SHA256withRSA": {}},
		cache:          NewCertCache(certCacheTTL),
		client:         &http.Client{Timeout: certFetchTimeout},
	}
	for _, origin := range defaultCertOrigins {
		v.allowedOrigins[origin] = struct{}{}
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SignedMessage builds the exact byte string the provider signs for one
// transmission. The CRC32 checksum of the raw body is rendered in decimal.
func SignedMessage(transmissionID, transmissionTime, webhookID string, rawBody []byte) string {
	return fmt.Sprintf("%s|%s|%s|%d", transmissionID, transmissionTime, webhookID, crc32.ChecksumIEEE(rawBody))
}

func (v *CertVerifier) Verify(ctx context.Context, headers http.Header, rawBody []byte) error {
	transmissionID := headers.Get(PaypalTransmissionIDHeader)
	transmissionTime := headers.Get(PaypalTransmissionTimeHeader)
	certURL := headers.Get(PaypalCertURLHeader)
	authAlgo := headers.Get(PaypalAuthAlgoHeader)
	signature := headers.Get(PaypalTransmissionSigHeader)
	for header, value := range map[string]string{
		PaypalTransmissionIDHeader:   transmissionID,
		PaypalTransmissionTimeHeader: transmissionTime,
		PaypalCertURLHeader:          certURL,
		PaypalAuthAlgoHeader:         authAlgo,
		PaypalTransmissionSigHeader:  signature,
	} {
		if value == "" {
			return fmt.Errorf("%s: %w", header, model.ErrMissingHeader)
		}
	}

	if _, ok := v.allowedAlgos[authAlgo]; !ok {
		return fmt.Errorf("%s: %w", authAlgo, model.ErrDisallowedAlgorithm)
	}
	if err := v.checkCertURL(certURL); err != nil {
		return err
	}

	rawSignature, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("malformed signature: %w", model.ErrSignatureMismatch)
	}

	certs, err := v.loadCerts(ctx, certURL)
	if err != nil {
		return err
	}
	publicKey, err := pkix.RSAPublicKey(certs[0])
	if err != nil {
		return fmt.Errorf("%s: %w", err.Error(), model.ErrSignatureMismatch)
	}

	digest := sha256.Sum256([]byte(SignedMessage(transmissionID, transmissionTime, v.webhookID, rawBody)))
	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, digest[:], rawSignature); err != nil {
		logrus.Debugf("certificate signature verification failed: %v", err)
		return model.ErrSignatureMismatch
	}
	return nil
}

func (v *CertVerifier) checkCertURL(certURL string) error {
	parsed, err := url.Parse(certURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%s: %w", certURL, model.ErrUntrustedCertURL)
	}
	origin := parsed.Scheme + "://" + parsed.Host
	if _, ok := v.allowedOrigins[origin]; !ok {
		return fmt.Errorf("%s: %w", origin, model.ErrUntrustedCertURL)
	}
	return nil
}

func (v *CertVerifier) loadCerts(ctx context.Context, certURL string) ([]*x509.Certificate, error) {
	if certs, ok := v.cache.Get(certURL); ok {
		return certs, nil
	}

	raw, err := retry.DoWithData(
		func() ([]byte, error) {
			return v.fetchCert(ctx, certURL)
		},
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.Context(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), model.ErrCertUnavailable)
	}

	certs, err := pkix.ParseCertificateChain(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), model.ErrCertUnavailable)
	}
	if err := pkix.Verify(certs, v.rootCerts); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), model.ErrCertUnavailable)
	}

	v.cache.Put(certURL, certs)
	return certs, nil
}

func (v *CertVerifier) fetchCert(ctx context.Context, certURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, certURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching certificate", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}
