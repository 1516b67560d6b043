package verifier

import (
	"crypto/x509"
	"sync"
	"time"
)

type certCacheEntry struct {
	certs     []*x509.Certificate
	expiresAt time.Time
}

// CertCache is a TTL cache for verification certificate chains keyed by
// their source URL. Entries also expire when the leaf certificate does.
type CertCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]certCacheEntry
	now     func() time.Time
}

func NewCertCache(ttl time.Duration) *CertCache {
	return &CertCache{
		ttl:     ttl,
		entries: make(map[string]certCacheEntry),
		now:     time.Now,
	}
}

func (c *CertCache) Get(url string) ([]*x509.Certificate, bool) {
	c.mu.RLock()
	entry, ok := c.entries[url]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.certs, true
}

func (c *CertCache) Put(url string, certs []*x509.Certificate) {
	if len(certs) == 0 {
		return
	}
	expiresAt := c.now().Add(c.ttl)
	if leafExpiry := certs[0].NotAfter; leafExpiry.Before(expiresAt) {
		expiresAt = leafExpiry
	}
	c.mu.Lock()
	c.entries[url] = certCacheEntry{certs: certs, expiresAt: expiresAt}
	c.mu.Unlock()
}
