package pkix

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
)

// ParseCertificateChain decodes a PEM bundle into certificates, leaf first.
func ParseCertificateChain(raw []byte) ([]*x509.Certificate, error) {
	certs := make([]*x509.Certificate, 0, 4)
	for {
		pemBlock, remains := pem.Decode(raw)
		if pemBlock == nil {
			return nil, errors.New("invalid certificate")
		}

		cert, err := x509.ParseCertificate(pemBlock.Bytes)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)

		if len(remains) == 0 {
			break
		}
		raw = remains
	}

	return certs, nil
}

// Verify verifies the certificate chain of trust.
//
// The first certificate in the chain is the end-entity certificate.
// The rest of the certificates are intermediate certificates.
//
// The rootCerts parameter is optional. If provided, the rootCerts and the
// system preinstalled trusted certs are used to verify the certificate chain.
func Verify(certs []*x509.Certificate, rootCerts []*x509.Certificate) error {
	if len(certs) == 0 {
		return errors.New("no certificate provided")
	}

	cert := certs[0]
	intermediateCerts := certs[1:]

	// Walk the chain pairwise instead of collecting the intermediates into a
	// single pool. Provider chains do not always carry the keyCertSign usage
	// on their intermediates, which the pooled verification would reject.
	for len(intermediateCerts) > 0 {
		rootPool := x509.NewCertPool()
		rootPool.AddCert(intermediateCerts[0])
		options := x509.VerifyOptions{
			Roots:     rootPool,
			KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
		}
		if _, err := cert.Verify(options); err != nil {
			return err
		}
		cert = intermediateCerts[0]
		intermediateCerts = intermediateCerts[1:]
	}

	var err error
	var rootPool *x509.CertPool
	if len(rootCerts) > 0 {
		rootPool, err = x509.SystemCertPool()
		if err != nil {
			return err
		}
		for _, rootCert := range rootCerts {
			rootPool.AddCert(rootCert)
		}
	}

	options := x509.VerifyOptions{
		Roots:     rootPool,
		KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}

	if _, err = cert.Verify(options); err != nil {
		return err
	}

	return nil
}

// RSAPublicKey returns the RSA public key of the certificate, or an error if
// the certificate carries a different key type.
func RSAPublicKey(cert *x509.Certificate) (*rsa.PublicKey, error) {
	key, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("certificate does not carry an RSA public key")
	}
	return key, nil
}
