package cert

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/internet-of-plants/iop/pkg/pkix"
)

var ErrUnknownAuthority = errors.New("certificate signed by unknown authority")

// InstallTrustAnchorSource replaces the built-in chain verification of cfg by
// lookups against src. The host name is checked against cfg.ServerName as set
// at install time, or the handshake's server name when that is empty.
//
// Handshakes sharing cfg are verified one at a time.
func InstallTrustAnchorSource(cfg *tls.Config, src TrustAnchorSource) {
	if cfg == nil {
		panic("tls config is required")
	}
	if src == nil {
		panic("trust anchor source is required")
	}

	serverName := cfg.ServerName
	mtx := &sync.Mutex{}

	cfg.InsecureSkipVerify = true
	cfg.VerifyConnection = func(cs tls.ConnectionState) error {
		mtx.Lock()
		defer mtx.Unlock()

		name := serverName
		if name == "" {
			name = cs.ServerName
		}
		return verifyWithSource(src, cs.PeerCertificates, name, time.Now())
	}
}

// verifyWithSource asks src for the issuer of every certificate in the chain,
// leaf first, and accepts the chain as soon as one anchor verifies it.
func verifyWithSource(src TrustAnchorSource, certs []*x509.Certificate, dnsName string, now time.Time) error {
	if len(certs) == 0 {
		return pkix.ErrNoCertificate
	}

	var lastErr error
	for _, cert := range certs {
		hash := pkix.IssuerHash(cert)
		anchor := src.FindTrustAnchor(hash[:])
		if anchor == nil {
			continue
		}

		err := pkix.Verify(certs, anchor.Cert, dnsName, now)
		src.FreeTrustAnchor(anchor)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return fmt.Errorf("%v: %w", lastErr, ErrUnknownAuthority)
	}
	return ErrUnknownAuthority
}
