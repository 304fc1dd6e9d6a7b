package cert

import (
	"crypto"
	"crypto/tls"
	"crypto/x509"

	"github.com/sirupsen/logrus"
)

// DefaultMaxDecodeSize bounds the DER a lookup is willing to decode.
const DefaultMaxDecodeSize = 4096

// TrustAnchor is the view of a decoded root handed to the TLS engine.
// DN carries the 32 byte subject hash the anchor was found with, not the
// real distinguished name.
type TrustAnchor struct {
	DN        []byte
	CA        bool
	PublicKey crypto.PublicKey
	Cert      *x509.Certificate
}

// TrustAnchorSource resolves trust anchors during a handshake. Every anchor
// returned by FindTrustAnchor is handed back through FreeTrustAnchor before the
// next lookup.
type TrustAnchorSource interface {
	FindTrustAnchor(hashedDN []byte) *TrustAnchor
	FreeTrustAnchor(anchor *TrustAnchor)
}

// CertStore decodes roots of a CertList on demand and holds at most one of
// them at a time.
type CertStore struct {
	certList      *CertList
	held          *TrustAnchor
	maxDecodeSize int
	logger        *logrus.Entry
}

type CertStoreOption func(*CertStore)

func WithMaxDecodeSize(size int) CertStoreOption {
	return func(s *CertStore) {
		s.maxDecodeSize = size
	}
}

func NewCertStore(opts ...CertStoreOption) *CertStore {
	s := &CertStore{
		maxDecodeSize: DefaultMaxDecodeSize,
		logger:        logrus.WithField("target", "CERT"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetCertList binds list, replacing any list bound before.
func (s *CertStore) SetCertList(list *CertList) {
	s.certList = list
}

// InstallInto registers the store as the trust anchor source of cfg.
func (s *CertStore) InstallInto(cfg *tls.Config) {
	if s.certList == nil {
		panic("CertStore::InstallInto(): no certificate list bound, the firmware was built without its trust bundle")
	}
	InstallTrustAnchorSource(cfg, s)
}

// FindTrustAnchor looks hashedDN up and decodes the first matching root.
// A previously held anchor is dropped.
func (s *CertStore) FindTrustAnchor(hashedDN []byte) *TrustAnchor {
	if s.certList == nil {
		panic("CertStore::FindTrustAnchor(): no certificate list bound, the firmware was built without its trust bundle")
	}

	s.held = nil

	i, ok := s.certList.find(hashedDN)
	if !ok {
		return nil
	}

	der := s.certList.certs[i]
	if len(der) > s.maxDecodeSize {
		s.logger.Errorf("CertStore::FindTrustAnchor(): cert %d is %d bytes long, over the %d bytes decode limit", i, len(der), s.maxDecodeSize)
		return nil
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		s.logger.Errorf("CertStore::FindTrustAnchor(): fail to ParseCertificate() cert %d: %v", i, err)
		return nil
	}

	index := s.certList.indexes[i]
	s.held = &TrustAnchor{
		DN:        index[:],
		CA:        cert.IsCA,
		PublicKey: cert.PublicKey,
		Cert:      cert,
	}
	return s.held
}

func (s *CertStore) FreeTrustAnchor(anchor *TrustAnchor) {
	if anchor != nil && anchor != s.held {
		s.logger.Warn("CertStore::FreeTrustAnchor(): released anchor is not the one held")
	}
	s.held = nil
}

// Held returns the number of decoded roots the store currently holds.
func (s *CertStore) Held() int {
	if s.held == nil {
		return 0
	}
	return 1
}
