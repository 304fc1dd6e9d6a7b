package cert

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/internet-of-plants/iop/pkg/pkix"
	"github.com/samber/lo"
)

var ErrInvalidCertList = errors.New("invalid certificate list")

// Cert is one trusted root as shipped in the firmware image: its DER encoding
// and the SHA-256 of its subject name.
type Cert struct {
	DER   []byte
	Index [pkix.HashSize]byte
}

func (c Cert) Size() int {
	return len(c.DER)
}

// CertList is the read-only trust bundle. Entries keep the order they were
// given in, which is also the lookup priority.
type CertList struct {
	certs   [][]byte
	indexes [][pkix.HashSize]byte
	sizes   []int
}

// NewCertList builds a list out of the parallel arrays emitted by cert-gen.
func NewCertList(certs [][]byte, indexes [][pkix.HashSize]byte, sizes []int) (*CertList, error) {
	if len(certs) != len(indexes) || len(certs) != len(sizes) {
		return nil, fmt.Errorf("%d certs, %d indexes, %d sizes: %w", len(certs), len(indexes), len(sizes), ErrInvalidCertList)
	}
	for i := range certs {
		if len(certs[i]) != sizes[i] {
			return nil, fmt.Errorf("cert %d is %d bytes long, declared %d: %w", i, len(certs[i]), sizes[i], ErrInvalidCertList)
		}
	}
	return &CertList{certs: certs, indexes: indexes, sizes: sizes}, nil
}

func NewCertListFromCerts(certs ...Cert) *CertList {
	return &CertList{
		certs:   lo.Map(certs, func(c Cert, _ int) []byte { return c.DER }),
		indexes: lo.Map(certs, func(c Cert, _ int) [pkix.HashSize]byte { return c.Index }),
		sizes:   lo.Map(certs, func(c Cert, _ int) int { return c.Size() }),
	}
}

// CertListFromPEM indexes every certificate of a PEM bundle by its subject hash.
func CertListFromPEM(bundle []byte) (*CertList, error) {
	ders, err := pkix.ParseCertificate(bundle)
	if err != nil {
		return nil, err
	}

	certs := make([]Cert, 0, len(ders))
	for i, der := range ders {
		index, err := pkix.SubjectHash(der)
		if err != nil {
			return nil, fmt.Errorf("cert %d: %w", i, err)
		}
		certs = append(certs, Cert{DER: der, Index: index})
	}
	return NewCertListFromCerts(certs...), nil
}

func (l *CertList) Count() int {
	return len(l.certs)
}

func (l *CertList) Cert(i int) Cert {
	return Cert{DER: l.certs[i], Index: l.indexes[i]}
}

// find returns the first entry whose index equals hash.
func (l *CertList) find(hash []byte) (int, bool) {
	if len(hash) != pkix.HashSize {
		return 0, false
	}
	for i := range l.indexes {
		if bytes.Equal(l.indexes[i][:], hash) {
			return i, true
		}
	}
	return 0, false
}
