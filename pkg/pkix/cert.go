package pkix

import (
	"bytes"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"time"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

const HashSize = sha256.Size

var (
	ErrInvalidCertificate = errors.New("invalid certificate")
	ErrNoCertificate      = errors.New("no certificate provided")
)

// Verify verifies the certificate chain of trust against a single trust anchor.
//
// The first certificate in the chain is the end-entity certificate.
// The rest of the certificates are intermediate certificates.
//
// dnsName is checked against the end-entity certificate when not empty.
// Key usage and other extensions are left to crypto/x509.
func Verify(certs []*x509.Certificate, anchor *x509.Certificate, dnsName string, now time.Time) error {
	if len(certs) == 0 {
		return ErrNoCertificate
	}
	if anchor == nil {
		return ErrInvalidCertificate
	}

	roots := x509.NewCertPool()
	roots.AddCert(anchor)

	intermediates := x509.NewCertPool()
	for _, cert := range certs[1:] {
		intermediates.AddCert(cert)
	}

	options := x509.VerifyOptions{
		Roots:         roots,
		Intermediates: intermediates,
		DNSName:       dnsName,
		CurrentTime:   now,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	if _, err := certs[0].Verify(options); err != nil {
		return err
	}

	return nil
}

// ParseCertificate decodes every PEM block of certRaw and returns the DER bytes
// of each certificate, in bundle order.
func ParseCertificate(certRaw []byte) ([][]byte, error) {
	ders := make([][]byte, 0, 4)
	for {
		pemBlock, remains := pem.Decode(certRaw)
		if pemBlock == nil {
			return nil, ErrInvalidCertificate
		}
		if pemBlock.Type == "CERTIFICATE" {
			ders = append(ders, pemBlock.Bytes)
		}

		remains = bytes.TrimSpace(remains)
		if len(remains) == 0 || len(pemBlock.Bytes) == 0 {
			break
		}
		certRaw = remains
	}

	if len(ders) == 0 {
		return nil, ErrNoCertificate
	}
	return ders, nil
}

// SubjectHash returns the SHA-256 of the DER encoded subject name of a
// certificate. Only the outer TBSCertificate fields are walked; the
// certificate is not decoded.
func SubjectHash(der []byte) ([HashSize]byte, error) {
	input := cryptobyte.String(der)

	var cert, tbs, subject cryptobyte.String
	if !input.ReadASN1(&cert, cryptobyte_asn1.SEQUENCE) ||
		!cert.ReadASN1(&tbs, cryptobyte_asn1.SEQUENCE) {
		return [HashSize]byte{}, ErrInvalidCertificate
	}

	if !tbs.SkipOptionalASN1(cryptobyte_asn1.Tag(0).Constructed().ContextSpecific()) || // version
		!tbs.SkipASN1(cryptobyte_asn1.INTEGER) || // serial number
		!tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) || // signature algorithm
		!tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) || // issuer
		!tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) || // validity
		!tbs.ReadASN1Element(&subject, cryptobyte_asn1.SEQUENCE) {
		return [HashSize]byte{}, ErrInvalidCertificate
	}

	return sha256.Sum256(subject), nil
}

// IssuerHash returns the SHA-256 of the DER encoded issuer name of cert, the key
// a trust anchor is looked up with.
func IssuerHash(cert *x509.Certificate) [HashSize]byte {
	return sha256.Sum256(cert.RawIssuer)
}
