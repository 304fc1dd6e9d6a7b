package bundle_test

import (
	"crypto/x509"
	"os"
	"testing"

	"github.com/internet-of-plants/iop/pkg/cert"
	"github.com/internet-of-plants/iop/pkg/cert/bundle"
	"github.com/internet-of-plants/iop/pkg/pkix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertList(t *testing.T) {
	list := bundle.CertList()
	require.Equal(t, 2, list.Count())

	subjects := []string{"ISRG Root X1", "ISRG Root X2"}
	for i := 0; i < list.Count(); i++ {
		c := list.Cert(i)
		parsed, err := x509.ParseCertificate(c.DER)
		require.NoError(t, err)
		assert.Equal(t, subjects[i], parsed.Subject.CommonName)
		assert.True(t, parsed.IsCA)

		hash, err := pkix.SubjectHash(c.DER)
		require.NoError(t, err)
		assert.Equal(t, hash, c.Index)
	}
}

func TestCertListMatchesRoots(t *testing.T) {
	pem, err := os.ReadFile("roots.pem")
	require.NoError(t, err)
	fromPEM, err := cert.CertListFromPEM(pem)
	require.NoError(t, err)

	list := bundle.CertList()
	require.Equal(t, fromPEM.Count(), list.Count())
	for i := 0; i < list.Count(); i++ {
		assert.Equal(t, fromPEM.Cert(i), list.Cert(i))
	}
}

func TestCertStoreResolvesBundle(t *testing.T) {
	store := cert.NewCertStore()
	store.SetCertList(bundle.CertList())

	c := bundle.CertList().Cert(0)
	anchor := store.FindTrustAnchor(c.Index[:])
	require.NotNil(t, anchor)
	assert.Equal(t, "ISRG Root X1", anchor.Cert.Subject.CommonName)
	assert.Equal(t, 1, store.Held())

	store.FreeTrustAnchor(anchor)
	assert.Zero(t, store.Held())
}
