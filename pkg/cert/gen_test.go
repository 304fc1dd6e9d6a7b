package cert_test

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"testing"

	"github.com/internet-of-plants/iop/pkg/cert"
	"github.com/internet-of-plants/iop/pkg/pkix"
	"github.com/internet-of-plants/iop/test/pki"
	"github.com/stretchr/testify/require"
)

func TestWriteGoSource(t *testing.T) {
	root := pki.NewRootCA(t, "IoP Root")
	list, err := cert.CertListFromPEM(root.PEM())
	require.NoError(t, err)

	out := bytes.Buffer{}
	require.NoError(t, cert.WriteGoSource(&out, "generated", list, []string{"CN=IoP Root"}))

	file, err := parser.ParseFile(token.NewFileSet(), "certificates.go", out.Bytes(), parser.ParseComments)
	require.NoError(t, err)
	require.Equal(t, "generated", file.Name.Name)

	source := out.String()
	require.Contains(t, source, "// Code generated by iop-device cert-gen. DO NOT EDIT.")
	require.Contains(t, source, "// CN=IoP Root")
	require.Contains(t, source, "func CertList() *cert.CertList")
	require.Contains(t, source, "0x30, 0x82")
}

func TestWriteGoSourceRoundTrip(t *testing.T) {
	root := pki.NewRootCA(t, "IoP Root")
	other := pki.NewRootCA(t, "IoP Other Root")
	list, err := cert.CertListFromPEM(append(root.PEM(), other.PEM()...))
	require.NoError(t, err)

	out := bytes.Buffer{}
	require.NoError(t, cert.WriteGoSource(&out, "generated", list, nil))

	file, err := parser.ParseFile(token.NewFileSet(), "certificates.go", out.Bytes(), 0)
	require.NoError(t, err)
	vars := generatedVars(file)

	var certs [][]byte
	for _, elt := range vars["certs"].Elts {
		certs = append(certs, byteLiteral(t, vars[elt.(*ast.Ident).Name]))
	}
	var indexes [][pkix.HashSize]byte
	for _, elt := range vars["indexes"].Elts {
		var index [pkix.HashSize]byte
		require.Equal(t, pkix.HashSize, copy(index[:], byteLiteral(t, elt.(*ast.CompositeLit))))
		indexes = append(indexes, index)
	}
	var sizes []int
	for _, elt := range vars["sizes"].Elts {
		size, err := strconv.Atoi(elt.(*ast.BasicLit).Value)
		require.NoError(t, err)
		sizes = append(sizes, size)
	}

	rebuilt, err := cert.NewCertList(certs, indexes, sizes)
	require.NoError(t, err)
	require.Equal(t, list.Count(), rebuilt.Count())
	for i := 0; i < list.Count(); i++ {
		require.Equal(t, list.Cert(i), rebuilt.Cert(i))
	}
}

// generatedVars maps every package level var of file to its composite literal.
func generatedVars(file *ast.File) map[string]*ast.CompositeLit {
	vars := map[string]*ast.CompositeLit{}
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			value := spec.(*ast.ValueSpec)
			if lit, ok := value.Values[0].(*ast.CompositeLit); ok {
				vars[value.Names[0].Name] = lit
			}
		}
	}
	return vars
}

func byteLiteral(t *testing.T, lit *ast.CompositeLit) []byte {
	require.NotNil(t, lit)
	data := make([]byte, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		v, err := strconv.ParseUint(elt.(*ast.BasicLit).Value, 0, 8)
		require.NoError(t, err)
		data = append(data, byte(v))
	}
	return data
}
