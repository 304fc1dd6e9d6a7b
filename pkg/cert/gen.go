package cert

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"
)

const bytesPerLine = 12

var goSourceTemplate = template.Must(template.New("certificates").Funcs(template.FuncMap{
	"hex":      formatBytes,
	"hexLines": formatByteLines,
}).Parse(`// Code generated by iop-device cert-gen. DO NOT EDIT.

package {{ .Package }}

import "github.com/internet-of-plants/iop/pkg/cert"
{{ range $i, $c := .Certs }}
// {{ $c.Subject }}
var cert{{ $i }} = []byte{ {{- hexLines $c.DER -}} }
{{ end }}
var certs = [][]byte{
{{- range $i, $c := .Certs }}
	cert{{ $i }},
{{- end }}
}

var indexes = [][32]byte{
{{- range .Certs }}
	{ {{- hex .Index -}} },
{{- end }}
}

var sizes = []int{
{{- range .Certs }}
	{{ .Size }},
{{- end }}
}

// CertList returns the trust bundle compiled into the firmware.
func CertList() *cert.CertList {
	list, err := cert.NewCertList(certs, indexes, sizes)
	if err != nil {
		panic(err)
	}
	return list
}
`))

type goSourceCert struct {
	Subject string
	DER     []byte
	Index   []byte
	Size    int
}

// WriteGoSource writes list as a Go file of package pkg exposing CertList().
// subjects labels each entry in the generated comments and may be shorter than
// the list.
func WriteGoSource(w io.Writer, pkg string, list *CertList, subjects []string) error {
	certs := make([]goSourceCert, 0, list.Count())
	for i := 0; i < list.Count(); i++ {
		c := list.Cert(i)
		subject := fmt.Sprintf("certificate %d", i)
		if i < len(subjects) {
			subject = subjects[i]
		}
		certs = append(certs, goSourceCert{
			Subject: strings.ReplaceAll(subject, "\n", " "),
			DER:     c.DER,
			Index:   c.Index[:],
			Size:    c.Size(),
		})
	}

	source := bytes.Buffer{}
	err := goSourceTemplate.Execute(&source, struct {
		Package string
		Certs   []goSourceCert
	}{
		Package: pkg,
		Certs:   certs,
	})
	if err != nil {
		return err
	}

	formatted, err := format.Source(source.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(formatted)
	return err
}

func formatBytes(data []byte) string {
	b := strings.Builder{}
	for i, v := range data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02x", v)
	}
	return b.String()
}

// formatByteLines is formatBytes wrapped at bytesPerLine, one element list
// per line.
func formatByteLines(data []byte) string {
	b := strings.Builder{}
	for len(data) > 0 {
		n := min(len(data), bytesPerLine)
		b.WriteString("\n\t")
		b.WriteString(formatBytes(data[:n]))
		b.WriteString(",")
		data = data[n:]
	}
	b.WriteString("\n")
	return b.String()
}
