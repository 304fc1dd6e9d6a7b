package network

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/internet-of-plants/iop/pkg/model"
)

var (
	ErrConnection      = errors.New("")
	ErrPayloadTooLarge = errors.New("")
	ErrSink            = errors.New("")
)

const (
	headerMacAddress = "MAC_ADDRESS"
	headerVersion    = "VERSION"
	headerBootID     = "BOOT_ID"
)

// Request is one call against the IoP server.
type Request struct {
	Method      string
	Path        string
	Token       *model.AuthToken
	ContentType string
	Body        []byte

	// Sink receives the body of a 200 response instead of Response.Payload.
	// It is not bound by the payload limit.
	Sink io.Writer
}

type Response struct {
	Code    int
	Payload []byte
	Header  http.Header
}

// Transport issues a single request. Errors wrap ErrConnection when the
// server could not be talked to, ErrPayloadTooLarge when the response does not
// fit the payload limit and ErrSink when the sink rejected the body.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}

// Identity is sent along every request so the server can tell devices and
// firmware builds apart.
type Identity struct {
	MacAddress  model.MacAddress
	FirmwareMD5 model.MD5Hash
	BootID      string
}

// apply sets the identity headers with their exact names. Canonicalizing them
// would turn MAC_ADDRESS into Mac_address.
func (i Identity) apply(header http.Header) {
	if !i.MacAddress.IsEmpty() {
		header[headerMacAddress] = []string{i.MacAddress.String()}
	}
	if !i.FirmwareMD5.IsEmpty() {
		header[headerVersion] = []string{i.FirmwareMD5.String()}
	}
	if i.BootID != "" {
		header[headerBootID] = []string{i.BootID}
	}
}

func (r Request) url(server *url.URL) string {
	return strings.TrimSuffix(server.String(), "/") + r.Path
}

func (r Request) newHTTPRequest(ctx context.Context, server *url.URL, identity Identity) (*http.Request, error) {
	var body io.Reader
	if r.Body != nil {
		// The caller reuses its encoding buffer as soon as Do returns.
		body = bytes.NewReader(bytes.Clone(r.Body))
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.url(server), body)
	if err != nil {
		return nil, err
	}

	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}
	if r.Token != nil {
		req.Header.Set("Authorization", "Bearer "+r.Token.String())
	}
	identity.apply(req.Header)
	return req, nil
}

func errorf(base error, format string, args ...any) error {
	return fmt.Errorf("%s%w", fmt.Sprintf(format, args...), base)
}

// sinkError tells failures of Request.Sink apart from failures reading the
// response body.
type sinkError struct {
	err error
}

func (e *sinkError) Error() string {
	return e.err.Error()
}

type sinkWriter struct {
	w io.Writer
}

func (s sinkWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, &sinkError{err: err}
	}
	return n, nil
}
