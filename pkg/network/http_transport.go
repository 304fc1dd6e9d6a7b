package network

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/internet-of-plants/iop/pkg/cert"
	"github.com/sirupsen/logrus"
)

// DefaultMaxPayloadSize bounds responses read into memory.
const DefaultMaxPayloadSize = 2048

type HTTPTransport struct {
	server         *url.URL
	timeout        time.Duration
	trustAnchors   cert.TrustAnchorSource
	identity       Identity
	maxPayloadSize int64
	client         *http.Client
	logger         *logrus.Entry
}

type HTTPTransportOption func(*HTTPTransport)

// WithTimeout bounds a whole request, handshake included. Zero keeps the
// defaults of net/http.
func WithTimeout(timeout time.Duration) HTTPTransportOption {
	return func(t *HTTPTransport) {
		t.timeout = timeout
	}
}

// WithTrustAnchorSource verifies the server through src instead of the
// system roots.
func WithTrustAnchorSource(src cert.TrustAnchorSource) HTTPTransportOption {
	return func(t *HTTPTransport) {
		t.trustAnchors = src
	}
}

func WithIdentity(identity Identity) HTTPTransportOption {
	return func(t *HTTPTransport) {
		t.identity = identity
	}
}

func WithMaxPayloadSize(size int64) HTTPTransportOption {
	return func(t *HTTPTransport) {
		t.maxPayloadSize = size
	}
}

func NewHTTPTransport(server string, opts ...HTTPTransportOption) (*HTTPTransport, error) {
	u, err := url.Parse(server)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	t := &HTTPTransport{
		server:         u,
		maxPayloadSize: DefaultMaxPayloadSize,
		logger:         logrus.WithField("target", "NETWORK"),
	}
	for _, opt := range opts {
		opt(t)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	transport.MaxIdleConnsPerHost = -1
	if t.trustAnchors != nil {
		tlsConfig := &tls.Config{
			ServerName: u.Hostname(),
			MinVersion: tls.VersionTLS12,
		}
		cert.InstallTrustAnchorSource(tlsConfig, t.trustAnchors)
		transport.TLSClientConfig = tlsConfig
	}
	t.client = &http.Client{Timeout: t.timeout, Transport: transport}

	return t, nil
}

func (t *HTTPTransport) Do(ctx context.Context, r Request) (Response, error) {
	req, err := r.newHTTPRequest(ctx, t.server, t.identity)
	if err != nil {
		return Response{}, errorf(ErrConnection, "create http request: %v", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Debugf("HTTPTransport::Do(): %s %s failed: %v", r.Method, r.Path, err)
		return Response{}, errorf(ErrConnection, "send http request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	result := Response{Code: resp.StatusCode, Header: resp.Header}
	if r.Sink != nil && resp.StatusCode == http.StatusOK {
		n, err := io.Copy(sinkWriter{w: r.Sink}, resp.Body)
		if err != nil {
			var writeErr *sinkError
			if errors.As(err, &writeErr) {
				return result, errorf(ErrSink, "write response body: %v", writeErr.err)
			}
			return result, errorf(ErrConnection, "read response body: %v", err)
		}
		t.logger.Debugf("HTTPTransport::Do(): %s %s streamed %d bytes", r.Method, r.Path, n)
		return result, nil
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, t.maxPayloadSize+1))
	if err != nil {
		return result, errorf(ErrConnection, "read response body: %v", err)
	}
	if int64(len(payload)) > t.maxPayloadSize {
		return result, errorf(ErrPayloadTooLarge, "response body over %d bytes", t.maxPayloadSize)
	}
	result.Payload = payload

	t.logger.Debugf("HTTPTransport::Do(): %s %s returned %d", r.Method, r.Path, resp.StatusCode)
	return result, nil
}
