package api

import (
	"context"
	"net/http"
	"sync"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/goccy/go-json"
	"github.com/internet-of-plants/iop/pkg/fixed"
	"github.com/internet-of-plants/iop/pkg/model"
	"github.com/internet-of-plants/iop/pkg/network"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultAuthenticateBudget = 256
	DefaultEventBudget        = 256
	DefaultPanicBudget        = 2048
	DefaultLogBudget          = 1024
)

// Budgets are the most bytes each request body may take once encoded.
type Budgets struct {
	Authenticate int
	Event        int
	Panic        int
	Log          int
}

func DefaultBudgets() Budgets {
	return Budgets{
		Authenticate: DefaultAuthenticateBudget,
		Event:        DefaultEventBudget,
		Panic:        DefaultPanicBudget,
		Log:          DefaultLogBudget,
	}
}

func (b Budgets) largest() int {
	return max(b.Authenticate, b.Event, b.Panic, b.Log)
}

// Client is the device side of the IoP server API. Every operation makes a
// single round trip, never retries, and reports its outcome as a NetworkStatus.
//
// Request bodies are encoded into one scratch buffer allocated up front, so
// operations are serialized.
type Client struct {
	transport network.Transport
	updater   Updater
	budgets   Budgets

	mtx    sync.Mutex
	buffer *fixed.Buffer

	requestCount metric.Int64Counter
	logger       *logrus.Entry
}

type ClientOption func(*Client)

func WithBudgets(budgets Budgets) ClientOption {
	return func(c *Client) {
		c.budgets = budgets
	}
}

func WithUpdater(updater Updater) ClientOption {
	return func(c *Client) {
		c.updater = updater
	}
}

func NewClient(transport network.Transport, opts ...ClientOption) *Client {
	if transport == nil {
		panic("transport is required")
	}

	c := &Client{
		transport:    transport,
		budgets:      DefaultBudgets(),
		requestCount: otlp_util.NewInt64Counter("iop.api.request.count", metric.WithDescription("The total number of requests issued to the IoP server")),
		logger:       logrus.WithField("target", "API"),
	}
	for _, opt := range opts {
		opt(c)
	}
	// One more byte for the newline the JSON encoder appends.
	c.buffer = fixed.NewBuffer(c.budgets.largest() + 1)

	return c
}

// Authenticate exchanges the user credentials for an AuthToken. The token is
// only meaningful when the status is StatusOK.
func (c *Client) Authenticate(ctx context.Context, username, password string) (model.AuthToken, NetworkStatus) {
	ctx, span := otlp_util.Start(ctx, "api/client.Authenticate")
	defer span.End()

	c.mtx.Lock()
	defer c.mtx.Unlock()

	body, status := c.encodeJSON("Authenticate", c.budgets.Authenticate, loginRequest{Email: username, Password: password})
	if status != StatusOK {
		return model.AuthToken{}, c.done(ctx, routeLogin, status)
	}

	resp, err := c.transport.Do(ctx, network.Request{
		Method:      http.MethodPost,
		Path:        routeLogin,
		ContentType: contentTypeJSON,
		Body:        body,
	})
	status = ClassifyResponse(resp, err)
	if status != StatusOK {
		return model.AuthToken{}, c.done(ctx, routeLogin, status)
	}

	token, ok := c.parseToken(resp.Payload)
	if !ok {
		return model.AuthToken{}, c.done(ctx, routeLogin, StatusBrokenServer)
	}
	return token, c.done(ctx, routeLogin, StatusOK)
}

func (c *Client) parseToken(payload []byte) (model.AuthToken, bool) {
	var login loginResponse
	if err := json.Unmarshal(payload, &login); err != nil {
		c.logger.Errorf("Client::Authenticate(): fail to Unmarshal() login response: %v", err)
		return model.AuthToken{}, false
	}
	if login.Token == nil || *login.Token == "" {
		c.logger.Error("Client::Authenticate(): login response has no token")
		return model.AuthToken{}, false
	}

	token, err := model.NewAuthToken([]byte(*login.Token))
	if err != nil {
		c.logger.Errorf("Client::Authenticate(): fail to NewAuthToken(): %v", err)
		return model.AuthToken{}, false
	}
	return token, true
}

func (c *Client) RegisterEvent(ctx context.Context, token model.AuthToken, event model.Event) NetworkStatus {
	ctx, span := otlp_util.Start(ctx, "api/client.RegisterEvent")
	defer span.End()

	c.mtx.Lock()
	defer c.mtx.Unlock()

	body, status := c.encodeJSON("RegisterEvent", c.budgets.Event, newEventPayload(event))
	if status != StatusOK {
		return c.done(ctx, routeEvent, status)
	}

	resp, err := c.transport.Do(ctx, network.Request{
		Method:      http.MethodPost,
		Path:        routeEvent,
		Token:       &token,
		ContentType: contentTypeJSON,
		Body:        body,
	})
	return c.done(ctx, routeEvent, ClassifyResponse(resp, err))
}

func (c *Client) ReportPanic(ctx context.Context, token model.AuthToken, data model.PanicData) NetworkStatus {
	ctx, span := otlp_util.Start(ctx, "api/client.ReportPanic")
	defer span.End()

	c.mtx.Lock()
	defer c.mtx.Unlock()

	body, status := c.encodeJSON("ReportPanic", c.budgets.Panic, newPanicPayload(data))
	if status != StatusOK {
		return c.done(ctx, routePanic, status)
	}

	resp, err := c.transport.Do(ctx, network.Request{
		Method:      http.MethodPost,
		Path:        routePanic,
		Token:       &token,
		ContentType: contentTypeJSON,
		Body:        body,
	})
	return c.done(ctx, routePanic, ClassifyResponse(resp, err))
}

// RegisterLog sends raw log text. The text is bound by the log budget.
func (c *Client) RegisterLog(ctx context.Context, token model.AuthToken, text string) NetworkStatus {
	ctx, span := otlp_util.Start(ctx, "api/client.RegisterLog")
	defer span.End()

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if err := c.buffer.Reset(c.budgets.Log); err != nil {
		c.logger.Errorf("Client::RegisterLog(): fail to Reset(): %v", err)
		return c.done(ctx, routeLog, StatusClientBufferOverflow)
	}
	if _, err := c.buffer.WriteString(text); err != nil {
		c.logger.Errorf("Client::RegisterLog(): %d bytes of log do not fit %d: %v", len(text), c.budgets.Log, err)
		return c.done(ctx, routeLog, StatusClientBufferOverflow)
	}

	resp, err := c.transport.Do(ctx, network.Request{
		Method:      http.MethodPost,
		Path:        routeLog,
		Token:       &token,
		ContentType: contentTypeText,
		Body:        c.buffer.Bytes(),
	})
	return c.done(ctx, routeLog, ClassifyResponse(resp, err))
}

// Upgrade asks the server for a newer firmware and streams it into the
// updater. StatusOK covers both "no update available" and an installed update;
// in the latter case the updater is restarted before returning.
func (c *Client) Upgrade(ctx context.Context, token model.AuthToken) NetworkStatus {
	if c.updater == nil {
		panic("Client::Upgrade(): updater is required")
	}

	ctx, span := otlp_util.Start(ctx, "api/client.Upgrade")
	defer span.End()

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if err := c.updater.Begin(); err != nil {
		c.logger.Errorf("Client::Upgrade(): fail to Begin(): %v", err)
		return c.done(ctx, routeUpdate, StatusBrokenServer)
	}

	resp, err := c.transport.Do(ctx, network.Request{
		Method: http.MethodGet,
		Path:   routeUpdate,
		Token:  &token,
		Sink:   c.updater,
	})
	if err == nil {
		switch resp.Code {
		case http.StatusNotModified, http.StatusNoContent:
			c.updater.Abort()
			c.logger.Info("Client::Upgrade(): no update available")
			return c.done(ctx, routeUpdate, StatusOK)
		case http.StatusOK:
			md5 := resp.Header.Get("x-MD5")
			if err := c.updater.Finish(md5); err != nil {
				c.logger.Errorf("Client::Upgrade(): fail to Finish() image %s: %v", md5, err)
				c.updater.Abort()
				return c.done(ctx, routeUpdate, StatusBrokenServer)
			}
			c.logger.Infof("Client::Upgrade(): firmware %s installed, restarting", md5)
			status := c.done(ctx, routeUpdate, StatusOK)
			c.updater.Restart()
			return status
		}
	}

	c.updater.Abort()
	return c.done(ctx, routeUpdate, ClassifyResponse(resp, err))
}

// encodeJSON encodes v straight into the scratch buffer. The returned bytes are
// only valid until the next operation.
func (c *Client) encodeJSON(name string, budget int, v any) ([]byte, NetworkStatus) {
	if err := c.buffer.Reset(budget + 1); err != nil {
		c.logger.Errorf("Client::%s(): fail to Reset(): %v", name, err)
		return nil, StatusClientBufferOverflow
	}

	if err := json.NewEncoder(c.buffer).Encode(v); err != nil {
		if c.buffer.Overflowed() {
			c.logger.Errorf("Client::%s(): payload doesn't fit %d bytes: %v", name, budget, err)
		} else {
			c.logger.Errorf("Client::%s(): fail to Encode(): %v", name, err)
		}
		return nil, StatusClientBufferOverflow
	}
	c.buffer.Truncate(c.buffer.Len() - 1)

	return c.buffer.Bytes(), StatusOK
}

func (c *Client) done(ctx context.Context, route string, status NetworkStatus) NetworkStatus {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("status", status.String()))
	c.requestCount.Add(ctx, 1, metric.WithAttributes(attribute.String("route", route), attribute.String("status", status.String())))

	if status != StatusOK && status != StatusClientBufferOverflow {
		c.logger.Warnf("%s returned %s", route, status)
	}
	return status
}
