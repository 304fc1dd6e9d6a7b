package device

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/internet-of-plants/iop/pkg/api"
	"github.com/internet-of-plants/iop/pkg/logsink"
	"github.com/internet-of-plants/iop/pkg/model"
	"github.com/internet-of-plants/iop/pkg/sensor"
	"github.com/internet-of-plants/iop/pkg/storage"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMeasureInterval = time.Minute
	DefaultUpgradeInterval = time.Hour
	DefaultRetryAttempts   = 3
	DefaultRetryDelay      = time.Second
)

var errConnectionIssues = errors.New("connection issues")

// API is the server surface the device needs.
type API interface {
	Authenticate(ctx context.Context, username, password string) (model.AuthToken, api.NetworkStatus)
	RegisterEvent(ctx context.Context, token model.AuthToken, event model.Event) api.NetworkStatus
	ReportPanic(ctx context.Context, token model.AuthToken, data model.PanicData) api.NetworkStatus
	RegisterLog(ctx context.Context, token model.AuthToken, text string) api.NetworkStatus
	Upgrade(ctx context.Context, token model.AuthToken) api.NetworkStatus
}

// Device measures the environment on a schedule and reports to the server.
type Device struct {
	api         API
	storage     storage.Storage
	sensor      sensor.Sensor
	credentials Credentials
	logs        *logsink.Hook

	measureInterval time.Duration
	upgradeInterval time.Duration
	retryAttempts   uint
	retryDelay      time.Duration
	now             func() time.Time

	token       *model.AuthToken
	lastUpgrade time.Time

	logger *logrus.Entry
}

type Option func(*Device)

func WithMeasureInterval(interval time.Duration) Option {
	return func(d *Device) {
		d.measureInterval = interval
	}
}

func WithUpgradeInterval(interval time.Duration) Option {
	return func(d *Device) {
		d.upgradeInterval = interval
	}
}

// WithRetry sets how many times a call failing with connection issues is
// attempted. attempts must be at least 1.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(d *Device) {
		d.retryAttempts = attempts
		d.retryDelay = delay
	}
}

// WithLogForwarding ships the lines captured by hook after each measurement.
func WithLogForwarding(hook *logsink.Hook) Option {
	return func(d *Device) {
		d.logs = hook
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Device) {
		d.now = now
	}
}

func NewDevice(client API, store storage.Storage, s sensor.Sensor, credentials Credentials, opts ...Option) *Device {
	if client == nil {
		panic("api is required")
	}
	if store == nil {
		panic("storage is required")
	}
	if s == nil {
		panic("sensor is required")
	}

	d := &Device{
		api:             client,
		storage:         store,
		sensor:          s,
		credentials:     credentials,
		measureInterval: DefaultMeasureInterval,
		upgradeInterval: DefaultUpgradeInterval,
		retryAttempts:   DefaultRetryAttempts,
		retryDelay:      DefaultRetryDelay,
		now:             time.Now,
		logger:          logrus.WithField("target", "DEVICE"),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.retryAttempts == 0 {
		panic("retry attempts must be at least 1")
	}

	return d
}

// Run steps the device every measure interval until ctx is done.
func (d *Device) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.measureInterval)
	defer ticker.Stop()

	for {
		d.Step(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Step does one measure and report cycle. A panic inside the cycle is
// reported to the server and swallowed.
func (d *Device) Step(ctx context.Context) {
	defer d.recoverPanic(ctx)

	token, ok := d.ensureToken(ctx)
	if !ok {
		return
	}

	event := d.sensor.Measure()
	status := d.withRetry(ctx, func() api.NetworkStatus {
		return d.api.RegisterEvent(ctx, token, event)
	})
	if !d.handle(ctx, "RegisterEvent", token, status) {
		return
	}

	if d.upgradeDue() {
		d.upgrade(ctx, token)
	}

	if d.logs != nil {
		d.handle(ctx, "RegisterLog", token, d.logs.Flush(ctx, d.api, token))
	}
}

// ensureToken returns the auth token, loading it from storage or logging in
// when the device has none.
func (d *Device) ensureToken(ctx context.Context) (model.AuthToken, bool) {
	if d.token != nil {
		return *d.token, true
	}

	token, found, err := d.storage.Token(ctx)
	if err != nil {
		d.logger.Errorf("Device::ensureToken(): fail to Token(): %v", err)
		if errors.Is(err, model.ErrCorruptedToken) {
			d.removeToken(ctx)
		}
	}
	if err == nil && found {
		d.token = &token
		return token, true
	}

	var status api.NetworkStatus
	status = d.withRetry(ctx, func() api.NetworkStatus {
		token, status = d.api.Authenticate(ctx, d.credentials.Username, d.credentials.Password)
		return status
	})
	if status == api.StatusOK && token.IsEmpty() {
		d.logger.Error("Device::ensureToken(): server accepted the credentials without a token")
		status = api.StatusBrokenServer
	}
	if status != api.StatusOK {
		d.handle(ctx, "Authenticate", model.AuthToken{}, status)
		return model.AuthToken{}, false
	}

	if err := d.storage.SetToken(ctx, token); err != nil {
		d.logger.Errorf("Device::ensureToken(): fail to SetToken(): %v", err)
	}
	d.token = &token
	d.logger.Info("Device::ensureToken(): authenticated")
	return token, true
}

func (d *Device) removeToken(ctx context.Context) {
	d.token = nil
	if err := d.storage.RemoveToken(ctx); err != nil {
		d.logger.Errorf("Device::removeToken(): fail to RemoveToken(): %v", err)
	}
}

func (d *Device) upgradeDue() bool {
	return d.lastUpgrade.IsZero() || d.now().Sub(d.lastUpgrade) >= d.upgradeInterval
}

func (d *Device) upgrade(ctx context.Context, token model.AuthToken) {
	d.lastUpgrade = d.now()
	d.handle(ctx, "Upgrade", token, d.api.Upgrade(ctx, token))
}

// withRetry repeats op while it reports connection issues. Every other
// status, CLIENT_BUFFER_OVERFLOW included, is final.
// When ctx is done before the first attempt, op never runs and the result is
// StatusConnectionIssues.
func (d *Device) withRetry(ctx context.Context, op func() api.NetworkStatus) api.NetworkStatus {
	status := api.StatusConnectionIssues
	_ = retry.Do(
		func() error {
			status = op()
			if status == api.StatusConnectionIssues {
				return errConnectionIssues
			}
			return nil
		},
		retry.Attempts(d.retryAttempts),
		retry.Delay(d.retryDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	return status
}

// handle reacts to the outcome of op and returns whether the cycle can go on.
func (d *Device) handle(ctx context.Context, op string, token model.AuthToken, status api.NetworkStatus) bool {
	switch status {
	case api.StatusOK:
		return true
	case api.StatusForbidden:
		d.logger.Warnf("Device::handle(): %s was refused, dropping the auth token", op)
		d.removeToken(ctx)
		return false
	case api.StatusMustUpgrade:
		if op == "Upgrade" || op == "Authenticate" {
			d.logger.Errorf("Device::handle(): %s requires an upgrade that can't be done now", op)
			return false
		}
		d.logger.Warnf("Device::handle(): %s requires a firmware upgrade", op)
		d.upgrade(ctx, token)
		return false
	case api.StatusClientBufferOverflow:
		d.logger.Errorf("Device::handle(): %s payload doesn't fit its buffer, the firmware must be fixed", op)
		return false
	case api.StatusConnectionIssues:
		d.logger.Warnf("Device::handle(): %s failed, server unreachable", op)
		return false
	case api.StatusBrokenServer:
		d.logger.Errorf("Device::handle(): %s failed, server misbehaved", op)
		return false
	default:
		d.logger.Errorf("Device::handle(): %s returned unknown status %s", op, status)
		return false
	}
}
