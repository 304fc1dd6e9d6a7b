package device

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/internet-of-plants/iop/pkg/api"
	"github.com/internet-of-plants/iop/pkg/model"
	"github.com/internet-of-plants/iop/pkg/util"
)

type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type RetryConfig struct {
	Attempts uint          `yaml:"attempts"`
	Delay    time.Duration `yaml:"delay"`
}

type LogForwardingConfig struct {
	Capacity int     `yaml:"capacity"`
	Rate     float64 `yaml:"rate"` // flushes per second
	Burst    int     `yaml:"burst"`
}

type FirmwareConfig struct {
	Dir     string `yaml:"dir"`
	MaxSize int64  `yaml:"max_size"`
}

type BudgetsConfig struct {
	Authenticate int `yaml:"authenticate"`
	Event        int `yaml:"event"`
	Panic        int `yaml:"panic"`
	Log          int `yaml:"log"`
}

type Config struct {
	Server          string                    `yaml:"server"`
	Timeout         time.Duration             `yaml:"timeout"`
	LogLevel        string                    `yaml:"log_level"`
	TrustBundle     string                    `yaml:"trust_bundle"` // PEM file overriding the built-in bundle
	MacAddress      string                    `yaml:"mac_address"`
	Storage         util.SQLiteDatabaseConfig `yaml:"storage"`
	Credentials     Credentials               `yaml:"credentials"`
	MeasureInterval time.Duration             `yaml:"measure_interval"`
	UpgradeInterval time.Duration             `yaml:"upgrade_interval"`
	Retry           RetryConfig               `yaml:"retry"`
	Budgets         BudgetsConfig             `yaml:"budgets"`
	LogForwarding   LogForwardingConfig       `yaml:"log_forwarding"`
	Firmware        FirmwareConfig            `yaml:"firmware"`
	OTLPEndpoint    string                    `yaml:"otlp_endpoint"`
}

type credentialsRule struct{}

func (r credentialsRule) Validate(value interface{}) error {
	c, ok := value.(Credentials)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

type retryRule struct{}

func (r retryRule) Validate(value interface{}) error {
	c, ok := value.(RetryConfig)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.Attempts, validation.Required),
		validation.Field(&c.Delay, validation.Min(time.Duration(0))),
	)
}

type budgetsRule struct{}

func (r budgetsRule) Validate(value interface{}) error {
	c, ok := value.(BudgetsConfig)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.Authenticate, validation.Min(0)),
		validation.Field(&c.Event, validation.Min(0)),
		validation.Field(&c.Panic, validation.Min(0)),
		validation.Field(&c.Log, validation.Min(0)),
	)
}

// logForwardingRule keeps the pending logs within what one RegisterLog call
// accepts.
type logForwardingRule struct {
	logBudget int
}

func (r logForwardingRule) Validate(value interface{}) error {
	c, ok := value.(LogForwardingConfig)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.Capacity, validation.Min(0), validation.Max(r.logBudget)),
		validation.Field(&c.Rate, validation.Min(0.0)),
		validation.Field(&c.Burst, validation.Min(0)),
	)
}

type firmwareRule struct{}

func (r firmwareRule) Validate(value interface{}) error {
	c, ok := value.(FirmwareConfig)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.MaxSize, validation.Min(int64(0))),
	)
}

type storageRule struct{}

func (r storageRule) Validate(value interface{}) error {
	c, ok := value.(util.SQLiteDatabaseConfig)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.Path, validation.Required),
	)
}

// LogBudget is the log budget the API client ends up with.
func (b BudgetsConfig) LogBudget() int {
	if b.Log > 0 {
		return b.Log
	}
	return api.DefaultLogBudget
}

func ValidateConfig(cfg Config) error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Server, validation.Required, is.URL),
		validation.Field(&cfg.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&cfg.LogLevel, validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal", "panic")),
		validation.Field(&cfg.MacAddress, validation.Length(0, model.MacAddressSize), is.MAC),
		validation.Field(&cfg.Storage, &storageRule{}),
		validation.Field(&cfg.Credentials, &credentialsRule{}),
		validation.Field(&cfg.MeasureInterval, validation.Required, validation.Min(time.Second)),
		validation.Field(&cfg.UpgradeInterval, validation.Required, validation.Min(time.Minute)),
		validation.Field(&cfg.Retry, &retryRule{}),
		validation.Field(&cfg.Budgets, &budgetsRule{}),
		validation.Field(&cfg.LogForwarding, &logForwardingRule{logBudget: cfg.Budgets.LogBudget()}),
		validation.Field(&cfg.Firmware, &firmwareRule{}),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
