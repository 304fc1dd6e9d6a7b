package main

import (
	"context"
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	formatter "github.com/bluexlab/logrus-formatter"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/internet-of-plants/iop/pkg/api"
	"github.com/internet-of-plants/iop/pkg/cert"
	"github.com/internet-of-plants/iop/pkg/cert/bundle"
	"github.com/internet-of-plants/iop/pkg/config"
	"github.com/internet-of-plants/iop/pkg/device"
	"github.com/internet-of-plants/iop/pkg/firmware"
	"github.com/internet-of-plants/iop/pkg/logsink"
	"github.com/internet-of-plants/iop/pkg/model"
	"github.com/internet-of-plants/iop/pkg/network"
	"github.com/internet-of-plants/iop/pkg/pkix"
	"github.com/internet-of-plants/iop/pkg/sensor"
	"github.com/internet-of-plants/iop/pkg/storage"
	"github.com/internet-of-plants/iop/pkg/util"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const appName string = "iop-device"

// exitRestart tells the supervisor to start the freshly installed image.
const exitRestart = 3

type CLI struct {
	Run struct {
	} `cmd:"" help:"Run the device loop"`
	CertGen struct {
		Bundle  string `short:"b" long:"bundle" help:"PEM bundle of trusted root certificates" type:"existingfile" required:""`
		Out     string `short:"o" long:"out" help:"Path of the generated Go file" default:"certificates.go"`
		Package string `short:"p" long:"package" help:"Package name of the generated Go file" default:"certificates"`
	} `cmd:"" help:"Generate a Go source file embedding a trust bundle"`
	CertHash struct {
		Bundle string `short:"b" long:"bundle" help:"PEM bundle of trusted root certificates" type:"existingfile" required:""`
	} `cmd:"" help:"Print the subject hash of every certificate of a trust bundle"`
	Config string `short:"c" long:"config" help:"Path to the configuration file" default:"config.yaml"`
}

type App struct{}

func (a *App) Run() {
	formatter.InitLogger()

	var cli CLI
	ctx := kong.Parse(&cli, kong.UsageOnError())
	switch ctx.Command() {
	case "run":
		a.runDevice(cli)
	case "cert-gen":
		a.runCertGen(cli)
	case "cert-hash":
		a.runCertHash(cli)
	default:
	}
}

func (a *App) runDevice(cli CLI) {
	ctx := context.Background()

	var appConfig device.Config
	if err := config.FromFile(cli.Config, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}
	if err := device.ValidateConfig(appConfig); err != nil {
		logrus.Errorf("invalid config: %v", err)
		os.Exit(128)
	}
	if appConfig.LogLevel != "" {
		level, _ := logrus.ParseLevel(appConfig.LogLevel)
		logrus.SetLevel(level)
	}

	if endpoint := appConfig.OTLPEndpoint; endpoint != "" {
		exporter, err := otlp_util.InitExporter(
			otlp_util.WithContext(ctx),
			otlp_util.WithEndPoint(endpoint),
			otlp_util.WithServiceName(appName),
			otlp_util.WithInSecure(),
			otlp_util.WithErrorHandler(func(err error) {
				logrus.Warnf("OTLP error: %v", err)
			}),
		)
		if err != nil {
			logrus.Errorf("failed to initialize OTLP exporter: %v", err)
			os.Exit(128)
		}
		defer func() { _ = exporter.Shutdown(ctx) }()
	}

	certList, err := trustBundle(appConfig.TrustBundle)
	if err != nil {
		logrus.Errorf("failed to load trust bundle: %v", err)
		os.Exit(128)
	}
	certStore := cert.NewCertStore()
	certStore.SetCertList(certList)

	identity, err := newIdentity(appConfig.MacAddress)
	if err != nil {
		logrus.Errorf("failed to build device identity: %v", err)
		os.Exit(128)
	}

	transport, err := network.NewHTTPTransport(
		appConfig.Server,
		network.WithTimeout(appConfig.Timeout),
		network.WithTrustAnchorSource(certStore),
		network.WithIdentity(identity),
	)
	if err != nil {
		logrus.Errorf("failed to create transport: %v", err)
		os.Exit(128)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	restarting := atomic.Bool{}
	updaterOptions := []firmware.Option{
		firmware.WithRestart(func() {
			restarting.Store(true)
			stop()
		}),
	}
	if appConfig.Firmware.MaxSize > 0 {
		updaterOptions = append(updaterOptions, firmware.WithMaxSize(appConfig.Firmware.MaxSize))
	}
	updater := firmware.NewFileUpdater(appConfig.Firmware.Dir, updaterOptions...)

	client := api.NewClient(transport, api.WithBudgets(budgets(appConfig.Budgets)), api.WithUpdater(updater))

	dbStorage, err := storage.NewSQLiteStorageWithConfig(appConfig.Storage)
	if err != nil {
		logrus.Errorf("failed to open storage: %v", err)
		os.Exit(128)
	}
	defer func() { _ = dbStorage.Close() }()

	deviceOptions := []device.Option{
		device.WithMeasureInterval(appConfig.MeasureInterval),
		device.WithUpgradeInterval(appConfig.UpgradeInterval),
		device.WithRetry(appConfig.Retry.Attempts, appConfig.Retry.Delay),
	}
	if forwarding := appConfig.LogForwarding; forwarding.Capacity > 0 {
		hookOptions := []logsink.Option{logsink.WithBatchSize(appConfig.Budgets.LogBudget()), logsink.WithLevels(logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel, logrus.InfoLevel)}
		if forwarding.Rate > 0 {
			hookOptions = append(hookOptions, logsink.WithRate(rate.Limit(forwarding.Rate), max(forwarding.Burst, 1)))
		}
		hook := logsink.NewHook(forwarding.Capacity, hookOptions...)
		logrus.AddHook(hook)
		deviceOptions = append(deviceOptions, device.WithLogForwarding(hook))
	}

	dev := device.NewDevice(
		client,
		dbStorage,
		sensor.NewSimulated(time.Now().UnixNano()),
		appConfig.Credentials,
		deviceOptions...,
	)

	logrus.Infof("device %s started, reporting to %s", identity.BootID, appConfig.Server)
	_ = dev.Run(ctx)

	if restarting.Load() {
		logrus.Info("firmware installed, exiting for restart")
		_ = dbStorage.Close()
		os.Exit(exitRestart)
	}
	logrus.Info("device stopped")
}

func (a *App) runCertGen(cli CLI) {
	list, subjects, err := loadBundle(cli.CertGen.Bundle)
	if err != nil {
		logrus.Errorf("failed to load trust bundle: %v", err)
		os.Exit(128)
	}

	out, err := os.Create(cli.CertGen.Out)
	if err != nil {
		logrus.Errorf("failed to create %s: %v", cli.CertGen.Out, err)
		os.Exit(128)
	}
	defer func() { _ = out.Close() }()

	if err := cert.WriteGoSource(out, cli.CertGen.Package, list, subjects); err != nil {
		logrus.Errorf("failed to generate %s: %v", cli.CertGen.Out, err)
		os.Exit(1)
	}
	logrus.Infof("%d certificates written to %s", list.Count(), cli.CertGen.Out)
}

type certHash struct {
	Subject string `json:"subject"`
	Hash    string `json:"hash"`
	Size    int    `json:"size"`
}

func (a *App) runCertHash(cli CLI) {
	list, subjects, err := loadBundle(cli.CertHash.Bundle)
	if err != nil {
		logrus.Errorf("failed to load trust bundle: %v", err)
		os.Exit(128)
	}

	hashes := lo.Map(subjects, func(subject string, i int) certHash {
		c := list.Cert(i)
		return certHash{Subject: subject, Hash: hex.EncodeToString(c.Index[:]), Size: c.Size()}
	})
	fmt.Println(util.StructToJSON(hashes))
}

func loadBundle(path string) (*cert.CertList, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	ders, err := pkix.ParseCertificate(raw)
	if err != nil {
		return nil, nil, err
	}

	certs := make([]cert.Cert, 0, len(ders))
	subjects := make([]string, 0, len(ders))
	for _, der := range ders {
		parsed, err := x509.ParseCertificate(der)
		if err != nil {
			return nil, nil, err
		}
		hash, err := pkix.SubjectHash(der)
		if err != nil {
			return nil, nil, err
		}
		certs = append(certs, cert.Cert{DER: der, Index: hash})
		subjects = append(subjects, parsed.Subject.String())
	}
	return cert.NewCertListFromCerts(certs...), subjects, nil
}

// trustBundle returns the roots compiled into the binary, or the ones of the
// PEM file at path when set.
func trustBundle(path string) (*cert.CertList, error) {
	if path == "" {
		return bundle.CertList(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logrus.Infof("trust bundle overridden by %s", path)
	return cert.CertListFromPEM(raw)
}

func newIdentity(macAddress string) (network.Identity, error) {
	identity := network.Identity{BootID: util.NewUUID()}

	if macAddress != "" {
		mac, err := model.NewMacAddress(macAddress)
		if err != nil {
			return network.Identity{}, err
		}
		identity.MacAddress = mac
	}

	executable, err := os.Executable()
	if err != nil {
		return network.Identity{}, err
	}
	sum, err := firmware.FileMD5(executable)
	if err != nil {
		return network.Identity{}, err
	}
	if identity.FirmwareMD5, err = model.NewMD5Hash(sum); err != nil {
		return network.Identity{}, err
	}

	return identity, nil
}

func budgets(cfg device.BudgetsConfig) api.Budgets {
	b := api.DefaultBudgets()
	if cfg.Authenticate > 0 {
		b.Authenticate = cfg.Authenticate
	}
	if cfg.Event > 0 {
		b.Event = cfg.Event
	}
	if cfg.Panic > 0 {
		b.Panic = cfg.Panic
	}
	if cfg.Log > 0 {
		b.Log = cfg.Log
	}
	return b
}
