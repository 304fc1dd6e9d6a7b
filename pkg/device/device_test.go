package device_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/internet-of-plants/iop/pkg/api"
	"github.com/internet-of-plants/iop/pkg/device"
	"github.com/internet-of-plants/iop/pkg/logsink"
	"github.com/internet-of-plants/iop/pkg/model"
	mock_device "github.com/internet-of-plants/iop/test/mock/device"
	mock_sensor "github.com/internet-of-plants/iop/test/mock/sensor"
	mock_storage "github.com/internet-of-plants/iop/test/mock/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type DeviceTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	api         *mock_device.MockAPI
	storage     *mock_storage.MockStorage
	sensor      *mock_sensor.MockSensor
	credentials device.Credentials
	token       model.AuthToken
	event       model.Event
	now         time.Time
	device      *device.Device
}

func TestDevice(t *testing.T) {
	suite.Run(t, new(DeviceTestSuite))
}

func (s *DeviceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.api = mock_device.NewMockAPI(s.ctrl)
	s.storage = mock_storage.NewMockStorage(s.ctrl)
	s.sensor = mock_sensor.NewMockSensor(s.ctrl)
	s.credentials = device.Credentials{Username: "farmer@iop.test", Password: "s3cret"}
	s.now = time.Unix(1700000000, 0)

	token, err := model.NewAuthToken([]byte("token-1"))
	s.Require().NoError(err)
	s.token = token
	s.event = model.Event{AirTemperatureCelsius: 24, AirHumidityPercentage: 60, AirHeatIndexCelsius: 24.2, SoilResistivityRaw: 512, SoilTemperatureCelsius: 20}

	s.device = s.newDevice()
}

func (s *DeviceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DeviceTestSuite) newDevice(opts ...device.Option) *device.Device {
	return device.NewDevice(s.api, s.storage, s.sensor, s.credentials, append([]device.Option{
		device.WithRetry(3, time.Millisecond),
		device.WithUpgradeInterval(time.Hour),
		device.WithClock(func() time.Time { return s.now }),
	}, opts...)...)
}

func (s *DeviceTestSuite) TestStepWithStoredToken() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusOK),
		s.api.EXPECT().Upgrade(gomock.Any(), s.token).Return(api.StatusOK),
	)
	s.device.Step(s.ctx)

	// The token is cached and the upgrade is not due yet.
	gomock.InOrder(
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusOK),
	)
	s.now = s.now.Add(30 * time.Minute)
	s.device.Step(s.ctx)

	gomock.InOrder(
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusOK),
		s.api.EXPECT().Upgrade(gomock.Any(), s.token).Return(api.StatusOK),
	)
	s.now = s.now.Add(31 * time.Minute)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepAuthenticates() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(model.AuthToken{}, false, nil),
		s.api.EXPECT().Authenticate(gomock.Any(), "farmer@iop.test", "s3cret").Return(s.token, api.StatusOK),
		s.storage.EXPECT().SetToken(gomock.Any(), s.token).Return(nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusOK),
		s.api.EXPECT().Upgrade(gomock.Any(), s.token).Return(api.StatusOK),
	)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepCorruptedToken() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(model.AuthToken{}, false, fmt.Errorf("too long: %w", model.ErrCorruptedToken)),
		s.storage.EXPECT().RemoveToken(gomock.Any()).Return(nil),
		s.api.EXPECT().Authenticate(gomock.Any(), "farmer@iop.test", "s3cret").Return(s.token, api.StatusOK),
		s.storage.EXPECT().SetToken(gomock.Any(), s.token).Return(nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusOK),
		s.api.EXPECT().Upgrade(gomock.Any(), s.token).Return(api.StatusOK),
	)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepAuthenticateForbidden() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(model.AuthToken{}, false, nil),
		s.api.EXPECT().Authenticate(gomock.Any(), "farmer@iop.test", "s3cret").Return(model.AuthToken{}, api.StatusForbidden),
		s.storage.EXPECT().RemoveToken(gomock.Any()).Return(nil),
	)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepForbiddenDropsToken() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusForbidden),
		s.storage.EXPECT().RemoveToken(gomock.Any()).Return(nil),
	)
	s.device.Step(s.ctx)

	token2, err := model.NewAuthToken([]byte("token-2"))
	s.Require().NoError(err)
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(model.AuthToken{}, false, nil),
		s.api.EXPECT().Authenticate(gomock.Any(), "farmer@iop.test", "s3cret").Return(token2, api.StatusOK),
		s.storage.EXPECT().SetToken(gomock.Any(), token2).Return(nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), token2, s.event).Return(api.StatusOK),
		s.api.EXPECT().Upgrade(gomock.Any(), token2).Return(api.StatusOK),
	)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepRetriesConnectionIssues() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusConnectionIssues).Times(2),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusOK),
		s.api.EXPECT().Upgrade(gomock.Any(), s.token).Return(api.StatusOK),
	)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepGivesUpAfterRetries() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusConnectionIssues).Times(3),
	)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepNeverRetriesOverflow() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusClientBufferOverflow).Times(1),
	)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepBrokenServerIsNotRetried() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusBrokenServer).Times(1),
	)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepCancelledContextNeverAuthenticates() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.storage.EXPECT().Token(gomock.Any()).Return(model.AuthToken{}, false, nil).Times(2)
	s.api.EXPECT().Authenticate(gomock.Any(), "farmer@iop.test", "s3cret").Return(model.AuthToken{}, api.StatusConnectionIssues).AnyTimes()
	s.device.Step(ctx)

	// Nothing was cached, the next step goes back to storage.
	s.device.Step(ctx)
}

func (s *DeviceTestSuite) TestStepCancelledContextReportsNoEvent() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().Return(s.event),
	)
	s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusConnectionIssues).AnyTimes()
	s.device.Step(ctx)
}

func (s *DeviceTestSuite) TestStepRejectsEmptyToken() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(model.AuthToken{}, false, nil),
		s.api.EXPECT().Authenticate(gomock.Any(), "farmer@iop.test", "s3cret").Return(model.AuthToken{}, api.StatusOK),
	)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepMustUpgrade() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusMustUpgrade),
		s.api.EXPECT().Upgrade(gomock.Any(), s.token).Return(api.StatusMustUpgrade),
	)
	s.device.Step(s.ctx)
}

func (s *DeviceTestSuite) TestStepReportsPanic() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().DoAndReturn(func() model.Event {
			panic("sensor bus stuck")
		}),
		s.api.EXPECT().ReportPanic(gomock.Any(), s.token, gomock.Any()).DoAndReturn(
			func(ctx context.Context, token model.AuthToken, data model.PanicData) api.NetworkStatus {
				s.Equal("sensor bus stuck", data.Msg)
				s.Contains(data.File, "device_test.go")
				s.Positive(data.Line)
				s.Contains(data.Func, "TestStepReportsPanic")
				return api.StatusOK
			},
		).Times(1),
	)
	s.NotPanics(func() { s.device.Step(s.ctx) })
}

func (s *DeviceTestSuite) TestPanicWithoutToken() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).DoAndReturn(func(ctx context.Context) (model.AuthToken, bool, error) {
			var events []model.Event
			_ = events[3]
			return model.AuthToken{}, false, nil
		}),
	)
	s.NotPanics(func() { s.device.Step(s.ctx) })
}

func (s *DeviceTestSuite) TestReportPanicFailureDoesNotPanic() {
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().DoAndReturn(func() model.Event {
			panic(fmt.Errorf("boom"))
		}),
		s.api.EXPECT().ReportPanic(gomock.Any(), s.token, gomock.Any()).Return(api.StatusConnectionIssues).Times(1),
	)
	s.NotPanics(func() { s.device.Step(s.ctx) })
}

func (s *DeviceTestSuite) TestStepForwardsLogs() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	hook := logsink.NewHook(1024)
	logger.AddHook(hook)
	logger.Info("booted")

	d := s.newDevice(device.WithLogForwarding(hook))
	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusOK),
		s.api.EXPECT().Upgrade(gomock.Any(), s.token).Return(api.StatusOK),
		s.api.EXPECT().RegisterLog(gomock.Any(), s.token, gomock.Any()).DoAndReturn(
			func(ctx context.Context, token model.AuthToken, text string) api.NetworkStatus {
				s.Contains(text, "msg=booted")
				return api.StatusOK
			},
		),
	)
	d.Step(s.ctx)
	s.Zero(hook.Pending())
}

func (s *DeviceTestSuite) TestRunStopsWithContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	d := s.newDevice(device.WithMeasureInterval(time.Hour))

	gomock.InOrder(
		s.storage.EXPECT().Token(gomock.Any()).Return(s.token, true, nil),
		s.sensor.EXPECT().Measure().Return(s.event),
		s.api.EXPECT().RegisterEvent(gomock.Any(), s.token, s.event).Return(api.StatusOK),
		s.api.EXPECT().Upgrade(gomock.Any(), s.token).DoAndReturn(func(context.Context, model.AuthToken) api.NetworkStatus {
			cancel()
			return api.StatusOK
		}),
	)

	s.ErrorIs(d.Run(ctx), context.Canceled)
}

func (s *DeviceTestSuite) TestNewDeviceRequiresRetryAttempts() {
	s.Panics(func() {
		device.NewDevice(s.api, s.storage, s.sensor, s.credentials, device.WithRetry(0, 0))
	})
}
