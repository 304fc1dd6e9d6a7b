package api_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/internet-of-plants/iop/pkg/api"
	"github.com/internet-of-plants/iop/pkg/model"
	"github.com/internet-of-plants/iop/pkg/network"
	mock_api "github.com/internet-of-plants/iop/test/mock/api"
	mock_network "github.com/internet-of-plants/iop/test/mock/network"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	transport *mock_network.MockTransport
	updater   *mock_api.MockUpdater
	client    *api.Client
	token     model.AuthToken
	event     model.Event
}

func TestClient(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.transport = mock_network.NewMockTransport(s.ctrl)
	s.updater = mock_api.NewMockUpdater(s.ctrl)
	s.client = api.NewClient(s.transport, api.WithUpdater(s.updater))

	token, err := model.NewAuthToken([]byte("8a2a6e7c-token"))
	s.Require().NoError(err)
	s.token = token

	s.event = model.Event{
		AirTemperatureCelsius:  25.456,
		AirHumidityPercentage:  60.123,
		AirHeatIndexCelsius:    26.5,
		SoilResistivityRaw:     512,
		SoilTemperatureCelsius: 21.75,
	}
}

func (s *ClientTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ClientTestSuite) TestAuthenticate() {
	s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req network.Request) (network.Response, error) {
			s.Equal(http.MethodPost, req.Method)
			s.Equal("/v1/user/login", req.Path)
			s.Nil(req.Token)
			s.Equal("application/json", req.ContentType)
			s.JSONEq(`{"email":"farmer@iop.test","password":"s3cret"}`, string(req.Body))
			return network.Response{Code: http.StatusOK, Payload: []byte(`{"token":"8a2a6e7c-token"}`)}, nil
		},
	)

	token, status := s.client.Authenticate(s.ctx, "farmer@iop.test", "s3cret")
	s.Equal(api.StatusOK, status)
	s.True(s.token.Equal(token))
}

func (s *ClientTestSuite) TestAuthenticateForbidden() {
	s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(network.Response{Code: http.StatusForbidden}, nil)

	token, status := s.client.Authenticate(s.ctx, "farmer@iop.test", "wrong")
	s.Equal(api.StatusForbidden, status)
	s.True(token.IsEmpty())
}

func (s *ClientTestSuite) TestAuthenticateBrokenResponses() {
	payloads := []string{
		`{"user":"farmer"}`,
		`{"token":""}`,
		`{"token":null}`,
		`{"token":42}`,
		`{"token":`,
		`<html>login</html>`,
		``,
		fmt.Sprintf(`{"token":"%s"}`, strings.Repeat("t", model.AuthTokenSize+1)),
	}

	for _, payload := range payloads {
		s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(network.Response{Code: http.StatusOK, Payload: []byte(payload)}, nil)

		token, status := s.client.Authenticate(s.ctx, "farmer@iop.test", "s3cret")
		s.Equal(api.StatusBrokenServer, status, payload)
		s.True(token.IsEmpty(), payload)
	}
}

func (s *ClientTestSuite) TestAuthenticateConnectionIssues() {
	s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(network.Response{}, fmt.Errorf("dial tcp: connection refused%w", network.ErrConnection))

	_, status := s.client.Authenticate(s.ctx, "farmer@iop.test", "s3cret")
	s.Equal(api.StatusConnectionIssues, status)
}

func (s *ClientTestSuite) TestAuthenticateOverflow() {
	_, status := s.client.Authenticate(s.ctx, strings.Repeat("u", api.DefaultAuthenticateBudget), "s3cret")
	s.Equal(api.StatusClientBufferOverflow, status)
}

func (s *ClientTestSuite) TestRegisterEvent() {
	s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req network.Request) (network.Response, error) {
			s.Equal(http.MethodPost, req.Method)
			s.Equal("/v1/event", req.Path)
			s.Require().NotNil(req.Token)
			s.True(s.token.Equal(*req.Token))
			s.JSONEq(`{
				"air_temperature_celsius": 25.46,
				"air_humidity_percentage": 60.12,
				"air_heat_index_celsius": 26.5,
				"soil_resistivity_raw": 512,
				"soil_temperature_celsius": 21.75
			}`, string(req.Body))
			return network.Response{Code: http.StatusOK}, nil
		},
	)

	s.Equal(api.StatusOK, s.client.RegisterEvent(s.ctx, s.token, s.event))
}

func (s *ClientTestSuite) TestRegisterEventNaN() {
	event := s.event
	event.SoilTemperatureCelsius = float32(math.NaN())
	event.AirHeatIndexCelsius = float32(math.Inf(1))

	s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req network.Request) (network.Response, error) {
			s.JSONEq(`{
				"air_temperature_celsius": 25.46,
				"air_humidity_percentage": 60.12,
				"air_heat_index_celsius": null,
				"soil_resistivity_raw": 512,
				"soil_temperature_celsius": null
			}`, string(req.Body))
			return network.Response{Code: http.StatusOK}, nil
		},
	)

	s.Equal(api.StatusOK, s.client.RegisterEvent(s.ctx, s.token, event))
}

func (s *ClientTestSuite) TestRegisterEventBudget() {
	budgets := api.DefaultBudgets()

	budgets.Event = 600
	client := api.NewClient(s.transport, api.WithBudgets(budgets))
	s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(network.Response{Code: http.StatusOK}, nil).Times(1)
	s.Equal(api.StatusOK, client.RegisterEvent(s.ctx, s.token, s.event))

	// No expectation is set: any transport call fails the test.
	budgets.Event = 100
	client = api.NewClient(s.transport, api.WithBudgets(budgets))
	s.Equal(api.StatusClientBufferOverflow, client.RegisterEvent(s.ctx, s.token, s.event))
}

func (s *ClientTestSuite) TestAuthenticateExactBudget() {
	body := `{"email":"farmer@iop.test","password":"s3cret"}`
	budgets := api.DefaultBudgets()

	budgets.Authenticate = len(body)
	client := api.NewClient(s.transport, api.WithBudgets(budgets))
	s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req network.Request) (network.Response, error) {
			s.Equal(body, string(req.Body))
			return network.Response{Code: http.StatusOK, Payload: []byte(`{"token":"8a2a6e7c-token"}`)}, nil
		},
	)
	_, status := client.Authenticate(s.ctx, "farmer@iop.test", "s3cret")
	s.Equal(api.StatusOK, status)

	budgets.Authenticate = len(body) - 1
	client = api.NewClient(s.transport, api.WithBudgets(budgets))
	_, status = client.Authenticate(s.ctx, "farmer@iop.test", "s3cret")
	s.Equal(api.StatusClientBufferOverflow, status)
}

func (s *ClientTestSuite) TestOverflowDoesNotPoisonNextCall() {
	budgets := api.DefaultBudgets()
	budgets.Log = 16
	client := api.NewClient(s.transport, api.WithBudgets(budgets))

	s.Equal(api.StatusClientBufferOverflow, client.RegisterLog(s.ctx, s.token, strings.Repeat("x", 17)))

	s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req network.Request) (network.Response, error) {
			s.Equal("short", string(req.Body))
			return network.Response{Code: http.StatusOK}, nil
		},
	)
	s.Equal(api.StatusOK, client.RegisterLog(s.ctx, s.token, "short"))
}

func (s *ClientTestSuite) TestRegisterEventStatuses() {
	codes := map[int]api.NetworkStatus{
		http.StatusUnauthorized:        api.StatusForbidden,
		http.StatusUpgradeRequired:     api.StatusMustUpgrade,
		http.StatusInternalServerError: api.StatusBrokenServer,
	}
	for code, expected := range codes {
		s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(network.Response{Code: code}, nil)
		s.Equal(expected, s.client.RegisterEvent(s.ctx, s.token, s.event))
	}
}

func (s *ClientTestSuite) TestReportPanic() {
	data := model.PanicData{Msg: "index out of range", File: "device/loop.go", Line: 42, Func: "Device.step"}

	s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req network.Request) (network.Response, error) {
			s.Equal(http.MethodPost, req.Method)
			s.Equal("/v1/panic", req.Path)
			s.JSONEq(`{"msg":"index out of range","file":"device/loop.go","line":42,"func":"Device.step"}`, string(req.Body))
			return network.Response{Code: http.StatusOK}, nil
		},
	)

	s.Equal(api.StatusOK, s.client.ReportPanic(s.ctx, s.token, data))
}

func (s *ClientTestSuite) TestReportPanicOverflow() {
	data := model.PanicData{Msg: strings.Repeat("m", api.DefaultPanicBudget), File: "device/loop.go", Line: 1, Func: "f"}
	s.Equal(api.StatusClientBufferOverflow, s.client.ReportPanic(s.ctx, s.token, data))
}

func (s *ClientTestSuite) TestRegisterLog() {
	s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req network.Request) (network.Response, error) {
			s.Equal(http.MethodPost, req.Method)
			s.Equal("/v1/log", req.Path)
			s.Equal("text/plain; charset=utf-8", req.ContentType)
			s.Equal("INFO [DEVICE] measured\n", string(req.Body))
			return network.Response{Code: http.StatusOK}, nil
		},
	)

	s.Equal(api.StatusOK, s.client.RegisterLog(s.ctx, s.token, "INFO [DEVICE] measured\n"))
}

func (s *ClientTestSuite) TestRegisterLogOverflow() {
	s.Equal(api.StatusClientBufferOverflow, s.client.RegisterLog(s.ctx, s.token, strings.Repeat("l", api.DefaultLogBudget+1)))
}

func (s *ClientTestSuite) TestUpgradeNoUpdate() {
	for _, code := range []int{http.StatusNotModified, http.StatusNoContent} {
		gomock.InOrder(
			s.updater.EXPECT().Begin().Return(nil),
			s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, req network.Request) (network.Response, error) {
					s.Equal(http.MethodGet, req.Method)
					s.Equal("/v1/update", req.Path)
					s.Equal(s.updater, req.Sink)
					return network.Response{Code: code}, nil
				},
			),
			s.updater.EXPECT().Abort(),
		)

		s.Equal(api.StatusOK, s.client.Upgrade(s.ctx, s.token))
	}
}

func (s *ClientTestSuite) TestUpgrade() {
	header := http.Header{}
	header.Set("x-MD5", "0123456789abcdef0123456789abcdef")

	gomock.InOrder(
		s.updater.EXPECT().Begin().Return(nil),
		s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(network.Response{Code: http.StatusOK, Header: header}, nil),
		s.updater.EXPECT().Finish("0123456789abcdef0123456789abcdef").Return(nil),
		s.updater.EXPECT().Restart(),
	)

	s.Equal(api.StatusOK, s.client.Upgrade(s.ctx, s.token))
}

func (s *ClientTestSuite) TestUpgradeFinishFailure() {
	gomock.InOrder(
		s.updater.EXPECT().Begin().Return(nil),
		s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(network.Response{Code: http.StatusOK, Header: http.Header{}}, nil),
		s.updater.EXPECT().Finish("").Return(errors.New("md5 mismatch")),
		s.updater.EXPECT().Abort(),
	)

	s.Equal(api.StatusBrokenServer, s.client.Upgrade(s.ctx, s.token))
}

func (s *ClientTestSuite) TestUpgradeBeginFailure() {
	s.updater.EXPECT().Begin().Return(errors.New("no space left"))

	s.Equal(api.StatusBrokenServer, s.client.Upgrade(s.ctx, s.token))
}

func (s *ClientTestSuite) TestUpgradeFailures() {
	cases := []struct {
		resp     network.Response
		err      error
		expected api.NetworkStatus
	}{
		{network.Response{Code: http.StatusForbidden}, nil, api.StatusForbidden},
		{network.Response{Code: http.StatusInternalServerError}, nil, api.StatusBrokenServer},
		{network.Response{}, fmt.Errorf("timeout%w", network.ErrConnection), api.StatusConnectionIssues},
		{network.Response{Code: http.StatusOK}, fmt.Errorf("flash is full%w", network.ErrSink), api.StatusBrokenServer},
	}

	for _, c := range cases {
		gomock.InOrder(
			s.updater.EXPECT().Begin().Return(nil),
			s.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(c.resp, c.err),
			s.updater.EXPECT().Abort(),
		)

		s.Equal(c.expected, s.client.Upgrade(s.ctx, s.token))
	}
}

func (s *ClientTestSuite) TestUpgradeWithoutUpdater() {
	client := api.NewClient(s.transport)
	s.Panics(func() { client.Upgrade(s.ctx, s.token) })
}
