package api

import (
	"math"

	"github.com/internet-of-plants/iop/pkg/model"
	"github.com/shopspring/decimal"
)

const (
	routeLogin  = "/v1/user/login"
	routeEvent  = "/v1/event"
	routePanic  = "/v1/panic"
	routeLog    = "/v1/log"
	routeUpdate = "/v1/update"

	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"

	measurementPlaces = 2
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token *string `json:"token"`
}

// measurement is encoded with at most two decimal places so an event has a
// bounded size. Readings that are not numbers are sent as null.
type measurement float32

func (m measurement) MarshalJSON() ([]byte, error) {
	v := float64(m)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return []byte(decimal.NewFromFloat32(float32(m)).Round(measurementPlaces).String()), nil
}

type eventPayload struct {
	AirTemperatureCelsius  measurement `json:"air_temperature_celsius"`
	AirHumidityPercentage  measurement `json:"air_humidity_percentage"`
	AirHeatIndexCelsius    measurement `json:"air_heat_index_celsius"`
	SoilResistivityRaw     uint16      `json:"soil_resistivity_raw"`
	SoilTemperatureCelsius measurement `json:"soil_temperature_celsius"`
}

func newEventPayload(event model.Event) eventPayload {
	return eventPayload{
		AirTemperatureCelsius:  measurement(event.AirTemperatureCelsius),
		AirHumidityPercentage:  measurement(event.AirHumidityPercentage),
		AirHeatIndexCelsius:    measurement(event.AirHeatIndexCelsius),
		SoilResistivityRaw:     event.SoilResistivityRaw,
		SoilTemperatureCelsius: measurement(event.SoilTemperatureCelsius),
	}
}

type panicPayload struct {
	Msg  string `json:"msg"`
	File string `json:"file"`
	Line uint32 `json:"line"`
	Func string `json:"func"`
}

func newPanicPayload(data model.PanicData) panicPayload {
	return panicPayload{
		Msg:  data.Msg,
		File: data.File,
		Line: data.Line,
		Func: data.Func,
	}
}
