package sensor

import (
	"math"
	"math/rand"
	"sync"

	"github.com/internet-of-plants/iop/pkg/model"
)

type Sensor interface {
	Measure() model.Event
}

// HeatIndexCelsius is the apparent temperature for an air temperature and a
// relative humidity, using the NWS regression (Rothfusz, with Steadman's
// approximation below 80°F).
func HeatIndexCelsius(temperatureCelsius, humidityPercentage float32) float32 {
	t := float64(temperatureCelsius)*1.8 + 32
	h := float64(humidityPercentage)

	hi := 0.5 * (t + 61.0 + ((t - 68.0) * 1.2) + (h * 0.094))
	if hi > 79 {
		hi = -42.379 +
			2.04901523*t +
			10.14333127*h -
			0.22475541*t*h -
			0.00683783*t*t -
			0.05481717*h*h +
			0.00122874*t*t*h +
			0.00085282*t*h*h -
			0.00000199*t*t*h*h

		if h < 13 && t >= 80 && t <= 112 {
			hi -= ((13 - h) * 0.25) * math.Sqrt((17-math.Abs(t-95))*0.05882)
		} else if h > 85 && t >= 80 && t <= 87 {
			hi += ((h - 85) * 0.1) * ((87 - t) * 0.2)
		}
	}

	return float32((hi - 32) / 1.8)
}

// Simulated stands in for the sensor board on hosts without one. Readings
// drift around a baseline.
type Simulated struct {
	mtx      sync.Mutex
	rnd      *rand.Rand
	baseline model.Event
}

func NewSimulated(seed int64) *Simulated {
	return &Simulated{
		rnd: rand.New(rand.NewSource(seed)),
		baseline: model.Event{
			AirTemperatureCelsius:  24,
			AirHumidityPercentage:  60,
			SoilResistivityRaw:     512,
			SoilTemperatureCelsius: 20,
		},
	}
}

func (s *Simulated) Measure() model.Event {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	airTemperature := s.baseline.AirTemperatureCelsius + s.jitter(2)
	humidity := clamp(s.baseline.AirHumidityPercentage+s.jitter(10), 0, 100)
	resistivity := int(s.baseline.SoilResistivityRaw) + s.rnd.Intn(65) - 32

	return model.Event{
		AirTemperatureCelsius:  airTemperature,
		AirHumidityPercentage:  humidity,
		AirHeatIndexCelsius:    HeatIndexCelsius(airTemperature, humidity),
		SoilResistivityRaw:     uint16(clamp(float32(resistivity), 0, 1023)),
		SoilTemperatureCelsius: s.baseline.SoilTemperatureCelsius + s.jitter(1),
	}
}

// jitter is uniform in [-spread, spread).
func (s *Simulated) jitter(spread float32) float32 {
	return (s.rnd.Float32()*2 - 1) * spread
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
