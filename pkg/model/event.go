package model

// Event is one batch of sensor measurements.
type Event struct {
	AirTemperatureCelsius  float32
	AirHumidityPercentage  float32
	AirHeatIndexCelsius    float32
	SoilResistivityRaw     uint16
	SoilTemperatureCelsius float32
}

// PanicData describes one crash. It is built where the crash is caught and
// consumed by a single report.
type PanicData struct {
	Msg  string
	File string
	Line uint32
	Func string
}

type WifiCredentials struct {
	SSID     NetworkName
	Password NetworkPassword
}
