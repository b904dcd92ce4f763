package models

// WeatherConditionError marks a sentinel weather record.
const WeatherConditionError = "Error"

type WeatherData struct {
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Location  string  `json:"location"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
}

// WeatherSentinel returns the zero-valued record used when a weather payload
// could not be read.
func WeatherSentinel(location string) WeatherData {
	return WeatherData{Condition: WeatherConditionError, Location: location}
}

// IsSentinel reports whether w is the fallback record.
func (w WeatherData) IsSentinel() bool {
	return w.Condition == WeatherConditionError && w.Temp == 0 && w.High == 0 && w.Low == 0
}
