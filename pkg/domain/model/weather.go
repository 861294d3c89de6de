package model

// WeatherReport is the weather payload returned by the assistant.
type WeatherReport struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	City        string `json:"city"`
}

// SimulatedWeather returns the fixed demo forecast. There is no weather
// provider behind the assistant yet; the payload is constant.
func SimulatedWeather() WeatherReport {
	return WeatherReport{
		Temperature: 22,
		Condition:   "ensoleillé",
		Humidity:    55,
		City:        "Tunis",
	}
}
