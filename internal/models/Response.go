package models

// Report is the rendered result of a lookup, ready for the CLI or the HTTP API.
type Report struct {
	City        string      `json:"city" example:"Kraków"`
	Country     string      `json:"country" example:"Poland"`
	Timezone    string      `json:"timezone" example:"UTC+2.00"`
	Date        string      `json:"date" example:"06.05"`
	Time        string      `json:"time" example:"12:00"`
	Description string      `json:"description" example:"pochmurnie"`
	Temperature string      `json:"temperature" example:"18°C"`
	Humidity    string      `json:"humidity" example:"64%"`
	Pressure    string      `json:"pressure" example:"1013hPa"`
	Wind        string      `json:"wind" example:"3.6m/s"`
	Sunrise     string      `json:"sunrise" example:"05:40"`
	Sunset      string      `json:"sunset" example:"20:31"`
	Icon        string      `json:"icon" example:"https://openweathermap.org/img/wn/04d@2x.png"`
	Days        []DayReport `json:"days"`
	Warning     string      `json:"warning,omitempty"`
}

// DayReport is one representative forecast sample.
type DayReport struct {
	Timestamp   int64  `json:"timestamp" example:"1715007600"`
	Date        string `json:"date" example:"today"`
	Temperature string `json:"temperature" example:"19°C"`
	Weather     string `json:"weather" example:"Clouds"`
	Icon        string `json:"icon" example:"https://openweathermap.org/img/wn/04d@2x.png"`
}
