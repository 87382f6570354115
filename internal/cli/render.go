package cli

import (
	"fmt"
	"io"
	"strings"

	"weather-desk/internal/models"
)

// Render prints a report as a current-conditions panel followed by one line
// per forecast day.
func Render(w io.Writer, r models.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s, %s (%s)\n", r.City, r.Country, r.Timezone)
	fmt.Fprintf(&b, "%s  %s\n", r.Date, r.Time)
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n", r.Description)
	}
	fmt.Fprintf(&b, "%-12s %s\n", "Temperature", r.Temperature)
	fmt.Fprintf(&b, "%-12s %s\n", "Humidity", r.Humidity)
	fmt.Fprintf(&b, "%-12s %s\n", "Pressure", r.Pressure)
	fmt.Fprintf(&b, "%-12s %s\n", "Wind", r.Wind)
	fmt.Fprintf(&b, "%-12s %s\n", "Sunrise", r.Sunrise)
	fmt.Fprintf(&b, "%-12s %s\n", "Sunset", r.Sunset)

	if r.Warning != "" {
		fmt.Fprintf(&b, "\nForecast unavailable: %s\n", r.Warning)
	}

	if len(r.Days) > 0 {
		b.WriteString("\n")
	}
	for _, day := range r.Days {
		fmt.Fprintf(&b, "%-8s %6s  %s\n", day.Date, day.Temperature, day.Weather)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
