// Package solar resolves manifest time specs into normalized day fractions.
package solar

import (
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Resolver turns symbolic time specs into fractions of a day for a fixed
// location and date. Sunrise and sunset are computed in UTC.
type Resolver struct {
	Latitude  float64
	Longitude float64
	Date      time.Time
}

// ResolveString resolves "sunrise", "sunset" or a "HH:MM" clock time into
// a fraction in [0,1).
func (r Resolver) ResolveString(spec string) (float64, error) {
	switch spec {
	case "sunrise", "sunset":
		rise, set := sunrise.SunriseSunset(
			r.Latitude, r.Longitude,
			r.Date.Year(), r.Date.Month(), r.Date.Day(),
		)
		if rise.IsZero() || set.IsZero() {
			return 0, fmt.Errorf("no %s at %g,%g on %s",
				spec, r.Latitude, r.Longitude, r.Date.Format("2006-01-02"))
		}
		if spec == "sunrise" {
			return Fraction(rise), nil
		}
		return Fraction(set), nil
	}

	clock, err := time.Parse("15:04", spec)
	if err != nil {
		return 0, fmt.Errorf("cannot parse time spec %q: %w", spec, err)
	}
	return Fraction(clock), nil
}

// Fraction returns the time of day of t as a fraction in [0,1).
func Fraction(t time.Time) float64 {
	secs := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return float64(secs) / 86400
}
