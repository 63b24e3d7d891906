package solar

import (
	"testing"
	"time"
)

func TestFractionClockTimes(t *testing.T) {
	r := Resolver{}

	testCases := []struct {
		spec string
		want float64
	}{
		{"00:00", 0.0},
		{"06:00", 0.25},
		{"12:00", 0.5},
		{"18:00", 0.75},
	}
	for _, tc := range testCases {
		t.Run(tc.spec, func(t *testing.T) {
			got, err := r.ResolveString(tc.spec)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %g, want %g", got, tc.want)
			}
		})
	}
}

func TestResolveSunriseSunset(t *testing.T) {
	// equator on an equinox, sunrise close to 06:00 UTC at longitude 0
	r := Resolver{
		Latitude:  0,
		Longitude: 0,
		Date:      time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
	}

	rise, err := r.ResolveString("sunrise")
	if err != nil {
		t.Fatal(err)
	}
	if rise < 0.2 || rise > 0.3 {
		t.Errorf("sunrise fraction %g out of expected range", rise)
	}

	set, err := r.ResolveString("sunset")
	if err != nil {
		t.Fatal(err)
	}
	if set < 0.7 || set > 0.8 {
		t.Errorf("sunset fraction %g out of expected range", set)
	}
	if set <= rise {
		t.Errorf("sunset %g not after sunrise %g", set, rise)
	}
}

func TestResolvePolarNight(t *testing.T) {
	// north pole in midwinter has no sunrise
	r := Resolver{
		Latitude:  89.9,
		Longitude: 0,
		Date:      time.Date(2024, time.December, 21, 0, 0, 0, 0, time.UTC),
	}
	if _, err := r.ResolveString("sunrise"); err == nil {
		t.Error("expected an error for polar night")
	}
}

func TestResolveInvalidSpec(t *testing.T) {
	r := Resolver{}
	if _, err := r.ResolveString("noonish"); err == nil {
		t.Error("expected a parse error")
	}
	if _, err := r.ResolveString("25:99"); err == nil {
		t.Error("expected a parse error for an out-of-range clock time")
	}
}
