package metadata

import (
	"encoding/json"
	"reflect"
	"testing"

	cfg "github.com/daycycle/go-daywall/pkg/config"
)

// apply sets the fields named by the mask with distinct values
func apply(m *MetaData, mask Field) {
	if mask&CrossFadeField != 0 {
		m.SetCrossFadeMode(CrossFade)
	}
	if mask&TimeField != 0 {
		m.SetTime(0.25)
	}
	if mask&SolarAzimuthField != 0 {
		m.SetSolarAzimuth(178.5)
	}
	if mask&SolarElevationField != 0 {
		m.SetSolarElevation(-3.2)
	}
	if mask&IndexField != 0 {
		m.SetIndex(7)
	}
}

func keysFor(mask Field) map[string]bool {
	keys := make(map[string]bool)
	if mask&CrossFadeField != 0 {
		keys[cfg.KeyCrossFade] = true
	}
	if mask&TimeField != 0 {
		keys[cfg.KeyTime] = true
	}
	if mask&SolarAzimuthField != 0 {
		keys[cfg.KeySolarAzimuth] = true
	}
	if mask&SolarElevationField != 0 {
		keys[cfg.KeySolarElevation] = true
	}
	if mask&IndexField != 0 {
		keys[cfg.KeyIndex] = true
	}
	return keys
}

// every subset of fields must serialize to exactly those keys and parse back
// to the same mask
func TestRoundTripAllFieldSubsets(t *testing.T) {
	allFields := CrossFadeField | TimeField | SolarAzimuthField | SolarElevationField | IndexField
	for mask := Field(0); mask <= allFields; mask++ {
		var m MetaData
		apply(&m, mask)
		if m.Fields() != mask {
			t.Fatalf("mask %05b: setters produced mask %05b", mask, m.Fields())
		}

		object := m.ToJSON()
		want := keysFor(mask)
		if len(object) != len(want) {
			t.Errorf("mask %05b: got %d keys, want %d", mask, len(object), len(want))
		}
		for key := range object {
			if !want[key] {
				t.Errorf("mask %05b: unexpected key %q", mask, key)
			}
		}

		parsed := FromJSON(object)
		if parsed.Fields() != mask {
			t.Errorf("mask %05b: parsed mask %05b", mask, parsed.Fields())
		}
	}
}

func TestMarshalUnmarshalRecord(t *testing.T) {
	var m MetaData
	m.SetTime(0.75)
	m.SetCrossFadeMode(NoCrossFade)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}

	var parsed MetaData
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed.Fields() != m.Fields() {
		t.Errorf("got mask %05b, want %05b", parsed.Fields(), m.Fields())
	}
	if parsed.Time() != 0.75 {
		t.Errorf("got time %g, want 0.75", parsed.Time())
	}
	if parsed.CrossFadeMode() != NoCrossFade {
		t.Errorf("got mode %d, want NoCrossFade", parsed.CrossFadeMode())
	}
}

func TestIsValid(t *testing.T) {
	var empty MetaData
	if empty.IsValid() {
		t.Error("record with no fields must be invalid")
	}

	singles := []Field{CrossFadeField, TimeField, SolarAzimuthField, SolarElevationField, IndexField}
	for _, f := range singles {
		var m MetaData
		apply(&m, f)
		if !m.IsValid() {
			t.Errorf("record with field %05b must be valid", f)
		}
	}
}

func TestFromJSONEmptyObject(t *testing.T) {
	m := FromJSON(map[string]interface{}{})
	if m.IsValid() {
		t.Error("empty object must parse to an invalid record")
	}
}

func TestFromJSONIgnoresUnrecognizedKeys(t *testing.T) {
	m := FromJSON(map[string]interface{}{
		"time":   0.5,
		"flavor": "vanilla",
	})
	if m.Fields() != TimeField {
		t.Errorf("got mask %05b, want only TimeField", m.Fields())
	}
}

func TestFromJSONTolerantTypes(t *testing.T) {
	testCases := []struct {
		name   string
		object map[string]interface{}
		mask   Field
		check  func(t *testing.T, m MetaData)
	}{
		{
			name:   "time as string",
			object: map[string]interface{}{"time": "noon"},
			mask:   TimeField,
			check: func(t *testing.T, m MetaData) {
				if m.Time() != 0 {
					t.Errorf("got time %g, want 0", m.Time())
				}
			},
		},
		{
			name:   "cross-fade as number",
			object: map[string]interface{}{"cross-fade": 5.0},
			mask:   CrossFadeField,
			check: func(t *testing.T, m MetaData) {
				if m.CrossFadeMode() != NoCrossFade {
					t.Errorf("got mode %d, want NoCrossFade", m.CrossFadeMode())
				}
			},
		},
		{
			name:   "cross-fade unknown literal",
			object: map[string]interface{}{"cross-fade": "Dissolve"},
			mask:   CrossFadeField,
			check: func(t *testing.T, m MetaData) {
				if m.CrossFadeMode() != NoCrossFade {
					t.Errorf("got mode %d, want NoCrossFade", m.CrossFadeMode())
				}
			},
		},
		{
			name:   "index as bool",
			object: map[string]interface{}{"index": true},
			mask:   IndexField,
			check: func(t *testing.T, m MetaData) {
				if m.Index() != 0 {
					t.Errorf("got index %d, want 0", m.Index())
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := FromJSON(tc.object)
			if m.Fields() != tc.mask {
				t.Fatalf("got mask %05b, want %05b", m.Fields(), tc.mask)
			}
			tc.check(t, m)
		})
	}
}

func TestUnmarshalNonObject(t *testing.T) {
	var m MetaData
	if err := json.Unmarshal([]byte(`42`), &m); err != nil {
		t.Fatal(err)
	}
	if m.IsValid() {
		t.Error("non-object input must yield an empty record")
	}
}

func TestCrossFadeLiterals(t *testing.T) {
	var on, off MetaData
	on.SetCrossFadeMode(CrossFade)
	off.SetCrossFadeMode(NoCrossFade)

	if got := on.ToJSON()[cfg.KeyCrossFade]; got != "CrossFade" {
		t.Errorf("got %v, want CrossFade", got)
	}
	if got := off.ToJSON()[cfg.KeyCrossFade]; got != "NoCrossFade" {
		t.Errorf("got %v, want NoCrossFade", got)
	}
}

func TestNoRangeValidation(t *testing.T) {
	var m MetaData
	m.SetTime(1.5)
	if m.Time() != 1.5 {
		t.Errorf("got %g, want out-of-range value to pass through", m.Time())
	}

	object := m.ToJSON()
	if !reflect.DeepEqual(object, map[string]interface{}{"time": 1.5}) {
		t.Errorf("got %v", object)
	}
}

func TestCopyIndependence(t *testing.T) {
	var a MetaData
	a.SetTime(0.5)

	b := a
	b.SetIndex(3)

	if a.Fields() != TimeField {
		t.Errorf("mutating a copy changed the original mask: %05b", a.Fields())
	}
	if b.Fields() != TimeField|IndexField {
		t.Errorf("copy mask %05b", b.Fields())
	}
}
