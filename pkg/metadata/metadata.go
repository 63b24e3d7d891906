package metadata

import (
	"encoding/json"
	"fmt"

	cfg "github.com/daycycle/go-daywall/pkg/config"
)

// CrossFadeMode tells the renderer whether to blend into the next frame or
// hard-cut.
type CrossFadeMode int

const (
	NoCrossFade CrossFadeMode = iota
	CrossFade
)

// Field is a bitmask of the attributes that are actually set on a record.
// An unset field means "not applicable to this frame", not zero.
type Field uint32

const (
	CrossFadeField Field = 1 << iota
	TimeField
	SolarAzimuthField
	SolarElevationField
	IndexField
)

// MetaData describes the temporal and solar attributes of one frame.
// The zero value has an empty field mask and is not valid. It is a plain
// value type: assignment copies, mutating a copy never affects the original.
//
// Setters perform no range validation. Out-of-domain values (a time outside
// [0,1], an azimuth over 360) are stored and serialized unchanged.
type MetaData struct {
	fields         Field
	crossFadeMode  CrossFadeMode
	time           float64
	solarElevation float64
	solarAzimuth   float64
	index          int
}

// Fields returns the mask of attributes that have been set.
func (m MetaData) Fields() Field {
	return m.fields
}

// IsValid reports whether the record carries any usable information.
func (m MetaData) IsValid() bool {
	return m.fields != 0
}

func (m *MetaData) SetCrossFadeMode(mode CrossFadeMode) {
	m.crossFadeMode = mode
	m.fields |= CrossFadeField
}

// CrossFadeMode returns the last set mode, or NoCrossFade if the field was
// never set. Check Fields() before trusting the value.
func (m MetaData) CrossFadeMode() CrossFadeMode {
	return m.crossFadeMode
}

func (m *MetaData) SetTime(time float64) {
	m.time = time
	m.fields |= TimeField
}

// Time returns the normalized time of day, 0.0-1.0 over a 24h cycle by
// convention.
func (m MetaData) Time() float64 {
	return m.time
}

func (m *MetaData) SetSolarElevation(elevation float64) {
	m.solarElevation = elevation
	m.fields |= SolarElevationField
}

// SolarElevation returns the sun elevation in degrees.
func (m MetaData) SolarElevation() float64 {
	return m.solarElevation
}

func (m *MetaData) SetSolarAzimuth(azimuth float64) {
	m.solarAzimuth = azimuth
	m.fields |= SolarAzimuthField
}

// SolarAzimuth returns the sun azimuth in degrees.
func (m MetaData) SolarAzimuth() float64 {
	return m.solarAzimuth
}

func (m *MetaData) SetIndex(index int) {
	m.index = index
	m.fields |= IndexField
}

// Index returns the explicit frame ordinal.
func (m MetaData) Index() int {
	return m.index
}

// ToJSON builds an object with exactly one key per set field. Unset fields
// contribute no key, so the field mask survives a serialization round trip.
func (m MetaData) ToJSON() map[string]interface{} {
	object := make(map[string]interface{})
	if m.fields&CrossFadeField != 0 {
		object[cfg.KeyCrossFade] = crossFadeModeToString(m.crossFadeMode)
	}
	if m.fields&TimeField != 0 {
		object[cfg.KeyTime] = m.time
	}
	if m.fields&SolarElevationField != 0 {
		object[cfg.KeySolarElevation] = m.solarElevation
	}
	if m.fields&SolarAzimuthField != 0 {
		object[cfg.KeySolarAzimuth] = m.solarAzimuth
	}
	if m.fields&IndexField != 0 {
		object[cfg.KeyIndex] = m.index
	}
	return object
}

// FromJSON builds a record whose field mask matches the recognized keys
// present in the object. Unrecognized keys are ignored. A recognized key
// with a wrong value type still sets the field, with a default value.
// Malformed input never raises an error, it yields a best-effort record.
func FromJSON(object map[string]interface{}) MetaData {
	var m MetaData
	if v, ok := object[cfg.KeyCrossFade]; ok {
		m.SetCrossFadeMode(crossFadeModeFromValue(v))
	}
	if v, ok := object[cfg.KeyTime]; ok {
		m.SetTime(numberFromValue(v))
	}
	if v, ok := object[cfg.KeySolarElevation]; ok {
		m.SetSolarElevation(numberFromValue(v))
	}
	if v, ok := object[cfg.KeySolarAzimuth]; ok {
		m.SetSolarAzimuth(numberFromValue(v))
	}
	if v, ok := object[cfg.KeyIndex]; ok {
		m.SetIndex(int(numberFromValue(v)))
	}
	return m
}

func (m MetaData) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToJSON())
}

func (m *MetaData) UnmarshalJSON(data []byte) error {
	var object map[string]interface{}
	if err := json.Unmarshal(data, &object); err != nil {
		// not an object, best effort is an empty record
		*m = MetaData{}
		return nil
	}
	*m = FromJSON(object)
	return nil
}

func (m MetaData) String() string {
	return fmt.Sprintf("MetaData(fields=%05b, time=%g, elevation=%g, azimuth=%g, index=%d)",
		m.fields, m.time, m.solarElevation, m.solarAzimuth, m.index)
}

func crossFadeModeToString(mode CrossFadeMode) string {
	if mode == CrossFade {
		return cfg.ValueCrossFade
	}
	return cfg.ValueNoCrossFade
}

func crossFadeModeFromValue(v interface{}) CrossFadeMode {
	if s, ok := v.(string); ok && s == cfg.ValueCrossFade {
		return CrossFade
	}
	return NoCrossFade
}

func numberFromValue(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
