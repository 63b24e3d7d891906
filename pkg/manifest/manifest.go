// Package manifest describes a wallpaper build: which images go in and
// which metadata fields each frame carries. Every metadata key is optional
// per frame, mirroring the record's field mask.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/daycycle/go-daywall/pkg/metadata"
	"github.com/daycycle/go-daywall/pkg/solar"
)

// Entry is one frame of the build. Time accepts a day fraction (0.25), a
// clock time ("06:30"), or the symbolic "sunrise"/"sunset".
type Entry struct {
	Image          string          `json:"image"`
	Time           json.RawMessage `json:"time,omitempty"`
	CrossFade      *bool           `json:"cross-fade,omitempty"`
	SolarElevation *float64        `json:"solar-elevation,omitempty"`
	SolarAzimuth   *float64        `json:"solar-azimuth,omitempty"`
	Index          *int            `json:"index,omitempty"`
}

type Manifest struct {
	Frames []Entry `json:"frames"`
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("cannot parse manifest: %w", err)
	}
	if len(m.Frames) == 0 {
		return nil, fmt.Errorf("manifest has no frames")
	}
	for i, entry := range m.Frames {
		if entry.Image == "" {
			return nil, fmt.Errorf("frame %d has no image", i)
		}
	}
	return &m, nil
}

// Load reads a manifest from the named file.
func Load(filename string) (*Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// MetaData builds the record for the entry. Only the supplied fields end up
// in the record's mask. Symbolic times are resolved through res.
func (e *Entry) MetaData(res solar.Resolver) (metadata.MetaData, error) {
	var m metadata.MetaData

	if e.Time != nil {
		fraction, err := resolveTime(e.Time, res)
		if err != nil {
			return m, fmt.Errorf("image %s: %w", e.Image, err)
		}
		m.SetTime(fraction)
	}
	if e.CrossFade != nil {
		if *e.CrossFade {
			m.SetCrossFadeMode(metadata.CrossFade)
		} else {
			m.SetCrossFadeMode(metadata.NoCrossFade)
		}
	}
	if e.SolarElevation != nil {
		m.SetSolarElevation(*e.SolarElevation)
	}
	if e.SolarAzimuth != nil {
		m.SetSolarAzimuth(*e.SolarAzimuth)
	}
	if e.Index != nil {
		m.SetIndex(*e.Index)
	}
	return m, nil
}

// MetaDataAll builds the record list for all frames, in order.
func (m *Manifest) MetaDataAll(res solar.Resolver) ([]metadata.MetaData, error) {
	records := make([]metadata.MetaData, 0, len(m.Frames))
	for i := range m.Frames {
		record, err := m.Frames[i].MetaData(res)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func resolveTime(raw json.RawMessage, res solar.Resolver) (float64, error) {
	var fraction float64
	if err := json.Unmarshal(raw, &fraction); err == nil {
		return fraction, nil
	}
	var spec string
	if err := json.Unmarshal(raw, &spec); err != nil {
		return 0, fmt.Errorf("time must be a number or a string, got %s", raw)
	}
	return res.ResolveString(spec)
}
