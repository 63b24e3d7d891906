package xmp

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/daycycle/go-daywall/pkg/metadata"
)

func sampleRecords() []metadata.MetaData {
	var a, b, c metadata.MetaData
	a.SetTime(0.0)
	a.SetCrossFadeMode(metadata.CrossFade)
	b.SetTime(0.5)
	b.SetSolarElevation(42.1)
	b.SetSolarAzimuth(180.0)
	c.SetIndex(2)
	return []metadata.MetaData{a, b, c}
}

func TestPackReplacesPlaceholder(t *testing.T) {
	packet, err := Pack(sampleRecords())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(packet, []byte("<daywall:MetaData>")) {
		t.Error("packet lost the metadata element")
	}
	if bytes.Contains(packet, []byte(">base64</")) {
		t.Error("placeholder token was not replaced")
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	records := sampleRecords()
	packet, err := Pack(records)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := Unpack(packet)
	if err != nil {
		t.Fatal(err)
	}
	if len(parsed) != len(records) {
		t.Fatalf("got %d records, want %d", len(parsed), len(records))
	}
	for i := range records {
		if parsed[i].Fields() != records[i].Fields() {
			t.Errorf("record %d: mask %05b, want %05b", i, parsed[i].Fields(), records[i].Fields())
		}
	}
	if parsed[1].SolarElevation() != 42.1 {
		t.Errorf("got elevation %g, want 42.1", parsed[1].SolarElevation())
	}
	if parsed[2].Index() != 2 {
		t.Errorf("got index %d, want 2", parsed[2].Index())
	}
}

func TestPackEmptyList(t *testing.T) {
	packet, err := Pack([]metadata.MetaData{})
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Unpack(packet)
	if err != nil {
		t.Fatal(err)
	}
	if len(parsed) != 0 {
		t.Errorf("got %d records, want 0", len(parsed))
	}
}

func TestUnpackRejectsGarbage(t *testing.T) {
	if _, err := Unpack([]byte("not an xmp packet")); err == nil {
		t.Error("expected an error for a packet without the metadata element")
	}

	bad := bytes.Replace(template, []byte("base64"), []byte("!!not-base64!!"), 1)
	if _, err := Unpack(bad); err == nil {
		t.Error("expected an error for an invalid payload")
	}

	payload := base64.StdEncoding.EncodeToString([]byte("{broken"))
	bad = bytes.Replace(template, []byte("base64"), []byte(payload), 1)
	if _, err := Unpack(bad); err == nil {
		t.Error("expected an error for a non-array payload")
	}
}
