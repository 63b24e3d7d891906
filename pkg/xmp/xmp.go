// Side channel packet for the wallpaper metadata. The packet is a fixed XMP
// template with a single placeholder token, replaced at pack time by the
// base64 encoding of the minified JSON metadata array. Array index i
// describes frame i of the container sequence.
package xmp

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"fmt"

	cfg "github.com/daycycle/go-daywall/pkg/config"
	"github.com/daycycle/go-daywall/pkg/metadata"
)

//go:embed template.xml
var template []byte

// Pack serializes the records into one self-contained metadata packet.
func Pack(records []metadata.MetaData) ([]byte, error) {
	array, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize metadata: %w", err)
	}

	payload := base64.StdEncoding.EncodeToString(array)
	packet := bytes.Replace(template, []byte(cfg.PlaceholderToken), []byte(payload), 1)
	return packet, nil
}

// Unpack extracts the metadata array from a packet produced by Pack.
func Unpack(packet []byte) ([]metadata.MetaData, error) {
	start := bytes.Index(packet, []byte(cfg.MetaDataTagOpen))
	if start < 0 {
		return nil, fmt.Errorf("no metadata element in packet")
	}
	start += len(cfg.MetaDataTagOpen)

	end := bytes.Index(packet[start:], []byte(cfg.MetaDataTagClose))
	if end < 0 {
		return nil, fmt.Errorf("unterminated metadata element in packet")
	}

	payload := bytes.TrimSpace(packet[start : start+end])
	array, err := base64.StdEncoding.DecodeString(string(payload))
	if err != nil {
		return nil, fmt.Errorf("cannot decode metadata payload: %w", err)
	}

	var records []metadata.MetaData
	if err := json.Unmarshal(array, &records); err != nil {
		return nil, fmt.Errorf("cannot parse metadata array: %w", err)
	}
	return records, nil
}
