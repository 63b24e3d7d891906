package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/daycycle/go-daywall/pkg/manifest"
	"github.com/daycycle/go-daywall/pkg/reader"
	"github.com/daycycle/go-daywall/pkg/storage"
	"github.com/daycycle/go-daywall/pkg/workers"
)

// Verify builds the manifest to a temp file, reads it back and checks that
// frame count, metadata and pixel data survived the round trip.
func (c *Core) Verify(manifestPath string) error {
	tmpDir, err := os.MkdirTemp("", "daywall-verify-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)
	out := filepath.Join(tmpDir, "verify.png")

	if err := c.Build(manifestPath, out); err != nil {
		return err
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	records, err := m.MetaDataAll(c.resolver)
	if err != nil {
		return err
	}
	paths := make([]string, 0, len(m.Frames))
	for _, entry := range m.Frames {
		paths = append(paths, entry.Image)
	}
	sources, err := storage.LoadImages(paths, nil)
	if err != nil {
		return err
	}

	wp, err := reader.ReadFile(out)
	if err != nil {
		return err
	}
	if len(wp.Images) != len(m.Frames) {
		return fmt.Errorf("got %d frames back, want %d", len(wp.Images), len(m.Frames))
	}
	if len(wp.MetaData) != len(records) {
		return fmt.Errorf("got %d records back, want %d", len(wp.MetaData), len(records))
	}
	for i := range records {
		want, err := json.Marshal(records[i])
		if err != nil {
			return err
		}
		got, err := json.Marshal(wp.MetaData[i])
		if err != nil {
			return err
		}
		if !bytes.Equal(got, want) {
			return fmt.Errorf("record %d changed in round trip: got %s, want %s", i, got, want)
		}
	}

	if err := compareFrames(wp.Images, sources); err != nil {
		return err
	}

	log.Info("Round trip OK")
	return nil
}

// compareFrames checks the decoded frames pixel for pixel against the
// source images. The container is lossless, so an exact match is expected.
func compareFrames(got []image.Image, want []image.Image) error {
	if len(got) != len(want) {
		return fmt.Errorf("got %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		a := workers.Convert(got[i])
		b := workers.Convert(want[i])
		if a == nil || b == nil {
			return fmt.Errorf("frame %d is missing", i)
		}
		if a.Bounds() != b.Bounds() {
			return fmt.Errorf("frame %d is %v, want %v", i, a.Bounds(), b.Bounds())
		}
		if !bytes.Equal(a.Pix, b.Pix) {
			return fmt.Errorf("frame %d changed in round trip", i)
		}
	}
	return nil
}
