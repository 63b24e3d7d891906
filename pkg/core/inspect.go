package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/daycycle/go-daywall/pkg/core/progress"
	"github.com/daycycle/go-daywall/pkg/metadata"
	"github.com/daycycle/go-daywall/pkg/reader"
	"github.com/daycycle/go-daywall/pkg/storage"
)

// Inspect prints the metadata records embedded in a wallpaper file.
func (c *Core) Inspect(path string) error {
	wp, err := reader.ReadFile(path)
	if err != nil {
		return err
	}

	log.Infof("%s: %d frames, %d metadata records", path, len(wp.Images), len(wp.MetaData))
	if len(wp.Images) != len(wp.MetaData) {
		log.Warnf("frame count and metadata count differ")
	}
	for i, record := range wp.MetaData {
		log.Infof("  [%d] %s", i, describe(record))
	}
	return nil
}

// Extract saves every frame of a wallpaper file as a numbered png.
func (c *Core) Extract(path, dir string) error {
	wp, err := reader.ReadFile(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	progress.ProgressReset(len(wp.Images), "Extracting frames... ")
	for i, img := range wp.Images {
		if err := storage.SaveFrame(dir, i, img); err != nil {
			return err
		}
		progress.Add(1)
	}
	progress.Finish()

	log.Infof("Extracted %d frames to %s", len(wp.Images), dir)
	return nil
}

func describe(m metadata.MetaData) string {
	if !m.IsValid() {
		return "empty record"
	}
	parts := make([]string, 0, 5)
	if m.Fields()&metadata.TimeField != 0 {
		parts = append(parts, fmt.Sprintf("time=%.4f", m.Time()))
	}
	if m.Fields()&metadata.SolarElevationField != 0 {
		parts = append(parts, fmt.Sprintf("elevation=%.2f", m.SolarElevation()))
	}
	if m.Fields()&metadata.SolarAzimuthField != 0 {
		parts = append(parts, fmt.Sprintf("azimuth=%.2f", m.SolarAzimuth()))
	}
	if m.Fields()&metadata.IndexField != 0 {
		parts = append(parts, fmt.Sprintf("index=%d", m.Index()))
	}
	if m.Fields()&metadata.CrossFadeField != 0 {
		if m.CrossFadeMode() == metadata.CrossFade {
			parts = append(parts, "cross-fade")
		} else {
			parts = append(parts, "hard-cut")
		}
	}
	return strings.Join(parts, ", ")
}
