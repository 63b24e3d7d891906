package core

import (
	"fmt"
	"time"

	"github.com/daycycle/go-daywall/pkg/core/progress"
	"github.com/daycycle/go-daywall/pkg/manifest"
	"github.com/daycycle/go-daywall/pkg/storage"
	"github.com/daycycle/go-daywall/pkg/writer"
)

// Build packages the manifest's images and metadata into one wallpaper
// file.
func (c *Core) Build(manifestPath, out string) error {
	log := log.WithField("scope", "core build")

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
	progress.ProgressReset(len(paths), "Loading frames... ")
	images, err := storage.LoadImages(paths, func() { progress.Add(1) })
	if err != nil {
		return err
	}
	progress.Finish()

	w := writer.New()
	w.SetImages(images)
	w.SetMetaData(records)
	log.Debugf("converted %d frames", len(w.Images()))

	// setup progress spinner async, otherwise it wont animate
	progress.ProgressSpinner("Encoding wallpaper... ")
	done := make(chan bool)
	go func(done <-chan bool) {
		ticker := time.NewTicker(time.Millisecond * 300)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				progress.Add(1) // spin
			case <-done:
				return
			}
		}
	}(done)

	ok := w.FlushFile(out)
	close(done)
	if !ok {
		return fmt.Errorf("cannot write %s: %s", out, w.ErrorString())
	}
	// flush returns true even on encoder failure, the error state is
	// authoritative
	if w.Error() != writer.NoError {
		return fmt.Errorf("encoding %s failed: %s", out, w.ErrorString())
	}

	log.Infof("Wallpaper saved: %s (%d frames)", out, len(images))
	return nil
}
