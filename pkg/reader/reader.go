// Package reader is the counterpart of the writer: it pulls the frames and
// the embedded metadata array back out of a wallpaper container.
package reader

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/kettek/apng"

	"github.com/daycycle/go-daywall/pkg/codec"
	"github.com/daycycle/go-daywall/pkg/logger"
	"github.com/daycycle/go-daywall/pkg/metadata"
	"github.com/daycycle/go-daywall/pkg/xmp"
)

// ErrNoMetaData is returned for containers without an embedded metadata
// packet.
var ErrNoMetaData = errors.New("no wallpaper metadata in container")

// Wallpaper is a decoded dynamic wallpaper. MetaData index i describes
// Images index i; the lists may differ in length if the file was written
// with mismatched inputs.
type Wallpaper struct {
	Images   []image.Image
	MetaData []metadata.MetaData
}

// Read decodes a wallpaper container from the reader.
func Read(r io.Reader) (*Wallpaper, error) {
	log := logger.Scope("reader")

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	decoded, err := apng.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode container: %w", err)
	}

	images := make([]image.Image, len(decoded.Frames))
	for i := range decoded.Frames {
		images[i] = decoded.Frames[i].Image
	}

	// a missing or garbled packet still leaves the frames usable, hand
	// them back alongside the error
	packet, ok := codec.ExtractXMP(data)
	if !ok {
		return &Wallpaper{Images: images}, ErrNoMetaData
	}
	records, err := xmp.Unpack(packet)
	if err != nil {
		return &Wallpaper{Images: images}, err
	}
	log.Debugf("read %d frames, %d metadata records", len(images), len(records))

	return &Wallpaper{Images: images, MetaData: records}, nil
}

// ReadFile decodes a wallpaper container from the named file.
func ReadFile(filename string) (*Wallpaper, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// CanRead reports whether the named file looks like a dynamic wallpaper:
// an animated container carrying a metadata packet.
func CanRead(filename string) bool {
	data, err := os.ReadFile(filename)
	if err != nil {
		return false
	}
	if !codec.HasAnimation(data) {
		return false
	}
	_, ok := codec.ExtractXMP(data)
	return ok
}
