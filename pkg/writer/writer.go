// Package writer assembles day-cycle wallpaper frames and their metadata
// records into a single container file.
//
// If anything goes wrong while flushing, check Error() to find the kind of
// failure and ErrorString() for a human readable description. Note that
// Flush returns false only when the target cannot be opened for writing;
// an encoder failure is recorded in Error() but Flush still returns true,
// so callers must not rely on the boolean alone.
package writer

import (
	"context"
	"image"
	"io"
	"os"
	"runtime"

	"github.com/daycycle/go-daywall/pkg/codec"
	"github.com/daycycle/go-daywall/pkg/logger"
	"github.com/daycycle/go-daywall/pkg/metadata"
	"github.com/daycycle/go-daywall/pkg/workers"
	"github.com/daycycle/go-daywall/pkg/xmp"
)

type WriteError int

const (
	NoError WriteError = iota
	DeviceError
	EncoderError
)

type Writer struct {
	images    []*image.NRGBA
	metaData  []metadata.MetaData
	err       WriteError
	errString string
}

func New() *Writer {
	return &Writer{}
}

// SetMetaData stores the records describing each frame, record i for
// frame i. No validation is performed.
func (w *Writer) SetMetaData(records []metadata.MetaData) {
	w.metaData = append([]metadata.MetaData(nil), records...)
}

func (w *Writer) MetaData() []metadata.MetaData {
	return w.metaData
}

// SetImages stores a converted copy of each input raster in the fixed
// 8-bit NRGBA layout. Conversion happens here, not at flush time, and the
// unconverted originals are not retained.
func (w *Writer) SetImages(images []image.Image) {
	pool := workers.NewWorker(context.Background())
	w.images = pool.ConvertAll(images)
}

func (w *Writer) Images() []*image.NRGBA {
	return w.images
}

// Flush begins a write sequence to the device and returns true if one was
// started. The device must be writable; an *os.File opened read-only is a
// DeviceError. The device is left open, it stays in the caller's care.
func (w *Writer) Flush(device io.Writer) bool {
	w.err = NoError
	w.errString = ""

	if device == nil {
		w.err = DeviceError
		w.errString = "The device is not open for writing"
		return false
	}
	if f, ok := device.(*os.File); ok && !writableFile(f) {
		w.err = DeviceError
		w.errString = "The device is not open for writing"
		return false
	}

	w.flush(device)
	return true
}

// FlushFile begins a write sequence to the named file and returns true if
// one was started. The file is created or truncated, and closed before
// return.
func (w *Writer) FlushFile(filename string) bool {
	w.err = NoError
	w.errString = ""

	file, err := os.Create(filename)
	if err != nil {
		w.err = DeviceError
		w.errString = err.Error()
		return false
	}
	defer file.Close()

	w.flush(file)
	return true
}

func (w *Writer) flush(device io.Writer) {
	log := logger.Scope("writer")

	packet, err := xmp.Pack(w.metaData)
	if err != nil {
		w.err = EncoderError
		w.errString = err.Error()
		return
	}

	enc := codec.NewEncoder(runtime.NumCPU())
	for i, img := range w.images {
		var width, height int
		if img != nil {
			width, height = img.Bounds().Dx(), img.Bounds().Dy()
		}
		frame := codec.NewFrame(width, height)
		frame.SetXMP(packet)

		// a frame that fails conversion is dropped, the rest of the
		// sequence still goes out
		if err := frame.FromRGB(img); err != nil {
			log.Debugf("skipping frame %d: %v", i, err)
			continue
		}
		if err := enc.Add(frame); err != nil {
			log.Debugf("skipping frame %d: %v", i, err)
			continue
		}
	}

	out, err := enc.Finish()
	if err != nil {
		w.err = EncoderError
		w.errString = err.Error()
		return
	}

	if _, err := device.Write(out); err != nil {
		w.err = DeviceError
		w.errString = err.Error()
	}
}

// Error returns the kind of the last error that occurred.
func (w *Writer) Error() WriteError {
	return w.err
}

// ErrorString returns the human readable description of the last error.
func (w *Writer) ErrorString() string {
	if w.err == NoError {
		return "No error"
	}
	return w.errString
}
