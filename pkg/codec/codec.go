// Container codec for wallpaper sequences. Frames are 8-bit truecolor
// rasters (no chroma subsampling) muxed into one animated PNG; the metadata
// packet rides along as an iTXt side channel chunk. The codec does not carry
// any native per-frame timing, readers derive sequencing from the embedded
// metadata alone.
package codec

import (
	"bytes"
	"fmt"
	"image"

	"github.com/kettek/apng"

	"github.com/daycycle/go-daywall/pkg/logger"
)

// Frame is one sequence entry: a raster at a fixed size plus the attached
// metadata packet.
type Frame struct {
	width  int
	height int
	xmp    []byte
	raster *image.NRGBA
}

// NewFrame creates an empty frame of the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{width: width, height: height}
}

// SetXMP attaches the metadata packet to the frame.
func (f *Frame) SetXMP(packet []byte) {
	f.xmp = packet
}

// FromRGB converts the raster into the frame. The raster must be non-empty
// and match the frame dimensions.
func (f *Frame) FromRGB(img *image.NRGBA) error {
	if img == nil {
		return fmt.Errorf("nil raster")
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("empty raster")
	}
	if b.Dx() != f.width || b.Dy() != f.height {
		return fmt.Errorf("raster is %dx%d, frame is %dx%d", b.Dx(), b.Dy(), f.width, f.height)
	}
	f.raster = img
	return nil
}

// Encoder collects frames and muxes them into a single container.
type Encoder struct {
	maxThreads int
	frames     []*Frame
}

// NewEncoder creates an encoder. maxThreads is an advisory parallelism
// hint; the underlying png encoder exposes no threading knob and runs
// single threaded, so the hint is accepted and ignored.
func NewEncoder(maxThreads int) *Encoder {
	return &Encoder{maxThreads: maxThreads}
}

// Add appends one frame to the sequence, duration 0, no flags.
func (e *Encoder) Add(f *Frame) error {
	if f == nil || f.raster == nil {
		return fmt.Errorf("frame has no raster")
	}
	e.frames = append(e.frames, f)
	return nil
}

// Finish encodes the collected frames and returns the container bytes.
// All frames carry the same metadata packet by contract; PNG text chunks are
// file scoped, so the packet is written once into the container.
func (e *Encoder) Finish() ([]byte, error) {
	log := logger.Scope("codec")

	if len(e.frames) == 0 {
		return nil, fmt.Errorf("no frames to encode")
	}

	a := apng.APNG{
		Frames:    make([]apng.Frame, len(e.frames)),
		LoopCount: 0,
	}
	for i, f := range e.frames {
		a.Frames[i] = apng.Frame{
			Image:            f.raster,
			DelayNumerator:   0,
			DelayDenominator: 100,
		}
	}

	var buf bytes.Buffer
	if err := apng.Encode(&buf, a); err != nil {
		return nil, err
	}
	log.Debugf("encoded %d frames, %d bytes", len(e.frames), buf.Len())

	packet := e.frames[0].xmp
	if len(packet) == 0 {
		return buf.Bytes(), nil
	}
	return spliceXMP(buf.Bytes(), packet)
}
