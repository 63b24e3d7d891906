package workers

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"runtime"
	"sync"

	"github.com/daycycle/go-daywall/pkg/job"
	"github.com/daycycle/go-daywall/pkg/logger"
)

var log = logger.Log

type Worker struct {
	ctx context.Context
}

func NewWorker(ctx context.Context) *Worker {
	return &Worker{ctx: ctx}
}

// ConvertAll normalizes every input image to an 8-bit NRGBA raster, in
// parallel, preserving order. A nil input stays nil in the output.
func (w *Worker) ConvertAll(images []image.Image) []*image.NRGBA {
	out := make([]*image.NRGBA, len(images))

	jobs := make(chan job.JobConv)
	numCpu := runtime.NumCPU()
	log.Debugf("Starting %d conversion workers", numCpu)

	wg := sync.WaitGroup{}
	for i := 0; i < numCpu; i++ {
		wg.Add(1)
		i := i
		go func() {
			w.workerConvert(i, jobs, out)
			wg.Done()
		}()
	}

	for i, img := range images {
		select {
		case <-w.ctx.Done():
			close(jobs)
			wg.Wait()
			return out
		case jobs <- job.JobConv{Idx: i, Img: img}:
		}
	}
	close(jobs)
	wg.Wait()
	log.Debug("All conversion workers done")

	return out
}

func (w *Worker) workerConvert(id int, jobs <-chan job.JobConv, out []*image.NRGBA) {
	name := fmt.Sprintf("WorkerConvert #%d", id)
	log.Debugf("%s started\n", name)
	defer log.Debugf("%s finished\n", name)

	for {
		select {
		case <-w.ctx.Done():
			return
		case j, ok := <-jobs:
			if !ok {
				return
			}
			log.Debugf("%s got job %s\n", name, j.Print())
			out[j.Idx] = Convert(j.Img)
		}
	}
}

// Convert redraws an image into an 8-bit NRGBA raster anchored at the
// origin. Returns nil for a nil input.
func Convert(img image.Image) *image.NRGBA {
	if img == nil {
		return nil
	}
	// fast path only for a packed raster: a sub-image keeps the parent's
	// stride, a linear copy would misalign its rows
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == image.Pt(0, 0) &&
		nrgba.Stride == 4*nrgba.Rect.Dx() &&
		len(nrgba.Pix) == nrgba.Stride*nrgba.Rect.Dy() {
		// already in the target layout, still copy to cut the alias
		dst := image.NewNRGBA(nrgba.Rect)
		copy(dst.Pix, nrgba.Pix)
		return dst
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
