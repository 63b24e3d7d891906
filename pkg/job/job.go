package job

import (
	"fmt"
	"image"
)

// job for the conversion worker
type JobConv struct {
	Idx int
	Img image.Image
}

func (j *JobConv) Print() string {
	if j.Img == nil {
		return fmt.Sprintf("Job: Idx: %d, Img: nil", j.Idx)
	}
	b := j.Img.Bounds()
	return fmt.Sprintf("Job: Idx: %d, Img: %dx%d", j.Idx, b.Dx(), b.Dy())
}
