// All files related functions
package storage

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cfg "github.com/daycycle/go-daywall/pkg/config"
)

// LoadImage decodes a source image, any registered format.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return img, nil
}

// LoadImages decodes every source image, in order. progress, if non-nil,
// is called once per loaded file.
func LoadImages(paths []string, progress func()) ([]image.Image, error) {
	images := make([]image.Image, 0, len(paths))
	for _, path := range paths {
		img, err := LoadImage(path)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
		if progress != nil {
			progress()
		}
	}
	return images, nil
}

// SaveFrame writes one extracted frame as a numbered png.
func SaveFrame(dir string, idx int, img image.Image) error {
	path := filepath.Join(dir, fmt.Sprintf(cfg.FrameFilePattern, idx))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("cannot encode frame %d: %w", idx, err)
	}
	return nil
}

// ScanImages lists the image files in a dir, sorted by name.
func ScanImages(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	list := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(file.Name())) {
		case ".png", ".jpg", ".jpeg":
			list = append(list, filepath.Join(dir, file.Name()))
		}
	}
	sort.Strings(list)
	return list, nil
}
