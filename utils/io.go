package utils

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"iter"
	"os"
	"path/filepath"

	"github.com/stevenijones/inkstack"
)

func ReadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SaveLayers consumes an export stream, writing each layer to
// dir/<prefix>-<label>.png in sequence.
func SaveLayers(layers iter.Seq2[string, *inkstack.Pixmap], dir, prefix string) error {
	for label, pm := range layers {
		name := filepath.Join(dir, prefix+"-"+label+".png")
		if err := SaveImage(pm.RGBA(), name); err != nil {
			return fmt.Errorf("saving %s: %w", name, err)
		}
	}
	return nil
}
