package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// LoadIcon decodes the image at path and scales it to a size x size square.
func LoadIcon(path string, size int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	return ScaleIcon(src, size), nil
}

// ScaleIcon resamples src into a size x size square.
func ScaleIcon(src image.Image, size int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// IconSize returns the pixel size icons are drawn at for targets of radius r.
func IconSize(r float64) int {
	return max(int(2*r*iconScale+0.5), 1)
}
