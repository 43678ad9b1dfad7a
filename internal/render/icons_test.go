package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadIcon(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	path := writePNG(t, 64, 32, red)

	icon, err := LoadIcon(path, 35)
	if err != nil {
		t.Fatalf("LoadIcon() failed: %v", err)
	}
	if b := icon.Bounds(); b.Dx() != 35 || b.Dy() != 35 {
		t.Errorf("icon bounds = %v, expected 35x35", b)
	}
	if got := icon.RGBAAt(17, 17); got.R < 250 || got.G > 5 || got.A < 250 {
		t.Errorf("centre pixel = %v, expected about %v", got, red)
	}
}

func TestLoadIconErrors(t *testing.T) {
	if _, err := LoadIcon(filepath.Join(t.TempDir(), "missing.png"), 10); err == nil {
		t.Error("LoadIcon() on a missing file succeeded")
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadIcon(bad, 10); err == nil {
		t.Error("LoadIcon() on garbage succeeded")
	}
}

func TestIconSize(t *testing.T) {
	tests := []struct {
		r    float64
		want int
	}{
		{25, 35},
		{10, 14},
		{0, 1},
	}
	for _, tt := range tests {
		if got := IconSize(tt.r); got != tt.want {
			t.Errorf("IconSize(%v) = %d, expected %d", tt.r, got, tt.want)
		}
	}
}

func TestScaleIconMinimumSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if b := ScaleIcon(src, 0).Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("ScaleIcon(0) bounds = %v, expected 1x1", b)
	}
}
