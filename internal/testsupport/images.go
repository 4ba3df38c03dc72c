package testsupport

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// WritePNG renders a small gradient of the given dimensions and writes it as a
// real PNG so decode paths see valid pixel data.
func WritePNG(t testing.TB, path string, width, height int) {
	t.Helper()
	writeImage(t, path, func(f *os.File) error {
		return png.Encode(f, testImage(width, height))
	})
}

// WriteJPEG writes a real JPEG of the given dimensions.
func WriteJPEG(t testing.TB, path string, width, height int) {
	t.Helper()
	writeImage(t, path, func(f *os.File) error {
		return jpeg.Encode(f, testImage(width, height), &jpeg.Options{Quality: 85})
	})
}

// WriteGIF writes a real single-frame GIF of the given dimensions.
func WriteGIF(t testing.TB, path string, width, height int) {
	t.Helper()
	writeImage(t, path, func(f *os.File) error {
		return gif.Encode(f, testImage(width, height), nil)
	})
}

// WriteBMP writes a real BMP of the given dimensions.
func WriteBMP(t testing.TB, path string, width, height int) {
	t.Helper()
	writeImage(t, path, func(f *os.File) error {
		return bmp.Encode(f, testImage(width, height))
	})
}

func writeImage(t testing.TB, path string, encode func(*os.File) error) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if err := encode(f); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func testImage(width, height int) *image.NRGBA {
	if width <= 0 {
		width = 8
	}
	if height <= 0 {
		height = 8
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: 0x40,
				A: 0xff,
			})
		}
	}
	return img
}
