package codec_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"

	"webpify/internal/services/codec"
	"webpify/internal/testsupport"
)

func TestProbeReportsDimensionsAndColorSpace(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "gradient.png")
	testsupport.WritePNG(t, pngPath, 12, 7)

	lib := codec.NewLibrary()
	meta, err := lib.Probe(context.Background(), pngPath)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if meta.Format != "png" {
		t.Fatalf("unexpected format %q", meta.Format)
	}
	if meta.Width != 12 || meta.Height != 7 {
		t.Fatalf("unexpected dimensions %dx%d", meta.Width, meta.Height)
	}
	if meta.ColorSpace != "rgb" {
		t.Fatalf("unexpected color space %q", meta.ColorSpace)
	}
}

func TestProbeJPEGReportsYCbCr(t *testing.T) {
	dir := t.TempDir()
	jpegPath := filepath.Join(dir, "photo.jpg")
	testsupport.WriteJPEG(t, jpegPath, 10, 10)

	lib := codec.NewLibrary()
	meta, err := lib.Probe(context.Background(), jpegPath)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if meta.Format != "jpeg" {
		t.Fatalf("unexpected format %q", meta.Format)
	}
	if meta.ColorSpace != "ycbcr" {
		t.Fatalf("unexpected color space %q", meta.ColorSpace)
	}
}

func TestProbeRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	txtPath := filepath.Join(dir, "notes.txt")
	testsupport.WriteFile(t, txtPath, 64)

	lib := codec.NewLibrary()
	if _, err := lib.Probe(context.Background(), txtPath); err == nil {
		t.Fatal("expected error for non-image payload")
	}
}

func TestEncodeProducesDecodableWebP(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "gradient.png")
	testsupport.WritePNG(t, pngPath, 16, 16)

	lib := codec.NewLibrary()
	out, err := lib.Encode(context.Background(), pngPath, codec.Options{
		Quality:          90,
		AutoRotate:       true,
		TargetColorSpace: codec.ColorSpaceSRGB,
		Effort:           codec.DefaultEffort,
		AlphaQuality:     codec.FullAlphaQuality,
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty payload")
	}

	img, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode produced webp: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 16 {
		t.Fatalf("unexpected decoded dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestEncodeAcceptsOtherRasterFormats(t *testing.T) {
	dir := t.TempDir()
	lib := codec.NewLibrary()

	gifPath := filepath.Join(dir, "anim.gif")
	testsupport.WriteGIF(t, gifPath, 8, 8)
	jpegPath := filepath.Join(dir, "photo.jpeg")
	testsupport.WriteJPEG(t, jpegPath, 8, 8)
	bmpPath := filepath.Join(dir, "scan.bmp")
	testsupport.WriteBMP(t, bmpPath, 8, 8)

	for _, path := range []string{gifPath, jpegPath, bmpPath} {
		out, err := lib.Encode(context.Background(), path, codec.Options{Quality: 80, AutoRotate: true})
		if err != nil {
			t.Fatalf("Encode %s failed: %v", path, err)
		}
		if len(out) == 0 {
			t.Fatalf("expected payload for %s", path)
		}
	}
}

func TestEncodeQualityClampedInsideService(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "tiny.png")
	testsupport.WritePNG(t, pngPath, 4, 4)

	lib := codec.NewLibrary()
	for _, quality := range []int{-10, 0, 500} {
		if _, err := lib.Encode(context.Background(), pngPath, codec.Options{Quality: quality}); err != nil {
			t.Fatalf("Encode with quality %d failed: %v", quality, err)
		}
	}
}

func TestEncodeHonorsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "tiny.png")
	testsupport.WritePNG(t, pngPath, 4, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lib := codec.NewLibrary()
	if _, err := lib.Encode(ctx, pngPath, codec.Options{Quality: 90}); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestNormalizesToSRGB(t *testing.T) {
	cases := map[string]bool{
		"rgb":        true,
		"display-p3": true,
		"ycbcr":      false,
		"gray":       false,
		"cmyk":       false,
		"indexed":    false,
		"":           false,
	}
	for space, want := range cases {
		if got := codec.NormalizesToSRGB(space); got != want {
			t.Fatalf("NormalizesToSRGB(%q) = %v, want %v", space, got, want)
		}
	}
}
