package codec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Library implements Service with in-process decoders and the libwebp
// encoder, avoiding any external tool shell-out.
type Library struct{}

// NewLibrary constructs a Library service.
func NewLibrary() *Library {
	return &Library{}
}

// Probe decodes the image header and reports dimensions plus a color space
// label the engine uses to decide sRGB normalization.
func (l *Library) Probe(ctx context.Context, path string) (Metadata, error) {
	if strings.TrimSpace(path) == "" {
		return Metadata{}, errors.New("input path required")
	}
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Metadata{}, err
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return Metadata{}, fmt.Errorf("decode header: %w", err)
	}

	return Metadata{
		Format:     format,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ColorSpace: colorSpaceLabel(cfg.ColorModel),
	}, nil
}

// Encode decodes the source, applies orientation and color handling per opts,
// and returns the finished WebP payload.
func (l *Library) Encode(ctx context.Context, path string, opts Options) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("input path required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := l.decode(path, opts.AutoRotate)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if opts.TargetColorSpace == ColorSpaceSRGB {
		// Clone flattens wide and 16-bit sources to 8-bit NRGBA.
		img = imaging.Clone(img)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	quality := opts.Quality
	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}

	var buf bytes.Buffer
	encOpts := &webp.Options{
		Lossless: opts.Lossless,
		Quality:  float32(quality),
		Exact:    opts.AlphaQuality >= FullAlphaQuality,
	}
	if err := webp.Encode(&buf, img, encOpts); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func (l *Library) decode(path string, autoRotate bool) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return webp.Decode(file)
	}
	return imaging.Open(path, imaging.AutoOrientation(autoRotate))
}

func colorSpaceLabel(model color.Model) string {
	switch model {
	case color.YCbCrModel, color.NYCbCrAModel:
		return "ycbcr"
	case color.CMYKModel:
		return "cmyk"
	case color.GrayModel, color.Gray16Model:
		return "gray"
	case color.NRGBAModel, color.RGBAModel, color.NRGBA64Model, color.RGBA64Model:
		return "rgb"
	}
	if _, ok := model.(color.Palette); ok {
		return "indexed"
	}
	return "rgb"
}

var _ Service = (*Library)(nil)
