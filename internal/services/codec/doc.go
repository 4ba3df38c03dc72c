// Package codec integrates the image decode and WebP encode libraries so the
// conversion engine can treat pixel work as a black box.
//
// It exposes a Service interface, a Library implementation backed by
// disintegration/imaging for decoding (with EXIF auto-orientation) and
// chai2010/webp for encoding, and metadata probing used to decide color-space
// normalization. Tests can swap in fakes to avoid real pixel work while still
// exercising engine behaviour.
package codec
