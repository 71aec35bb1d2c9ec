package model

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 5), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestPreprocessShapeInvariant(t *testing.T) {
	sizes := []struct{ w, h int }{
		{10, 7},
		{224, 224},
		{640, 480},
		{1, 1},
	}
	for _, size := range sizes {
		input, err := PreprocessBytes(pngBytes(t, size.w, size.h))
		if err != nil {
			t.Fatalf("unexpected error for %dx%d: %v", size.w, size.h, err)
		}
		if len(input) != InputSize {
			t.Fatalf("expected %d values for %dx%d, got %d", InputSize, size.w, size.h, len(input))
		}
		for i, v := range input {
			if v < 0 || v > 1 {
				t.Fatalf("value %f at index %d outside [0,1]", v, i)
			}
		}
	}
}

func TestPreprocessIsPure(t *testing.T) {
	data := pngBytes(t, 32, 32)
	first, err := PreprocessBytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := PreprocessBytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("outputs differ at index %d: %f vs %f", i, first[i], second[i])
		}
	}
}

func TestDecodeRejectsNonImage(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"))
	if err == nil {
		t.Fatal("expected an error for non-image bytes")
	}
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestDecodeRejectsTruncatedImage(t *testing.T) {
	data := pngBytes(t, 64, 64)
	if _, err := Decode(data[:20]); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode for truncated stream, got %v", err)
	}
}
