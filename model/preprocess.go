package model

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/nfnt/resize"
)

// ErrDecode reports that an upload could not be interpreted as an image.
var ErrDecode = errors.New("cannot decode image")

// Decode parses raw upload bytes into an image. JPEG, PNG, GIF and WEBP are
// supported. Anything else wraps ErrDecode.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// Preprocess converts a decoded image of any size and color mode into the
// classifier's input: resized to 224x224, intensities scaled to [0,1],
// flattened in NHWC order with an implicit leading batch dimension of 1.
// Pure function, no side effects.
func Preprocess(img image.Image) []float32 {
	resized := resize.Resize(InputWidth, InputHeight, img, resize.Lanczos3)

	out := make([]float32, InputSize)
	i := 0
	for y := 0; y < InputHeight; y++ {
		for x := 0; x < InputWidth; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()

			// RGBA returns 16-bit channels; 65535 maps to 1.0.
			out[i] = float32(r) / 65535.0
			out[i+1] = float32(g) / 65535.0
			out[i+2] = float32(b) / 65535.0
			i += 3
		}
	}

	return out
}

// PreprocessBytes decodes and preprocesses in one step.
func PreprocessBytes(data []byte) ([]float32, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Preprocess(img), nil
}
