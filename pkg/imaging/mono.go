package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"sort"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// ErrConversionFailed wraps every failure in the conversion pipeline. Callers
// should treat a failed conversion as "print without logo", never as fatal.
var ErrConversionFailed = errors.New("imaging: conversion failed")

// Threshold tuning. The adaptive threshold is the midpoint of the grayscale
// mean and median, clamped and then scaled down to bias toward black, which
// reads better on thermal paper.
const (
	thresholdMin   = 70
	thresholdMax   = 150
	thresholdScale = 0.6
	contrastFactor = 2.0
	gamma          = 1.2
)

// MonoBitmap is a 1-bit image packed 8 horizontal pixels per byte,
// MSB first, row-major. A set bit is a black (printed) dot.
type MonoBitmap struct {
	Width  int
	Height int
	Stride int // bytes per row, ceil(Width/8)
	Data   []byte
}

// Convert decodes data, scales it proportionally to targetWidthDots and
// binarizes it with an adaptive threshold. 384 dots is the usual target for
// an 80mm printer.
func Convert(data []byte, targetWidthDots int) (*MonoBitmap, error) {
	if targetWidthDots <= 0 {
		return nil, fmt.Errorf("%w: invalid target width %d", ErrConversionFailed, targetWidthDots)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrConversionFailed, err)
	}

	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, fmt.Errorf("%w: zero-dimension image", ErrConversionFailed)
	}

	width := targetWidthDots
	height := int(math.Round(float64(srcH) * float64(width) / float64(srcW)))
	if height < 1 {
		height = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, bounds, draw.Src, nil)

	gray := grayscale(scaled)
	threshold := adaptiveThreshold(gray)

	stride := (width + 7) / 8
	packed := make([]byte, stride*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sample := adjust(gray[y*width+x])
			if sample < threshold {
				packed[y*stride+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}

	return &MonoBitmap{
		Width:  width,
		Height: height,
		Stride: stride,
		Data:   packed,
	}, nil
}

// grayscale converts the image to luminance samples. Fully transparent
// pixels are treated as white paper.
func grayscale(img *image.RGBA) []float64 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]float64, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			r, g, b, a := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
			if a == 0 {
				out[y*w+x] = 255
				continue
			}
			out[y*w+x] = 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
		}
	}
	return out
}

// adaptiveThreshold picks a per-image cutoff: the midpoint of the mean and
// median, clamped to [thresholdMin, thresholdMax] and scaled by
// thresholdScale.
func adaptiveThreshold(gray []float64) float64 {
	var sum float64
	sorted := make([]float64, len(gray))
	copy(sorted, gray)
	sort.Float64s(sorted)

	for _, v := range gray {
		sum += v
	}
	mean := sum / float64(len(gray))
	median := sorted[len(sorted)/2]

	threshold := (mean + median) / 2
	if threshold < thresholdMin {
		threshold = thresholdMin
	}
	if threshold > thresholdMax {
		threshold = thresholdMax
	}
	return threshold * thresholdScale
}

// adjust applies a contrast stretch around the midpoint followed by a gamma
// correction to a single grayscale sample.
func adjust(v float64) float64 {
	c := (v-128)*contrastFactor + 128
	if c < 0 {
		c = 0
	}
	if c > 255 {
		c = 255
	}
	return 255 * math.Pow(c/255, gamma)
}
