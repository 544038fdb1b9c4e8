package storage

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// MaxImageSide bounds the longest side of stored photos and signatures.
const MaxImageSide = 1200

// NormalizeImage applies the EXIF orientation and shrinks images whose longest
// side exceeds MaxImageSide. The result is re-encoded in the input format.
func NormalizeImage(data []byte, contentType string) ([]byte, error) {
	var format imaging.Format
	switch contentType {
	case "image/jpeg":
		format = imaging.JPEG
	case "image/png":
		format = imaging.PNG
	default:
		return data, nil
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() > MaxImageSide || b.Dy() > MaxImageSide {
		if b.Dx() >= b.Dy() {
			img = imaging.Resize(img, MaxImageSide, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, MaxImageSide, imaging.Lanczos)
		}
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
