// normalizer.go - Image preprocessing for better OCR accuracy

package processor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/SumitR-washimkar/hackthon2/configs"
)

// ErrDecode marks input bytes that cannot be decoded as a raster image.
// It is the only failure of the extraction pipeline that reaches the caller.
var ErrDecode = errors.New("cannot decode image")

const (
	// Receipts narrower than this get upscaled before recognition.
	minRecognitionWidth = 1000
	// Target width for upscaled images.
	upscaleTargetWidth = 1500

	jpegQuality = 95
)

// Normalize prepares raw image bytes for text recognition: grayscale
// conversion, then an isotropic Lanczos upscale to 1500px wide when the
// source is narrower than 1000px. The result is re-encoded as JPEG
// (quality 95) when the source was JPEG, PNG otherwise.
//
// Normalization is best-effort: after a successful decode, any later
// failure falls back to the original bytes so recognition still runs.
// Returns the image bytes and their MIME type.
func Normalize(data []byte) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if !configs.ENABLE_IMAGE_PREPROCESSING {
		return data, sniffMIME(data), nil
	}

	img = imaging.Grayscale(img)

	if img.Bounds().Dx() < minRecognitionWidth {
		// Height follows from the same scale factor, rounded to nearest.
		img = imaging.Resize(img, upscaleTargetWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	mimeType := "image/png"
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
		mimeType = "image/jpeg"
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		// Recognizers can still work with the unprocessed original.
		return data, sniffMIME(data), nil
	}

	return buf.Bytes(), mimeType, nil
}

func sniffMIME(data []byte) string {
	return mimetype.Detect(data).String()
}
