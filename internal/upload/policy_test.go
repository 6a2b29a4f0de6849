package upload

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	return buf.Bytes()
}

func TestValidate_AcceptsImage(t *testing.T) {
	assert.NoError(t, Validate("receipt.png", pngBytes(t)))
	assert.NoError(t, Validate("RECEIPT.JPG", pngBytes(t)))
}

func TestValidate_RejectsExtension(t *testing.T) {
	for _, name := range []string{"receipt.pdf", "receipt", "archive.tar.gz", ".png.txt"} {
		err := Validate(name, pngBytes(t))
		assert.ErrorIs(t, err, ErrExtensionNotAllowed, "filename %q", name)
	}
}

func TestValidate_RejectsNonImageContent(t *testing.T) {
	err := Validate("fake.png", []byte("plain text pretending to be a receipt"))
	require.ErrorIs(t, err, ErrNotAnImage)
	assert.ErrorContains(t, err, "detected")
}

func TestValidate_RejectsOversizedFile(t *testing.T) {
	data := make([]byte, MaxFileSize+1)
	copy(data, pngBytes(t))

	err := Validate("big.png", data)
	require.ErrorIs(t, err, ErrFileTooLarge)
	assert.ErrorContains(t, err, "max 10MB")
}

func TestValidate_ExtensionCheckedFirst(t *testing.T) {
	// A disallowed extension wins even when the content would also fail.
	err := Validate("notes.txt", []byte("plain text"))
	assert.ErrorIs(t, err, ErrExtensionNotAllowed)
}

func TestValidate_SizeLimitBoundary(t *testing.T) {
	data := make([]byte, MaxFileSize)
	copy(data, pngBytes(t))
	assert.NoError(t, Validate("exact.png", data))
}

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("receipt.png"))
	assert.True(t, AllowedFile("RECEIPT.PNG"))
	assert.True(t, AllowedFile("trip/receipts/hotel.webp"))
	assert.False(t, AllowedFile("receipt.pdf"))
	assert.False(t, AllowedFile("receipt"))
	assert.False(t, AllowedFile(""))
}
