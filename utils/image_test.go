package utils

import (
	"bytes"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnail_ResizesToExactDimensions(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, image.NewRGBA(image.Rect(0, 0, 640, 480))))

	out, err := Thumbnail(&src, 180, 180)
	require.NoError(t, err)

	data, err := io.ReadAll(out)
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 180, img.Bounds().Dx())
	assert.Equal(t, 180, img.Bounds().Dy())
}

func TestThumbnail_RejectsGarbage(t *testing.T) {
	_, err := Thumbnail(bytes.NewReader([]byte("definitely not an image")), 180, 180)
	assert.Error(t, err)
}
