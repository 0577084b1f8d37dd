package utils

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtils_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(5, Max(5, 2))
	assert.Equal(0.25, Min(0.5, 0.25))
}

func TestUtils_Clamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Clamp(-4, 0, 255))
	assert.Equal(255, Clamp(300, 0, 255))
	assert.Equal(131, Clamp(131, 0, 255))
}

func TestUtils_Contains(t *testing.T) {
	assert.True(t, Contains([]string{"png", "bmp"}, "bmp"))
	assert.False(t, Contains([]string{"png", "bmp"}, "jpg"))
	assert.False(t, Contains([]int{}, 0))
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 4, 4))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	ftype, err := DetectContentType(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ftype)

	_, err = DetectContentType(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestUtils_DecorateText(t *testing.T) {
	defer func(old bool) { NoColor = old }(NoColor)

	NoColor = false
	s := DecorateText("ok", SuccessMessage)
	assert.True(t, strings.HasPrefix(s, SuccessColor))
	assert.True(t, strings.HasSuffix(s, DefaultColor))

	NoColor = true
	assert.Equal(t, "ok", DecorateText("ok", ErrorMessage))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_SpinnerStopMessage(t *testing.T) {
	var buf syncBuffer
	s := NewSpinner("working", time.Millisecond, false)
	s.writer = &buf
	s.StopMsg = "done\n"

	s.Start()
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	s.Stop()

	assert.True(t, strings.HasSuffix(buf.String(), "done\n"))
}
