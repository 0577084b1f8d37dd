package scanicon

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for output formats which are lossy or
// cannot carry an alpha channel.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is a lossless RGBA raster format.
type Format string

// The supported output formats.
const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ParseFormat accepts a format name or file extension, with or without the leading dot.
// An empty name selects PNG.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath selects the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// IconName returns the deterministic file name of the icon with the given size.
func IconName(size int, f Format) string {
	if f == "" {
		f = PNG
	}
	return fmt.Sprintf("icon_%dx%d.%s", size, size, f)
}

// Encode writes img to w in the requested format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case "", PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteFile encodes img into the file at path. The file is closed on every
// path and removed again if encoding fails, so no truncated icon is left behind.
func WriteFile(path string, img image.Image, f Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close the destination file: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := Encode(out, img, f); err != nil {
		return fmt.Errorf("unable to encode %s: %w", filepath.Base(path), err)
	}
	return nil
}
