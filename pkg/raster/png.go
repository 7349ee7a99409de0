package raster

import (
	"bufio"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/go-drift/neon/pkg/errors"
	"github.com/go-drift/neon/pkg/graphics"
)

// Render replays dl onto a new canvas sized to the display list.
func Render(dl *graphics.DisplayList) *image.RGBA {
	size := dl.Size()
	c := NewCanvas(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	dl.Paint(c)
	return c.Image()
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.New("raster.EncodePNG", errors.KindRender, err)
	}
	return nil
}

// WritePNG encodes img to the file at path, replacing it if it exists.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New("raster.WritePNG", errors.KindIO, err)
	}
	bw := bufio.NewWriter(f)
	if err := EncodePNG(bw, img); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return errors.New("raster.WritePNG", errors.KindIO, err)
	}
	if err := f.Close(); err != nil {
		return errors.New("raster.WritePNG", errors.KindIO, err)
	}
	return nil
}
