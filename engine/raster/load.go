// Package raster holds the image primitives the asset generators are built on:
// decoding, mode conversion, resampling, compositing and encoding.
package raster

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrMemberNotFound is returned when no archive member matches a suffix.
var ErrMemberNotFound = errors.New("archive member not found")

// Load decodes an image file in any registered format (png, jpeg, webp).
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadRGBA loads an image as straight-alpha RGBA.
func LoadRGBA(path string) (*image.NRGBA, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// LoadRGB loads an image and discards its alpha channel.
func LoadRGB(path string) (*image.NRGBA, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return ToRGB(img), nil
}

// Decode decodes an in-memory image.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// ZipMember returns the bytes and name of the first member of the archive whose
// name ends with suffix, compared case-insensitively.
func ZipMember(zipPath, suffix string) ([]byte, string, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, "", err
	}
	defer zr.Close()

	want := strings.ToLower(suffix)
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), want) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("open %s in %s: %w", f.Name, zipPath, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("read %s in %s: %w", f.Name, zipPath, err)
		}
		return data, f.Name, nil
	}
	return nil, "", fmt.Errorf("%w: %s not found in %s", ErrMemberNotFound, suffix, zipPath)
}

// LoadZipImage decodes the archive member matching suffix.
func LoadZipImage(zipPath, suffix string) (image.Image, error) {
	data, name, err := ZipMember(zipPath, suffix)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s in %s: %w", name, zipPath, err)
	}
	return img, nil
}

// ToRGBA converts img to a zero-origin straight-alpha copy.
func ToRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()*4], src.Pix[si:si+b.Dx()*4])
		}
		return dst
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// ToRGB converts img to RGBA and forces every alpha sample to opaque,
// keeping the straight color values.
func ToRGB(img image.Image) *image.NRGBA {
	dst := ToRGBA(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// Luminance is the ITU-R 601 luma of a straight color, in 16.16 fixed point.
func Luminance(r, g, b uint8) uint8 {
	y := (19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16
	return uint8(y)
}

// ToGray converts img to a single-channel luminance image. Alpha is ignored.
func ToGray(img image.Image) *image.Gray {
	src := ToRGBA(img)
	dst := image.NewGray(src.Bounds())
	for i, j := 0, 0; i < len(src.Pix); i, j = i+4, j+1 {
		dst.Pix[j] = Luminance(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
	}
	return dst
}

// Solid returns a w×h image filled with c.
func Solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}
