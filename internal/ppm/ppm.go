// Package ppm reads and writes binary PPM ("P6") images.
//
// Only images with a maximum channel value of 255 are supported,
// so every channel of every pixel is exactly one byte.
//
// Importing this package also registers the format with the image package,
// making it available to image.Decode.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

const (
	_magic  = "P6"
	_maxVal = 255

	// Largest number of pixels Decode will allocate room for.
	_maxPixels = 1 << 28
)

func init() {
	image.RegisterFormat("ppm", _magic, decodeImage, DecodeConfig)
}

// FormatError reports that the input is not a supported PPM image.
type FormatError string

func (e FormatError) Error() string { return "ppm: invalid format: " + string(e) }

// Image is an RGB image with one byte per channel.
//
// Image is a huffman.Source over the red channel.
type Image struct {
	Width, Height int

	// Pix holds the pixels in row-major order,
	// three bytes (red, green, blue) per pixel.
	Pix []byte
}

var _ image.Image = (*Image)(nil)

// New allocates a black image of the given size.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// Dimensions reports the width and height of the image.
func (img *Image) Dimensions() (width, height int) {
	return img.Width, img.Height
}

// Samples returns the red channel of every pixel in row-major order.
func (img *Image) Samples() []byte {
	samples := make([]byte, img.Width*img.Height)
	for i := range samples {
		samples[i] = img.Pix[i*3]
	}
	return samples
}

// ColorModel returns color.RGBAModel.
func (img *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds returns the image's bounds, anchored at the origin.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At returns the color of the pixel at (x, y).
// Pixels outside the image are transparent.
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return color.RGBA{}
	}
	i := img.offset(x, y)
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 0xff}
}

// Set changes the color of the pixel at (x, y).
// Points outside the image are ignored.
func (img *Image) Set(x, y int, c color.RGBA) {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return
	}
	i := img.offset(x, y)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = c.R, c.G, c.B
}

func (img *Image) offset(x, y int) int {
	return (y*img.Width + x) * 3
}

// Decode reads a P6 PPM image from r.
//
// Returns a FormatError if the header is malformed,
// uses a maximum value other than 255,
// or if there are fewer pixels than the header promises.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	cfg, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	img := New(cfg.Width, cfg.Height)
	if _, err := io.ReadFull(br, img.Pix); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, FormatError(fmt.Sprintf(
				"expected %d bytes of pixel data for %dx%d image",
				len(img.Pix), cfg.Width, cfg.Height))
		}
		return nil, err
	}
	return img, nil
}

// DecodeConfig reads the dimensions of a P6 PPM image from r
// without reading its pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	cfg, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      cfg.Width,
		Height:     cfg.Height,
	}, nil
}

func decodeImage(r io.Reader) (image.Image, error) {
	return Decode(r)
}

// Encode writes img to w as a P6 PPM image.
func Encode(w io.Writer, img *Image) error {
	if want := img.Width * img.Height * 3; len(img.Pix) != want {
		return fmt.Errorf("ppm: image has %d bytes of pixel data, want %d", len(img.Pix), want)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", _magic, img.Width, img.Height, _maxVal)
	bw.Write(img.Pix)
	return bw.Flush()
}

type header struct {
	Width, Height int
}

func readHeader(r *bufio.Reader) (header, error) {
	magic, err := readToken(r)
	if err != nil {
		return header{}, err
	}
	if magic != _magic {
		return header{}, FormatError(fmt.Sprintf("unsupported magic number %q: must be %q", magic, _magic))
	}

	var fields [3]int
	for i, name := range []string{"width", "height", "maximum value"} {
		tok, err := readToken(r)
		if err != nil {
			return header{}, err
		}

		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return header{}, FormatError(fmt.Sprintf("bad %v %q", name, tok))
		}
		fields[i] = n
	}

	if w, h := fields[0], fields[1]; w > 0 && h > _maxPixels/w {
		return header{}, FormatError(fmt.Sprintf("image too large: %dx%d", w, h))
	}

	if maxVal := fields[2]; maxVal != _maxVal {
		return header{}, FormatError(fmt.Sprintf("unsupported maximum value %d: must be %d", maxVal, _maxVal))
	}

	// Exactly one whitespace byte separates the header from the pixels.
	// readToken leaves it unread.
	c, err := r.ReadByte()
	if err != nil {
		return header{}, unexpectedEOF(err)
	}
	if !isSpace(c) {
		return header{}, FormatError(fmt.Sprintf("expected whitespace after header, got %q", c))
	}

	return header{Width: fields[0], Height: fields[1]}, nil
}

// readToken reads the next whitespace-delimited header token,
// skipping comments that begin with '#' and run to the end of the line.
// The byte that ends the token is left unread.
func readToken(r *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if len(tok) > 0 && errors.Is(err, io.EOF) {
				return string(tok), nil
			}
			return "", unexpectedEOF(err)
		}

		switch {
		case c == '#' && len(tok) == 0:
			if _, err := r.ReadBytes('\n'); err != nil {
				return "", unexpectedEOF(err)
			}
		case isSpace(c):
			if len(tok) > 0 {
				return string(tok), r.UnreadByte()
			}
		default:
			tok = append(tok, c)
		}
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return FormatError("unexpected end of header")
	}
	return err
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
