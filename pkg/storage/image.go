package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

var (
	ErrUnsupportedImage = errors.New("only jpeg, png or webp images are allowed")
	ErrImageTooLarge    = errors.New("image exceeds the size limit")
)

type Fit int

const (
	// FitCover fills the box and crops the overflow.
	FitCover Fit = iota
	// FitContain keeps the whole image and pads with Background.
	FitContain
)

type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTop
)

type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
)

type ImageOptions struct {
	Width      int
	Height     int
	Fit        Fit
	Anchor     Anchor
	Format     Format
	Quality    int   // jpeg only
	MaxBytes   int64 // 0 = unlimited
	Background color.Color
}

// Presets per upload kind.
var (
	IconOptions = ImageOptions{
		Width: 200, Height: 200, Fit: FitContain, Format: FormatPNG,
		MaxBytes: 2 << 20, Background: color.Transparent,
	}
	AvatarOptions = ImageOptions{
		Width: 200, Height: 200, Fit: FitCover, Format: FormatJPEG,
		Quality: 90, MaxBytes: 5 << 20,
	}
	TeamPhotoOptions = ImageOptions{
		Width: 400, Height: 400, Fit: FitCover, Anchor: AnchorTop, Format: FormatJPEG,
		Quality: 80, MaxBytes: 5 << 20,
	}
)

// Extension of the encoded output, with dot.
func (o ImageOptions) Extension() string {
	if o.Format == FormatPNG {
		return ".png"
	}
	return ".jpg"
}

func (o ImageOptions) ContentType() string {
	if o.Format == FormatPNG {
		return "image/png"
	}
	return "image/jpeg"
}

// ProcessImage sniffs, decodes, fits into the box, and re-encodes data.
func ProcessImage(data []byte, opts ImageOptions) ([]byte, error) {
	if opts.MaxBytes > 0 && int64(len(data)) > opts.MaxBytes {
		return nil, ErrImageTooLarge
	}

	src, err := decode(data)
	if err != nil {
		return nil, err
	}

	dst := fit(src, opts)

	var buf bytes.Buffer
	switch opts.Format {
	case FormatPNG:
		err = png.Encode(&buf, dst)
	default:
		quality := opts.Quality
		if quality <= 0 {
			quality = 85
		}
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	return buf.Bytes(), nil
}

func decode(data []byte) (image.Image, error) {
	mt := mimetype.Detect(data)

	var (
		img image.Image
		err error
	)
	switch {
	case mt.Is("image/jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(data))
	case mt.Is("image/png"):
		img, err = png.Decode(bytes.NewReader(data))
	case mt.Is("image/webp"):
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedImage, mt.String())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return img, nil
}

func fit(src image.Image, opts ImageOptions) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))

	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	if opts.Format == FormatJPEG {
		// jpeg has no alpha channel
		bg = color.White
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	sb := src.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())
	if sw == 0 || sh == 0 {
		return dst
	}
	bw, bh := float64(opts.Width), float64(opts.Height)

	if opts.Fit == FitContain {
		scale := min(bw/sw, bh/sh)
		w, h := int(sw*scale+0.5), int(sh*scale+0.5)
		x0, y0 := (opts.Width-w)/2, (opts.Height-h)/2
		draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), src, sb, draw.Over, nil)
		return dst
	}

	// cover: crop the source to the box aspect ratio
	scale := max(bw/sw, bh/sh)
	cw, ch := int(bw/scale+0.5), int(bh/scale+0.5)
	x0 := sb.Min.X + (sb.Dx()-cw)/2
	y0 := sb.Min.Y + (sb.Dy()-ch)/2
	if opts.Anchor == AnchorTop {
		y0 = sb.Min.Y
	}
	crop := image.Rect(x0, y0, x0+cw, y0+ch).Intersect(sb)

	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Over, nil)
	return dst
}
