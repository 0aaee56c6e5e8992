// Package imageopt resizes and re-encodes product images and reports how
// much weight the conversion saved.
package imageopt

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/jpegli"
	"github.com/gen2brain/webp"
	"github.com/google/uuid"

	"github.com/wichananm65/storefront-ai/internal/apperror"
)

type Format string

const (
	FormatWEBP Format = "WEBP"
	FormatJPEG Format = "JPEG"
	FormatPNG  Format = "PNG"
)

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatJPEG, FormatPNG, FormatWEBP}
}

// ParseFormat accepts a format name case-insensitively. Empty means WEBP.
func ParseFormat(s string) (Format, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return FormatWEBP, nil
	}
	for _, f := range Formats() {
		if Format(s) == f {
			return f, nil
		}
	}
	return "", apperror.Validation("Unsupported format: %s", s)
}

// Extension is the file extension used when storing the format.
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatPNG:
		return "png"
	default:
		return "webp"
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	default:
		return "image/webp"
	}
}

// Options controls one optimization. Zero fields take the optimizer defaults.
type Options struct {
	Quality   int
	MaxWidth  int
	MaxHeight int
	Format    Format
}

var DefaultOptions = Options{Quality: 85, MaxWidth: 800, MaxHeight: 800, Format: FormatWEBP}

// MaxPixels caps width*height of an accepted upload. Headers are checked
// before decoding so a small file cannot claim a huge canvas.
const MaxPixels = 89_478_485

const (
	jpegProgressiveLevel = 2
	webpMethod           = 6 // slowest, smallest output
)

type Result struct {
	Data              []byte  `json:"-"`
	Format            string  `json:"format"`
	OriginalSize      [2]int  `json:"original_size"`
	OptimizedSize     [2]int  `json:"optimized_size"`
	OriginalWeightKB  float64 `json:"original_weight_kb"`
	OptimizedWeightKB float64 `json:"optimized_weight_kb"`
	CompressionRatio  float64 `json:"compression_ratio"`
	Quality           int     `json:"quality"`
	URL               string  `json:"url,omitempty"`
}

// BytesSaved is negative when the output is larger than the input.
func (r Result) BytesSaved(originalBytes int) int {
	return originalBytes - len(r.Data)
}

// Store persists optimized images and returns where they can be fetched.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type Optimizer struct {
	defaults Options
	store    Store
}

// New returns an optimizer. store may be nil, in which case results are
// only returned to the caller.
func New(defaults Options, store Store) *Optimizer {
	if defaults.Quality == 0 {
		defaults.Quality = DefaultOptions.Quality
	}
	if defaults.MaxWidth == 0 {
		defaults.MaxWidth = DefaultOptions.MaxWidth
	}
	if defaults.MaxHeight == 0 {
		defaults.MaxHeight = DefaultOptions.MaxHeight
	}
	if defaults.Format == "" {
		defaults.Format = DefaultOptions.Format
	}
	return &Optimizer{defaults: defaults, store: store}
}

func (o *Optimizer) withDefaults(opts Options) Options {
	if opts.Quality == 0 {
		opts.Quality = o.defaults.Quality
	}
	if opts.MaxWidth == 0 {
		opts.MaxWidth = o.defaults.MaxWidth
	}
	if opts.MaxHeight == 0 {
		opts.MaxHeight = o.defaults.MaxHeight
	}
	if opts.Format == "" {
		opts.Format = o.defaults.Format
	}
	return opts
}

// Optimize decodes data honouring EXIF orientation, shrinks it to fit the
// bounds when it exceeds them and re-encodes it in the requested format.
func (o *Optimizer) Optimize(ctx context.Context, data []byte, opts Options) (Result, error) {
	opts = o.withDefaults(opts)
	if opts.Quality < 1 || opts.Quality > 100 {
		return Result{}, apperror.Validation("quality must be between 1 and 100, got %d", opts.Quality)
	}
	if opts.MaxWidth < 0 || opts.MaxHeight < 0 {
		return Result{}, apperror.Validation("max dimensions must be positive, got %dx%d", opts.MaxWidth, opts.MaxHeight)
	}
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return Result{}, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Result{}, apperror.Wrap(apperror.KindValidation, err, fmt.Sprintf("invalid image: %v", err))
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return Result{}, apperror.Validation("image too large: %dx%d exceeds %d pixels", cfg.Width, cfg.Height, MaxPixels)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Result{}, apperror.Wrap(apperror.KindValidation, err, fmt.Sprintf("invalid image: %v", err))
	}
	orig := img.Bounds().Size()

	if format == FormatJPEG {
		img = flatten(img)
	}
	if orig.X > opts.MaxWidth || orig.Y > opts.MaxHeight {
		img = imaging.Fit(img, opts.MaxWidth, opts.MaxHeight, imaging.Lanczos)
	}

	out, err := encode(img, format, opts.Quality)
	if err != nil {
		return Result{}, apperror.Internal(fmt.Errorf("encode %s: %w", format, err))
	}

	origKB := float64(len(data)) / 1024
	optKB := float64(len(out)) / 1024
	size := img.Bounds().Size()
	res := Result{
		Data:              out,
		Format:            strings.ToLower(string(format)),
		OriginalSize:      [2]int{orig.X, orig.Y},
		OptimizedSize:     [2]int{size.X, size.Y},
		OriginalWeightKB:  round2(origKB),
		OptimizedWeightKB: round2(optKB),
		CompressionRatio:  round2((1 - optKB/origKB) * 100),
		Quality:           opts.Quality,
	}

	if o.store != nil {
		key := fmt.Sprintf("optimized/%s.%s", uuid.NewString(), format.Extension())
		url, err := o.store.Put(ctx, key, out, format.ContentType())
		if err != nil {
			return Result{}, apperror.Internal(fmt.Errorf("store optimized image: %w", err))
		}
		res.URL = url
	}
	return res, nil
}

// flatten composites img onto white so transparent areas do not turn black
// in formats without alpha.
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

func encode(img image.Image, format Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatJPEG:
		err = jpegli.Encode(&buf, img, &jpegli.EncodingOptions{
			Quality:          quality,
			ProgressiveLevel: jpegProgressiveLevel,
		})
	case FormatPNG:
		// PNG is lossless; quality does not apply
		err = imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	default:
		err = webp.Encode(&buf, img, webp.Options{Quality: quality, Method: webpMethod})
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
