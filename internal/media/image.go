package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
)

const (
	MaxWidth    = 800
	MaxUpload   = 8 << 20
	MaxPixels   = 40_000_000
	webpQuality = 80
)

var (
	ErrUnsupportedImage = httperr.ErrBusiness("unsupported_image")
	ErrImageTooLarge    = httperr.ErrBusiness("image_too_large")
)

// Transcode decodes a jpeg, png or webp upload, scales it down to maxWidth
// keeping the aspect ratio and re-encodes it as lossy WebP.
func Transcode(r io.Reader, maxWidth int) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUpload+1))
	if err != nil {
		return nil, fmt.Errorf("media: read upload: %w", err)
	}
	if len(raw) > MaxUpload {
		return nil, ErrImageTooLarge
	}

	// declared dimensions are checked before any pixel buffer is allocated
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, unsupported(err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrUnsupportedImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, ErrImageTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, unsupported(err)
	}

	img := fit(src, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("media: encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func unsupported(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return ErrUnsupportedImage
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
}

func fit(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
