package imaging

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
)

const (
	ContentType = "image/webp"
	Extension   = ".webp"

	DefaultMaxSide = 800
	DefaultQuality = 80
)

var ErrUnsupported = errors.New("unsupported image format")

type Normalizer struct {
	MaxSide int
	Quality float32
}

func NewNormalizer() *Normalizer {
	return &Normalizer{MaxSide: DefaultMaxSide, Quality: DefaultQuality}
}

// Normalize decodes a jpeg, png or webp photo, shrinks it so that its longest
// side fits MaxSide and re-encodes it as lossy webp.
func (n *Normalizer) Normalize(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupported
		}
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img := n.fit(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: n.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func (n *Normalizer) fit(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if n.MaxSide <= 0 || (w <= n.MaxSide && h <= n.MaxSide) {
		return src
	}

	var nw, nh int
	if w >= h {
		nw = n.MaxSide
		nh = max(1, h*n.MaxSide/w)
	} else {
		nh = n.MaxSide
		nw = max(1, w*n.MaxSide/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
