package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// ReadAllLimit reads at most max bytes and fails when the reader holds more.
// Guards against multipart parts that lie about their size.
func ReadAllLimit(r io.Reader, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > max {
		return nil, errors.New("file too large")
	}
	return b, nil
}

// NormalizeImage decodes a jpg/png/webp image, applies the EXIF orientation,
// downscales to maxWidth when wider, and re-encodes as JPEG. CDNs and the
// Instagram graph API both want plain upright JPEGs.
func NormalizeImage(input []byte, maxWidth, quality int) ([]byte, error) {
	if len(input) == 0 {
		return nil, errors.New("empty image")
	}
	if quality <= 0 || quality > 100 {
		quality = 85
	}

	img, err := decodeImage(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	img = orient(img, exifOrientation(bytes.NewReader(input)))
	if maxWidth > 0 {
		img = shrinkToWidth(img, maxWidth)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func decodeImage(r *bytes.Reader) (image.Image, error) {
	for _, decode := range []func(io.Reader) (image.Image, error){
		jpeg.Decode,
		png.Decode,
		func(r io.Reader) (image.Image, error) { return webp.Decode(r) },
	} {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		if img, err := decode(r); err == nil {
			return img, nil
		}
	}
	return nil, errors.New("unsupported image format (jpeg/png/webp)")
}

func exifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	ori, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return ori
}

// orient undoes the camera rotation recorded in the EXIF orientation tag.
// Each case maps a destination pixel back to its source coordinate.
func orient(src image.Image, ori int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	var mapper func(x, y int) (int, int)
	swapped := false

	switch ori {
	case 2: // mirrored
		mapper = func(x, y int) (int, int) { return w - 1 - x, y }
	case 3: // upside down
		mapper = func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case 4:
		mapper = func(x, y int) (int, int) { return x, h - 1 - y }
	case 5:
		swapped = true
		mapper = func(x, y int) (int, int) { return y, x }
	case 6: // rotated 90 CW
		swapped = true
		mapper = func(x, y int) (int, int) { return y, h - 1 - x }
	case 7:
		swapped = true
		mapper = func(x, y int) (int, int) { return w - 1 - y, h - 1 - x }
	case 8: // rotated 90 CCW
		swapped = true
		mapper = func(x, y int) (int, int) { return w - 1 - y, x }
	default:
		return src
	}

	dw, dh := w, h
	if swapped {
		dw, dh = h, w
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			sx, sy := mapper(x, y)
			dst.Set(x, y, src.At(b.Min.X+sx, b.Min.Y+sy))
		}
	}
	return dst
}

func shrinkToWidth(src image.Image, maxW int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW || w <= 0 || h <= 0 {
		return src
	}

	newH := int(math.Round(float64(h) * float64(maxW) / float64(w)))
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
