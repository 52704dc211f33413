// 📁 internals/helpers/oss/oss_image.go
package oss

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

var maxUploadSize = int64(5 * 1024 * 1024)

func MaxUploadSize() int64 { return maxUploadSize }

type WebPOptions struct {
	MaxW    int     // resize bound, keep-aspect
	MaxH    int
	Quality float32
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

// decodeImage sniffs the MIME type and decodes jpeg/png/webp payloads.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	if strings.Contains(ct, "webp") {
		return webp.Decode(bytes.NewReader(all))
	}
	if strings.Contains(ct, "jpeg") || strings.Contains(ct, "png") {
		img, err := imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
		if err != nil {
			return nil, err
		}
		return img, nil
	}
	// fallback by extension
	ext := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(ext, ".webp"):
		return webp.Decode(bytes.NewReader(all))
	case strings.HasSuffix(ext, ".jpg"), strings.HasSuffix(ext, ".jpeg"), strings.HasSuffix(ext, ".png"):
		return imaging.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

// ConvertToWebP decodes, downscales (keep-aspect) and re-encodes to lossy
// webp. Every image field on every entity ends up as a URL to one of these.
func ConvertToWebP(all []byte, filename string, opt WebPOptions) ([]byte, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if (opt.MaxW > 0 && b.Dx() > opt.MaxW) || (opt.MaxH > 0 && b.Dy() > opt.MaxH) {
		img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.CatmullRom)
	}

	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
