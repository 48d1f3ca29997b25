package pdfrender

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// maxImageDim caps signature rasters; anything larger is downscaled before
// embedding so a high-DPI capture does not balloon the artifact.
const maxImageDim = 1000

// encodedImage holds image data ready to be written as a PDF Image XObject.
// JPEG payloads pass through as DCT streams, everything else becomes flate
// compressed RGB with an optional grayscale soft mask for transparency.
type encodedImage struct {
	w, h  int
	dct   []byte
	rgb   []byte
	alpha []byte
}

// tryDecodeImage decodes a field value carrying a base64 image, with or
// without a data URL prefix. It returns false for anything that is not a
// usable raster so the caller can fall back to text.
func tryDecodeImage(value string) (*encodedImage, bool) {
	payload := value
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, false
		}
		payload = payload[idx+1:]
	}
	payload = strings.TrimSpace(payload)

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, false
		}
	}

	// JPEG needs no recompression, the DCT stream embeds as-is.
	if bytes.HasPrefix(raw, []byte{0xff, 0xd8, 0xff}) {
		cfg, err := jpeg.DecodeConfig(bytes.NewReader(raw))
		if err != nil || cfg.Width < 1 || cfg.Height < 1 {
			return nil, false
		}
		return &encodedImage{w: cfg.Width, h: cfg.Height, dct: raw}, true
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, false
	}
	return flattenImage(src)
}

func flattenImage(src image.Image) (*encodedImage, bool) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, false
	}

	if w > maxImageDim || h > maxImageDim {
		scale := float64(maxImageDim) / float64(w)
		if s := float64(maxImageDim) / float64(h); s < scale {
			scale = s
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
		bounds = dst.Bounds()
		w, h = bounds.Dx(), bounds.Dy()
	}

	rgb := make([]byte, 0, w*h*3)
	alpha := make([]byte, 0, w*h)
	opaque := true
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			rgb = append(rgb, byte(r>>8), byte(g>>8), byte(b>>8))
			alpha = append(alpha, byte(a>>8))
			if a>>8 != 0xff {
				opaque = false
			}
		}
	}

	img := &encodedImage{w: w, h: h, rgb: deflate(rgb)}
	if !opaque {
		img.alpha = deflate(alpha)
	}
	return img, true
}

func deflate(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(data)
	zw.Close()
	return buf.Bytes()
}

// register writes the image, and its soft mask when present, as indirect
// objects and returns the image object number.
func (e *encodedImage) register(u *updater) (uint32, error) {
	if e.dct != nil {
		var body bytes.Buffer
		fmt.Fprintf(&body,
			"<<\n  /Type /XObject\n  /Subtype /Image\n  /Width %d\n  /Height %d\n  /ColorSpace /DeviceRGB\n  /BitsPerComponent 8\n  /Filter /DCTDecode\n  /Length %d\n>>\nstream\n",
			e.w, e.h, len(e.dct))
		body.Write(e.dct)
		body.WriteString("\nendstream")
		return u.addObject(body.Bytes())
	}

	var smaskRef string
	if e.alpha != nil {
		var mask bytes.Buffer
		fmt.Fprintf(&mask,
			"<<\n  /Type /XObject\n  /Subtype /Image\n  /Width %d\n  /Height %d\n  /ColorSpace /DeviceGray\n  /BitsPerComponent 8\n  /Filter /FlateDecode\n  /Length %d\n>>\nstream\n",
			e.w, e.h, len(e.alpha))
		mask.Write(e.alpha)
		mask.WriteString("\nendstream")
		maskID, err := u.addObject(mask.Bytes())
		if err != nil {
			return 0, err
		}
		smaskRef = fmt.Sprintf("\n  /SMask %d 0 R", maskID)
	}

	var body bytes.Buffer
	fmt.Fprintf(&body,
		"<<\n  /Type /XObject\n  /Subtype /Image\n  /Width %d\n  /Height %d\n  /ColorSpace /DeviceRGB\n  /BitsPerComponent 8\n  /Filter /FlateDecode%s\n  /Length %d\n>>\nstream\n",
		e.w, e.h, smaskRef, len(e.rgb))
	body.Write(e.rgb)
	body.WriteString("\nendstream")
	return u.addObject(body.Bytes())
}
