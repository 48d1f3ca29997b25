package pdfrender

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// minimalPDF builds a one-page classic-xref document from scratch so the
// tests do not depend on fixture files.
func minimalPDF(t *testing.T) []byte {
	t.Helper()
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, 5)
	addObj := func(id int, body string) {
		offsets[id] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", id, body)
	}
	addObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	addObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 /MediaBox [0 0 612 792] >>")
	addObj(3, "<< /Type /Page /Parent 2 0 R /Contents 4 0 R /Resources << >> >>")
	addObj(4, "<< /Length 3 >>\nstream\nq Q\nendstream")

	xref := b.Len()
	b.WriteString("xref\n0 5\n0000000000 65535 f \n")
	for id := 1; id <= 4; id++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 5 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return b.Bytes()
}

func pngDataURL(t *testing.T, withAlpha bool) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			a := uint8(255)
			if withAlpha && x == 0 {
				a = 0
			}
			img.SetRGBA(x, y, color.RGBA{R: 10, G: 20, B: 30, A: a})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestPageCount(t *testing.T) {
	n, err := PageCount(minimalPDF(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 page, got %d", n)
	}
}

func TestRenderFlipsVerticalAxis(t *testing.T) {
	orig := minimalPDF(t)
	out, n, err := Render(orig, []Placement{
		{Page: 1, X: 72, Y: 100, W: 180, H: 50, Type: FieldName, Value: "Ada Lovelace"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 embedded field, got %d", n)
	}
	// Page height 792, top-origin y 100, height 50: bottom edge lands at 642.
	if !bytes.Contains(out, []byte("/Rect [72.00 642.00 252.00 692.00]")) {
		t.Fatal("expected flipped rect in output")
	}
	if !bytes.Equal(out[:len(orig)], orig) {
		t.Fatal("incremental update must preserve the original bytes")
	}
}

func TestRenderTextAppearance(t *testing.T) {
	out, _, err := Render(minimalPDF(t), []Placement{
		{Page: 1, X: 10, Y: 10, W: 200, H: 20, Type: FieldDate, Value: "2026-08-30"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(out, []byte("/BaseFont /Helvetica")) {
		t.Fatal("expected Helvetica font resource")
	}
	if !bytes.Contains(out, []byte(fmt.Sprintf("<%X> Tj", "2026-08-30"))) {
		t.Fatal("expected hex-encoded text in content stream")
	}
}

func TestRenderCorruptImageFallsBackToText(t *testing.T) {
	out, n, err := Render(minimalPDF(t), []Placement{
		{Page: 1, X: 10, Y: 10, W: 180, H: 50, Type: FieldSignature, Value: "not a raster"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 embedded field, got %d", n)
	}
	if bytes.Contains(out, []byte("/Img1")) {
		t.Fatal("corrupt payload must not produce an image resource")
	}
	if !bytes.Contains(out, []byte(fmt.Sprintf("<%X> Tj", "not a raster"))) {
		t.Fatal("expected text fallback rendering")
	}
}

func TestRenderImageAppearance(t *testing.T) {
	out, _, err := Render(minimalPDF(t), []Placement{
		{Page: 1, X: 10, Y: 10, W: 180, H: 50, Type: FieldSignature, Value: pngDataURL(t, true)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(out, []byte("/Img1 Do")) {
		t.Fatal("expected image draw operator")
	}
	if !bytes.Contains(out, []byte("/FlateDecode")) {
		t.Fatal("expected flate-compressed raster")
	}
	if !bytes.Contains(out, []byte("/SMask")) {
		t.Fatal("expected soft mask for transparent raster")
	}
}

func TestRenderCheckbox(t *testing.T) {
	checked, _, err := Render(minimalPDF(t), []Placement{
		{Page: 1, X: 10, Y: 10, W: 20, H: 20, Type: FieldCheckbox, Value: "checked"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(checked, []byte(" l\n")) {
		t.Fatal("expected stroked check mark")
	}

	unchecked, _, err := Render(minimalPDF(t), []Placement{
		{Page: 1, X: 10, Y: 10, W: 20, H: 20, Type: FieldCheckbox, Value: "unchecked"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Contains(unchecked, []byte(" l\n")) {
		t.Fatal("unchecked box must stay blank")
	}
}

func TestRenderSkipsEmptyValues(t *testing.T) {
	orig := minimalPDF(t)
	out, n, err := Render(orig, []Placement{
		{Page: 1, X: 10, Y: 10, W: 20, H: 20, Type: FieldText, Value: ""},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected nothing embedded, got %d", n)
	}
	if !bytes.Equal(out, orig) {
		t.Fatal("document must be unchanged when nothing renders")
	}
}

func TestRenderPageOutOfRange(t *testing.T) {
	_, _, err := Render(minimalPDF(t), []Placement{
		{Page: 2, X: 10, Y: 10, W: 20, H: 20, Type: FieldText, Value: "x"},
	})
	if err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestTryDecodeImageJPEGPassthrough(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	enc, ok := tryDecodeImage(base64.StdEncoding.EncodeToString(buf.Bytes()))
	if !ok {
		t.Fatal("expected jpeg payload to decode")
	}
	if enc.dct == nil {
		t.Fatal("jpeg must pass through as DCT stream")
	}
	if enc.w != 3 || enc.h != 3 {
		t.Fatalf("unexpected dimensions %dx%d", enc.w, enc.h)
	}
}

func TestTryDecodeImageRejectsGarbage(t *testing.T) {
	if _, ok := tryDecodeImage("data:image/png;base64,%%%%"); ok {
		t.Fatal("expected garbage base64 to be rejected")
	}
	if _, ok := tryDecodeImage("cGxhaW4gdGV4dA=="); ok {
		t.Fatal("expected non-image bytes to be rejected")
	}
}
