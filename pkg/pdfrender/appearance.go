package pdfrender

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// appearance is a pending Form XObject: a content stream plus the resources
// it needs. register writes it, and any image resources, into the updater.
type appearance struct {
	w, h    float64
	stream  []byte
	useFont bool
	image   *encodedImage
}

// renderFn builds the appearance for one field type.
type renderFn func(p Placement) (*appearance, error)

// renderPolicies maps each field type to its drawing strategy. Signature-like
// fields carry an image payload, textual fields a string, the checkbox a mark.
var renderPolicies = map[FieldType]renderFn{
	FieldSignature: imageOrTextAppearance,
	FieldInitials:  imageOrTextAppearance,
	FieldWitness:   imageOrTextAppearance,
	FieldStamp:     imageOrTextAppearance,
	FieldName:      plainTextAppearance,
	FieldDate:      plainTextAppearance,
	FieldText:      plainTextAppearance,
	FieldInput:     plainTextAppearance,
	FieldCheckbox:  checkboxAppearance,
}

func buildAppearance(p Placement) (*appearance, error) {
	render, ok := renderPolicies[p.Type]
	if !ok {
		render = plainTextAppearance
	}
	return render(p)
}

// imageOrTextAppearance draws the decoded image scaled into the field box. A
// payload that cannot be decoded degrades to a text rendering of the value so
// a single corrupt upload cannot block finalization.
func imageOrTextAppearance(p Placement) (*appearance, error) {
	img, ok := tryDecodeImage(p.Value)
	if !ok {
		return plainTextAppearance(p)
	}

	scale := p.W / float64(img.w)
	if s := p.H / float64(img.h); s < scale {
		scale = s
	}
	sw := float64(img.w) * scale
	sh := float64(img.h) * scale
	dx := (p.W - sw) / 2
	dy := (p.H - sh) / 2

	var b bytes.Buffer
	b.WriteString("q\n")
	fmt.Fprintf(&b, "%.2f 0 0 %.2f %.2f %.2f cm\n", sw, sh, dx, dy)
	b.WriteString("/Img1 Do\nQ")

	return &appearance{w: p.W, h: p.H, stream: b.Bytes(), image: img}, nil
}

func plainTextAppearance(p Placement) (*appearance, error) {
	text := p.Value
	if runes := []rune(text); len(runes) > 100 {
		text = string(runes[:100])
	}

	size := p.H * 0.7
	if size > 14 {
		size = 14
	}
	// Helvetica averages roughly half the point size per glyph.
	for size > 4 && 0.5*size*float64(len(text)) > p.W-4 {
		size--
	}
	ty := (p.H - size) / 2
	if ty < 1 {
		ty = 1
	}

	var b bytes.Buffer
	b.WriteString("BT\n")
	fmt.Fprintf(&b, "/F1 %.2f Tf\n", size)
	fmt.Fprintf(&b, "2 %.2f Td\n", ty)
	fmt.Fprintf(&b, "<%X> Tj\n", encodeWinAnsi(text))
	b.WriteString("ET")

	return &appearance{w: p.W, h: p.H, stream: b.Bytes(), useFont: true}, nil
}

// checkboxAppearance strokes a check mark when the box is checked and leaves
// the appearance empty otherwise.
func checkboxAppearance(p Placement) (*appearance, error) {
	if p.Value != "checked" {
		return &appearance{w: p.W, h: p.H, stream: nil}, nil
	}

	lw := 0.08 * p.W
	if h := 0.08 * p.H; h < lw {
		lw = h
	}
	if lw < 1.2 {
		lw = 1.2
	}

	var b bytes.Buffer
	b.WriteString("q\n")
	fmt.Fprintf(&b, "%.2f w\n1 J 1 j\n0 0 0 RG\n", lw)
	fmt.Fprintf(&b, "%.2f %.2f m\n", 0.22*p.W, 0.52*p.H)
	fmt.Fprintf(&b, "%.2f %.2f l\n", 0.42*p.W, 0.30*p.H)
	fmt.Fprintf(&b, "%.2f %.2f l\n", 0.78*p.W, 0.72*p.H)
	b.WriteString("S\nQ")

	return &appearance{w: p.W, h: p.H, stream: b.Bytes()}, nil
}

// register writes the appearance and its resources as indirect objects and
// returns the Form XObject number.
func (a *appearance) register(u *updater) (uint32, error) {
	var resources bytes.Buffer
	resources.WriteString("<< /ProcSet [/PDF /Text /ImageB /ImageC]")
	if a.useFont {
		resources.WriteString(" /Font << /F1 << /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >> >>")
	}
	if a.image != nil {
		imgID, err := a.image.register(u)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(&resources, " /XObject << /Img1 %d 0 R >>", imgID)
	}
	resources.WriteString(" >>")

	var body bytes.Buffer
	body.WriteString("<<\n  /Type /XObject\n  /Subtype /Form\n  /FormType 1\n")
	fmt.Fprintf(&body, "  /BBox [0 0 %.2f %.2f]\n", a.w, a.h)
	body.WriteString("  /Matrix [1 0 0 1 0 0]\n")
	fmt.Fprintf(&body, "  /Resources %s\n", resources.String())
	fmt.Fprintf(&body, "  /Length %d\n>>\nstream\n", len(a.stream))
	body.Write(a.stream)
	body.WriteString("\nendstream")

	return u.addObject(body.Bytes())
}

var winAnsiEncoder = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

func encodeWinAnsi(s string) []byte {
	out, err := winAnsiEncoder.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}
