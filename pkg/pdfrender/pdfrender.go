// Package pdfrender bakes filled field values into a PDF by appending an
// incremental update: one appearance XObject plus one widget annotation per
// field, and a rewritten page object per touched page. The original bytes are
// preserved verbatim at the head of the output.
package pdfrender

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/digitorus/pdf"
)

type FieldType string

const (
	FieldSignature FieldType = "signature"
	FieldInitials  FieldType = "initials"
	FieldWitness   FieldType = "witness"
	FieldStamp     FieldType = "stamp"
	FieldName      FieldType = "name"
	FieldDate      FieldType = "date"
	FieldText      FieldType = "text"
	FieldInput     FieldType = "input"
	FieldCheckbox  FieldType = "checkbox"
)

// Placement is one filled field in document space. Document space uses a
// top-left origin with y growing downward; rendering flips to the PDF page
// convention (bottom-left origin, y growing upward).
type Placement struct {
	Page  int
	X     float64
	Y     float64
	W     float64
	H     float64
	Type  FieldType
	Value string
}

// PageCount reports the number of pages in the document.
func PageCount(data []byte) (int, error) {
	rdr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return rdr.NumPage(), nil
}

// Render returns a new document with every placement embedded, plus the count
// of placements rendered. A malformed image payload on a signature-like field
// degrades to a text rendering of the raw value; it never fails the render.
func Render(original []byte, placements []Placement) ([]byte, int, error) {
	u, err := newUpdater(original)
	if err != nil {
		return nil, 0, err
	}

	numPages := u.rdr.NumPage()

	byPage := make(map[int][]Placement)
	pages := make([]int, 0, 4)
	for _, p := range placements {
		if p.Value == "" {
			continue
		}
		if p.Page < 1 || p.Page > numPages {
			return nil, 0, fmt.Errorf("placement page %d out of range 1..%d", p.Page, numPages)
		}
		if _, ok := byPage[p.Page]; !ok {
			pages = append(pages, p.Page)
		}
		byPage[p.Page] = append(byPage[p.Page], p)
	}
	sort.Ints(pages)
	if len(pages) == 0 {
		return original, 0, nil
	}

	embedded := 0
	for _, pageNum := range pages {
		pageObj, err := findPage(u.rdr, pageNum)
		if err != nil {
			return nil, 0, err
		}
		pageHeight := mediaBoxHeight(pageObj)
		pagePtr := pageObj.GetPtr()

		var annotIDs []uint32
		for _, p := range byPage[pageNum] {
			app, err := buildAppearance(p)
			if err != nil {
				return nil, 0, err
			}
			appID, err := app.register(u)
			if err != nil {
				return nil, 0, err
			}

			// Flip the vertical axis: capture space grows downward from the
			// top, page space grows upward from the bottom.
			renderY := pageHeight - p.Y - p.H

			var annot bytes.Buffer
			annot.WriteString("<<\n")
			annot.WriteString("  /Type /Annot\n")
			annot.WriteString("  /Subtype /Widget\n")
			fmt.Fprintf(&annot, "  /Rect [%.2f %.2f %.2f %.2f]\n", p.X, renderY, p.X+p.W, renderY+p.H)
			annot.WriteString("  /F 4\n")
			fmt.Fprintf(&annot, "  /AP << /N %d 0 R >>\n", appID)
			fmt.Fprintf(&annot, "  /P %d %d R\n", pagePtr.GetID(), pagePtr.GetGen())
			annot.WriteString(">>")

			annotID, err := u.addObject(annot.Bytes())
			if err != nil {
				return nil, 0, err
			}
			annotIDs = append(annotIDs, annotID)
			embedded++
		}

		if err := appendAnnots(u, pageObj, annotIDs); err != nil {
			return nil, 0, err
		}
	}

	out, err := u.finish()
	if err != nil {
		return nil, 0, err
	}
	return out, embedded, nil
}
