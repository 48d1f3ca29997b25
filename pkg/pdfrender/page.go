package pdfrender

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/digitorus/pdf"
)

// findPage walks the page tree and returns the dictionary of the num-th page,
// counting from 1.
func findPage(rdr *pdf.Reader, num int) (pdf.Value, error) {
	pages := rdr.Trailer().Key("Root").Key("Pages")
	page, remaining := findPageRec(pages, num)
	if remaining > 0 {
		return pdf.Value{}, fmt.Errorf("page %d not found", num)
	}
	return page, nil
}

func findPageRec(node pdf.Value, remaining int) (pdf.Value, int) {
	if node.Key("Type").Name() == "Page" {
		remaining--
		if remaining == 0 {
			return node, 0
		}
		return pdf.Value{}, remaining
	}
	kids := node.Key("Kids")
	for i := 0; i < kids.Len(); i++ {
		page, left := findPageRec(kids.Index(i), remaining)
		if left == 0 {
			return page, 0
		}
		remaining = left
	}
	return pdf.Value{}, remaining
}

// mediaBoxHeight resolves the page height, following the Parent chain for
// inherited media boxes and falling back to US Letter.
func mediaBoxHeight(page pdf.Value) float64 {
	node := page
	for i := 0; i < 32 && node.Kind() == pdf.Dict; i++ {
		box := node.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			return box.Index(3).Float64() - box.Index(1).Float64()
		}
		node = node.Key("Parent")
	}
	return 792
}

// appendAnnots rewrites the page dictionary with the new widget annotations
// appended to any existing /Annots entries.
func appendAnnots(u *updater, page pdf.Value, annotIDs []uint32) error {
	if len(annotIDs) == 0 {
		return nil
	}
	pagePtr := page.GetPtr()
	if pagePtr.GetID() == 0 {
		return fmt.Errorf("page dictionary is not an indirect object")
	}

	var dict bytes.Buffer
	dict.WriteString("<<\n  /Type /Page\n")
	for _, key := range page.Keys() {
		if key == "Type" || key == "Annots" {
			continue
		}
		fmt.Fprintf(&dict, "  /%s %s\n", key, serializeValue(page.Key(key)))
	}

	dict.WriteString("  /Annots [")
	existing := page.Key("Annots")
	for i := 0; i < existing.Len(); i++ {
		dict.WriteString(serializeValue(existing.Index(i)))
		dict.WriteString(" ")
	}
	for _, id := range annotIDs {
		fmt.Fprintf(&dict, "%d 0 R ", id)
	}
	dict.WriteString("]\n>>")

	return u.updateObject(pagePtr.GetID(), uint32(pagePtr.GetGen()), dict.Bytes())
}

// serializeValue writes a value back in PDF syntax. Values that were stored
// as indirect references are written as references again so shared objects
// like /Contents and /Parent are never inlined.
func serializeValue(v pdf.Value) string {
	if ptr := v.GetPtr(); ptr.GetID() != 0 {
		return fmt.Sprintf("%d %d R", ptr.GetID(), ptr.GetGen())
	}

	switch v.Kind() {
	case pdf.Bool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case pdf.Integer:
		return fmt.Sprintf("%d", v.Int64())
	case pdf.Real:
		return fmt.Sprintf("%g", v.Float64())
	case pdf.String:
		return "(" + escapeString(v.RawString()) + ")"
	case pdf.Name:
		return "/" + v.Name()
	case pdf.Dict:
		var b strings.Builder
		b.WriteString("<< ")
		for _, key := range v.Keys() {
			fmt.Fprintf(&b, "/%s %s ", key, serializeValue(v.Key(key)))
		}
		b.WriteString(">>")
		return b.String()
	case pdf.Array:
		var b strings.Builder
		b.WriteString("[ ")
		for i := 0; i < v.Len(); i++ {
			b.WriteString(serializeValue(v.Index(i)))
			b.WriteString(" ")
		}
		b.WriteString("]")
		return b.String()
	default:
		return "null"
	}
}

func escapeString(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return r.Replace(s)
}
