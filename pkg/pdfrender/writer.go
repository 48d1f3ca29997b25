package pdfrender

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/digitorus/pdf"
	"github.com/mattetti/filebuffer"
)

// updater appends objects to a PDF as an incremental update. The original
// bytes stay untouched; new and replaced objects are written after them and
// indexed by a classic cross-reference table chained to the previous one.
type updater struct {
	rdr     *pdf.Reader
	buf     *filebuffer.Buffer
	nextID  uint32
	entries []xrefEntry
}

type xrefEntry struct {
	id     uint32
	gen    uint32
	offset int64
}

func newUpdater(original []byte) (*updater, error) {
	rdr, err := pdf.NewReader(bytes.NewReader(original), int64(len(original)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	if rdr.XrefInformation.Type != "table" {
		return nil, fmt.Errorf("unsupported cross-reference type %q, only classic tables are handled", rdr.XrefInformation.Type)
	}

	buf := filebuffer.New(nil)
	if _, err := buf.Write(original); err != nil {
		return nil, err
	}

	return &updater{
		rdr:    rdr,
		buf:    buf,
		nextID: uint32(rdr.XrefInformation.ItemCount),
	}, nil
}

// addObject writes body as a brand new indirect object and returns its number.
func (u *updater) addObject(body []byte) (uint32, error) {
	id := u.nextID
	u.nextID++
	if err := u.writeObject(id, 0, body); err != nil {
		return 0, err
	}
	return id, nil
}

// updateObject writes body as a replacement for an existing object.
func (u *updater) updateObject(id, gen uint32, body []byte) error {
	return u.writeObject(id, gen, body)
}

func (u *updater) writeObject(id, gen uint32, body []byte) error {
	if _, err := u.buf.Write([]byte("\n")); err != nil {
		return err
	}
	offset := int64(u.buf.Buff.Len())
	if _, err := fmt.Fprintf(u.buf, "%d %d obj\n", id, gen); err != nil {
		return err
	}
	if _, err := u.buf.Write(body); err != nil {
		return err
	}
	if _, err := u.buf.Write([]byte("\nendobj\n")); err != nil {
		return err
	}
	u.entries = append(u.entries, xrefEntry{id: id, gen: gen, offset: offset})
	return nil
}

// finish writes the cross-reference table and trailer, then returns the
// complete document bytes.
func (u *updater) finish() ([]byte, error) {
	sort.Slice(u.entries, func(i, j int) bool { return u.entries[i].id < u.entries[j].id })

	xrefStart := int64(u.buf.Buff.Len())
	if _, err := u.buf.Write([]byte("xref\n")); err != nil {
		return nil, err
	}

	// Consecutive object numbers collapse into one subsection.
	for i := 0; i < len(u.entries); {
		j := i + 1
		for j < len(u.entries) && u.entries[j].id == u.entries[j-1].id+1 {
			j++
		}
		if _, err := fmt.Fprintf(u.buf, "%d %d\n", u.entries[i].id, j-i); err != nil {
			return nil, err
		}
		for _, e := range u.entries[i:j] {
			if _, err := fmt.Fprintf(u.buf, "%010d %05d n \n", e.offset, e.gen); err != nil {
				return nil, err
			}
		}
		i = j
	}

	rootPtr := u.rdr.Trailer().Key("Root").GetPtr()
	if _, err := fmt.Fprintf(u.buf,
		"trailer\n<< /Size %d /Root %d %d R /Prev %d >>\nstartxref\n%d\n%%%%EOF\n",
		u.nextID, rootPtr.GetID(), rootPtr.GetGen(), u.rdr.XrefInformation.StartPos, xrefStart,
	); err != nil {
		return nil, err
	}

	return u.buf.Buff.Bytes(), nil
}
