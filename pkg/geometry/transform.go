// Package geometry maps field geometry between document space (the document's
// native scale, what gets persisted) and display space (document space
// multiplied by the UI zoom factor). Stored coordinates must always be
// scale-invariant, so every capture path normalizes through ToDocumentSpace
// before persisting.
package geometry

import "errors"

var ErrInvalidScale = errors.New("scale must be greater than zero")

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// ToDisplay projects a document-space rect into pixel space at the given zoom.
// A non-positive scale is a programmer error, never silently clamped.
func ToDisplay(r Rect, scale float64) (Rect, error) {
	if scale <= 0 {
		return Rect{}, ErrInvalidScale
	}
	return Rect{
		X: r.X * scale,
		Y: r.Y * scale,
		W: r.W * scale,
		H: r.H * scale,
	}, nil
}

// ToDocumentSpace is the inverse of ToDisplay.
func ToDocumentSpace(r Rect, scale float64) (Rect, error) {
	if scale <= 0 {
		return Rect{}, ErrInvalidScale
	}
	return Rect{
		X: r.X / scale,
		Y: r.Y / scale,
		W: r.W / scale,
		H: r.H / scale,
	}, nil
}

func PointToDisplay(p Point, scale float64) (Point, error) {
	if scale <= 0 {
		return Point{}, ErrInvalidScale
	}
	return Point{X: p.X * scale, Y: p.Y * scale}, nil
}

func PointToDocumentSpace(p Point, scale float64) (Point, error) {
	if scale <= 0 {
		return Point{}, ErrInvalidScale
	}
	return Point{X: p.X / scale, Y: p.Y / scale}, nil
}
