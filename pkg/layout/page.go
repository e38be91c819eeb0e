// Package layout computes voucher placement across pages and the internal
// geometry of a single voucher. Coordinates are PDF points with the origin at
// the top-left corner of the page; y grows downward.
package layout

import "fmt"

// A4 page size in points.
const (
	A4Width  = 595.28
	A4Height = 841.89
)

// MmToPt converts millimeters to points.
func MmToPt(mm float64) float64 {
	return mm * 72.0 / 25.4
}

// Box is an axis-aligned bounding box; X and Y locate its top-left corner.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Placement assigns the voucher at Index to a page and a bounding box on it.
type Placement struct {
	Index int
	Page  int
	Box   Box
}

// Paginate stacks count voucher boxes top-to-bottom, perPage to a page, in
// input order. A page break is inserted after every perPage-th voucher that
// is not the last one. Degenerate geometry is a configuration error and is
// reported before anything is drawn.
func Paginate(count, perPage int, pageWidth, pageHeight, margin, spacing float64) ([]Placement, error) {
	if perPage <= 0 {
		return nil, fmt.Errorf("vouchers per page must be positive, got %d", perPage)
	}

	width := pageWidth - 2*margin
	height := (pageHeight - 2*margin - spacing*float64(perPage-1)) / float64(perPage)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("margin %.1fpt and spacing %.1fpt leave no room for %d vouchers on a %.0fx%.0fpt page",
			margin, spacing, perPage, pageWidth, pageHeight)
	}

	placements := make([]Placement, 0, count)
	page := 0
	y := margin
	for i := 0; i < count; i++ {
		placements = append(placements, Placement{
			Index: i,
			Page:  page,
			Box:   Box{X: margin, Y: y, Width: width, Height: height},
		})
		if (i+1)%perPage == 0 && i+1 != count {
			page++
			y = margin
		} else {
			y += height + spacing
		}
	}
	return placements, nil
}

// SinglePage returns the box for the one-voucher-per-page mode: the voucher
// fills the whole usable page area. This is a distinct mode rather than
// Paginate with perPage=1; no spacing term participates in the composition.
func SinglePage(pageWidth, pageHeight, margin float64) (Box, error) {
	width := pageWidth - 2*margin
	height := pageHeight - 2*margin
	if width <= 0 || height <= 0 {
		return Box{}, fmt.Errorf("margin %.1fpt leaves no usable area on a %.0fx%.0fpt page", margin, pageWidth, pageHeight)
	}
	return Box{X: margin, Y: margin, Width: width, Height: height}, nil
}
