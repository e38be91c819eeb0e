// Package render draws computed voucher layouts into PDF documents.
package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/onnk5188-hash/Bank-statement-generation/pkg/layout"
	"github.com/onnk5188-hash/Bank-statement-generation/pkg/voucher"
)

// Renderer writes voucher documents for one generation run.
type Renderer struct {
	company  string
	fontPath string
}

// New creates a Renderer. company appears as the voucher title line;
// fontPath, when non-empty, overrides the built-in CJK font candidates.
func New(company, fontPath string) *Renderer {
	return &Renderer{company: company, fontPath: fontPath}
}

func (r *Renderer) newDocument() (*fpdf.Fpdf, string) {
	pdf := fpdf.New("P", "pt", "A4", "")
	family := registerFont(pdf, r.fontPath)
	return pdf, family
}

// WriteSummary renders all vouchers into one paginated document at path.
// Placements must come from layout.Paginate over the same voucher sequence.
func (r *Renderer) WriteSummary(vouchers []voucher.Voucher, placements []layout.Placement, path string) error {
	pdf, family := r.newDocument()

	page := -1
	for _, p := range placements {
		for page < p.Page {
			pdf.AddPage()
			page++
		}
		draw(pdf, family, layout.BuildContent(vouchers[p.Index], p.Box, r.company))
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write summary document: %w", err)
	}
	return nil
}

// WriteSingle renders one voucher filling the usable area of its own page.
func (r *Renderer) WriteSingle(v voucher.Voucher, box layout.Box, path string) error {
	pdf, family := r.newDocument()
	pdf.AddPage()
	draw(pdf, family, layout.BuildContent(v, box, r.company))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write voucher document: %w", err)
	}
	return nil
}

// draw executes the layout's instructions. Alignment is resolved here because
// it needs glyph widths, which only the document knows.
func draw(pdf *fpdf.Fpdf, family string, c layout.Content) {
	for _, rect := range c.Rects {
		if rect.Radius > 0 {
			pdf.RoundedRect(rect.X, rect.Y, rect.Width, rect.Height, rect.Radius, "1234", "D")
		} else {
			pdf.Rect(rect.X, rect.Y, rect.Width, rect.Height, "D")
		}
	}

	for _, line := range c.Lines {
		pdf.Line(line.X1, line.Y1, line.X2, line.Y2)
	}

	for _, text := range c.Texts {
		pdf.SetFont(family, "", text.Size)
		x := text.X
		switch text.Align {
		case layout.AlignCenter:
			x -= pdf.GetStringWidth(text.Value) / 2
		case layout.AlignRight:
			x -= pdf.GetStringWidth(text.Value)
		}
		pdf.Text(x, text.Y, text.Value)
	}
}
