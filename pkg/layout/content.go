package layout

import (
	"github.com/onnk5188-hash/Bank-statement-generation/pkg/voucher"
)

// Align selects the horizontal anchor of a text element.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text is a positioned string. X is the anchor point interpreted per Align;
// Y is the baseline.
type Text struct {
	X     float64
	Y     float64
	Size  float64
	Align Align
	Value string
}

// Line is a straight stroke between two points.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Rect is a stroked rectangle; Radius > 0 rounds the corners.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Radius float64
}

// Content is the complete set of draw instructions for one voucher. Glyph
// drawing itself is the renderer's job.
type Content struct {
	Rects []Rect
	Lines []Line
	Texts []Text
}

// Table column shares of the usable table width. The two amount columns
// split the remainder evenly.
const (
	summaryShare = 0.25
	accountShare = 0.38
)

// Fixed labels printed on every voucher.
var (
	voucherTitle   = "记账凭证"
	voucherWord    = "凭证字：记"
	tableHeaders   = []string{"摘要", "科目", "借方金额", "贷方金额"}
	totalLabel     = "合计"
	signatureRoles = []string{"制单", "审核", "出纳", "记账", "复核"}
	defaultCompany = "公司名称"
	signatureBlank = "：________________"
)

// BuildContent computes the internal geometry of one voucher within box:
// header block, info line, a four-row entry table and the signature footer.
// The box is assumed valid; degenerate dimensions are rejected earlier by the
// page layout.
func BuildContent(v voucher.Voucher, box Box, company string) Content {
	if company == "" {
		company = defaultCompany
	}

	padding := MmToPt(6)
	lineHeight := MmToPt(6)

	var c Content
	c.Rects = append(c.Rects, Rect{X: box.X, Y: box.Y, Width: box.Width, Height: box.Height, Radius: 4})

	// Header: two centered title lines.
	centerX := box.X + box.Width/2
	titleY := box.Y + padding
	c.Texts = append(c.Texts,
		Text{X: centerX, Y: titleY + MmToPt(2), Size: 14, Align: AlignCenter, Value: company},
		Text{X: centerX, Y: titleY + lineHeight + MmToPt(1), Size: 12, Align: AlignCenter, Value: voucherTitle},
	)

	// Info lines: voucher code, right-aligned number, date.
	infoY := titleY + 2*lineHeight + MmToPt(2)
	c.Texts = append(c.Texts,
		Text{X: box.X + padding, Y: infoY, Size: 10, Align: AlignLeft, Value: voucherWord},
		Text{X: box.X + box.Width - padding, Y: infoY, Size: 10, Align: AlignRight, Value: "编号：" + v.Number},
		Text{X: box.X + padding, Y: infoY + lineHeight, Size: 10, Align: AlignLeft, Value: "日期：" + v.FormattedDate()},
	)

	// Entry table: four equal rows, columns at fixed width shares.
	tableTop := infoY + 2*lineHeight
	tableLeft := box.X + padding
	tableWidth := box.Width - 2*padding
	summaryWidth := tableWidth * summaryShare
	accountWidth := tableWidth * accountShare
	amountWidth := (tableWidth - summaryWidth - accountWidth) / 2
	rowHeight := lineHeight + MmToPt(1)
	tableHeight := rowHeight * 4

	c.Rects = append(c.Rects, Rect{X: tableLeft, Y: tableTop, Width: tableWidth, Height: tableHeight})

	// Separators derive purely from the column widths and row height.
	for _, dx := range []float64{summaryWidth, summaryWidth + accountWidth, summaryWidth + accountWidth + amountWidth} {
		c.Lines = append(c.Lines, Line{X1: tableLeft + dx, Y1: tableTop, X2: tableLeft + dx, Y2: tableTop + tableHeight})
	}
	for i := 1; i < 4; i++ {
		y := tableTop + rowHeight*float64(i)
		c.Lines = append(c.Lines, Line{X1: tableLeft, Y1: y, X2: tableLeft + tableWidth, Y2: y})
	}

	cellPad := MmToPt(2)
	baseline := func(row int) float64 {
		return tableTop + rowHeight*float64(row+1) - cellPad
	}
	columnCenters := []float64{
		tableLeft + summaryWidth/2,
		tableLeft + summaryWidth + accountWidth/2,
		tableLeft + summaryWidth + accountWidth + amountWidth/2,
		tableLeft + summaryWidth + accountWidth + amountWidth*1.5,
	}
	for i, label := range tableHeaders {
		c.Texts = append(c.Texts, Text{X: columnCenters[i], Y: baseline(0), Size: 10, Align: AlignCenter, Value: label})
	}

	amount := v.FormattedAmount()
	debitAmountRight := tableLeft + summaryWidth + accountWidth + amountWidth - cellPad
	creditAmountRight := tableLeft + tableWidth - cellPad

	// Debit entry row.
	c.Texts = append(c.Texts,
		Text{X: tableLeft + cellPad, Y: baseline(1), Size: 10, Align: AlignLeft, Value: v.Description},
		Text{X: tableLeft + summaryWidth + cellPad, Y: baseline(1), Size: 10, Align: AlignLeft, Value: v.DebitAccount},
		Text{X: debitAmountRight, Y: baseline(1), Size: 10, Align: AlignRight, Value: amount},
	)
	// Credit entry row.
	c.Texts = append(c.Texts,
		Text{X: tableLeft + summaryWidth + cellPad, Y: baseline(2), Size: 10, Align: AlignLeft, Value: v.CreditAccount},
		Text{X: creditAmountRight, Y: baseline(2), Size: 10, Align: AlignRight, Value: amount},
	)
	// Total row.
	c.Texts = append(c.Texts,
		Text{X: tableLeft + cellPad, Y: baseline(3), Size: 10, Align: AlignLeft, Value: totalLabel},
		Text{X: debitAmountRight, Y: baseline(3), Size: 10, Align: AlignRight, Value: amount},
	)

	// Footer: signature roles evenly spaced across the voucher width.
	footerY := box.Y + box.Height - padding - MmToPt(2)
	roleSpacing := tableWidth / float64(len(signatureRoles))
	for i, role := range signatureRoles {
		c.Texts = append(c.Texts, Text{
			X:     tableLeft + roleSpacing*float64(i),
			Y:     footerY,
			Size:  9,
			Align: AlignLeft,
			Value: role + signatureBlank,
		})
	}

	return c
}
