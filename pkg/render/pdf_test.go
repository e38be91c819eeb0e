package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/onnk5188-hash/Bank-statement-generation/pkg/layout"
	"github.com/onnk5188-hash/Bank-statement-generation/pkg/voucher"
)

func sampleVouchers(n int) []voucher.Voucher {
	vouchers := make([]voucher.Voucher, n)
	for i := range vouchers {
		vouchers[i] = voucher.Voucher{
			Number:        "00" + string(rune('1'+i)),
			Date:          time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC),
			Description:   "transfer",
			DebitAccount:  "cash",
			CreditAccount: "bank",
			Amount:        float64(100 * (i + 1)),
		}
	}
	return vouchers
}

func TestWriteSummary(t *testing.T) {
	vouchers := sampleVouchers(4)
	margin := layout.MmToPt(12)
	placements, err := layout.Paginate(len(vouchers), 3, layout.A4Width, layout.A4Height, margin, layout.MmToPt(6))
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "vouchers.pdf")
	r := New("Test Co", "")
	if err := r.WriteSummary(vouchers, placements, path); err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("summary document missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("summary document is empty")
	}
}

func TestWriteSingle(t *testing.T) {
	v := sampleVouchers(1)[0]
	box, err := layout.SinglePage(layout.A4Width, layout.A4Height, layout.MmToPt(12))
	if err != nil {
		t.Fatalf("SinglePage() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "voucher_001.pdf")
	r := New("Test Co", "")
	if err := r.WriteSingle(v, box, path); err != nil {
		t.Fatalf("WriteSingle() error: %v", err)
	}

	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("voucher document missing or empty: %v", err)
	}
}
