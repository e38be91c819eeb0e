// Package voucher builds numbered journal vouchers from normalized
// statement rows.
package voucher

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/onnk5188-hash/Bank-statement-generation/pkg/mapping"
	"github.com/onnk5188-hash/Bank-statement-generation/pkg/statement"
)

// DefaultDescription fills in when a statement row carries no usable summary.
const DefaultDescription = "银行流水"

// Voucher is a single journal entry: one debit account, one credit account,
// a positive amount and a sequential zero-padded number.
type Voucher struct {
	Number        string
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        float64
}

var amountPrinter = message.NewPrinter(language.English)

// FormattedAmount renders the amount with thousands grouping and exactly two
// decimal places, as printed on the voucher.
func (v Voucher) FormattedAmount() string {
	return amountPrinter.Sprint(number.Decimal(v.Amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormattedDate renders the voucher date in the long calendar form.
func (v Voucher) FormattedDate() string {
	return v.Date.Format("2006年01月02日")
}

// Build converts rows into vouchers in input order. The transacted amount is
// the debit column when nonzero, otherwise the credit column; rows with no
// amount are skipped and do not consume a sequence number.
func Build(rows []statement.Row, rules []mapping.Rule, startNumber int, fallbackDebit, fallbackCredit string) []Voucher {
	vouchers := make([]Voucher, 0, len(rows))
	for _, row := range rows {
		amount := row.Debit
		if amount == 0 {
			amount = row.Credit
		}
		if amount == 0 {
			continue
		}

		debit, credit := mapping.Classify(row.Description, rules, fallbackDebit, fallbackCredit)

		description := strings.TrimSpace(row.Description)
		if description == "" {
			description = DefaultDescription
		}

		vouchers = append(vouchers, Voucher{
			Number:        fmt.Sprintf("%03d", startNumber+len(vouchers)),
			Date:          row.Date,
			Description:   description,
			DebitAccount:  debit,
			CreditAccount: credit,
			Amount:        math.Abs(amount),
		})
	}
	return vouchers
}
