// Package statement reads bank-statement exports and normalizes them into
// canonical transaction rows.
package statement

import "time"

// Row is a normalized statement line. Debit and Credit hold the raw column
// values; rows where both are zero are dropped when zero filtering is on.
type Row struct {
	Date        time.Time
	Description string
	Debit       float64
	Credit      float64
}
