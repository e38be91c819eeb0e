package statement

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Column aliases per logical field, scanned in declared order: the first
// alias present in the header binds the field. Order is authoritative.
var (
	dateAliases    = []string{"日期", "交易日期", "记账日期", "发生日期"}
	summaryAliases = []string{"摘要", "附言", "用途", "说明"}
	debitAliases   = []string{"借方金额", "借方", "收入"}
	creditAliases  = []string{"贷方金额", "贷方", "支出"}
)

// Exact date layouts tried first, then lenient fallbacks for the formats
// exports occasionally drift into.
var (
	dateLayouts = []string{"2006/01/02", "2006-01-02", "2006.01.02", "20060102"}

	fallbackDateLayouts = []string{
		"2006/1/2",
		"2006-1-2",
		"2006.1.2",
		"2006年01月02日",
		"2006年1月2日",
		"2006-01-02 15:04:05",
		"2006/01/02 15:04:05",
		time.RFC3339,
	}
)

// columns holds resolved header indexes; -1 marks an absent column.
type columns struct {
	date    int
	summary int
	debit   int
	credit  int
}

func resolveColumns(header []string) (columns, error) {
	trimmed := make([]string, len(header))
	for i, h := range header {
		trimmed[i] = strings.TrimSpace(h)
	}

	find := func(aliases []string) int {
		for _, alias := range aliases {
			for i, h := range trimmed {
				if h == alias {
					return i
				}
			}
		}
		return -1
	}

	cols := columns{
		date:    find(dateAliases),
		summary: find(summaryAliases),
		debit:   find(debitAliases),
		credit:  find(creditAliases),
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, "date (日期)")
	}
	if cols.summary < 0 {
		missing = append(missing, "summary (摘要)")
	}
	if cols.debit < 0 && cols.credit < 0 {
		missing = append(missing, "debit or credit amount (借方金额/贷方金额)")
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("statement is missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseDate(cell string) (time.Time, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date cell")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseAmount coerces an amount cell to a number. Malformed cells are common
// in real exports and become zero instead of failing the run.
func parseAmount(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Normalize turns raw records (header row first) into transaction rows,
// preserving input order. A bad date is fatal for the whole load: silently
// dropping a row would shift every subsequent voucher number.
func Normalize(records [][]string, filterZero bool) ([]Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("statement is empty")
	}

	cols, err := resolveColumns(records[0])
	if err != nil {
		return nil, err
	}

	cell := func(record []string, idx int) string {
		if idx >= 0 && idx < len(record) {
			return record[idx]
		}
		return ""
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		if isEmptyRecord(record) {
			continue
		}

		date, err := parseDate(cell(record, cols.date))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		row := Row{
			Date:        date,
			Description: strings.TrimSpace(cell(record, cols.summary)),
			Debit:       parseAmount(cell(record, cols.debit)),
			Credit:      parseAmount(cell(record, cols.credit)),
		}

		if filterZero && row.Debit == 0 && row.Credit == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Load reads and normalizes a statement file in one call.
func Load(path string, filterZero bool) ([]Row, error) {
	records, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	return Normalize(records, filterZero)
}
