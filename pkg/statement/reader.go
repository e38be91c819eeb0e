package statement

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// textEncodings are attempted in order; the first clean decode wins.
// GB18030 is a superset of GB2312, so the chain accepts any of the encodings
// Chinese banks actually export.
var textEncodings = []struct {
	name   string
	decode func([]byte) ([]byte, error)
}{
	{"utf-8", decodeUTF8},
	{"gbk", decoderFor(simplifiedchinese.GBK)},
	{"gb18030", decoderFor(simplifiedchinese.GB18030)},
}

func decodeUTF8(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(data) {
		return nil, errors.New("invalid UTF-8 byte sequence")
	}
	return data, nil
}

func decoderFor(enc encoding.Encoding) func([]byte) ([]byte, error) {
	return func(data []byte) ([]byte, error) {
		out, _, err := transform.Bytes(enc.NewDecoder(), data)
		if err != nil {
			return nil, err
		}
		// The decoder substitutes U+FFFD for undecodable bytes instead of
		// failing; treat any substitution as a failed attempt.
		if bytes.ContainsRune(out, utf8.RuneError) {
			return nil, errors.New("undecodable byte sequence")
		}
		return out, nil
	}
}

// DecodeText converts raw statement bytes to UTF-8, trying each supported
// encoding in order. The error names every attempted encoding.
func DecodeText(data []byte) ([]byte, error) {
	var attempts []string
	for _, e := range textEncodings {
		out, err := e.decode(data)
		if err == nil {
			return out, nil
		}
		attempts = append(attempts, fmt.Sprintf("%s (%v)", e.name, err))
	}
	return nil, fmt.Errorf("unable to decode statement text, tried encodings: %s", strings.Join(attempts, "; "))
}

// ReadTable reads a statement file into raw records, header row first.
// XLSX workbooks are read from their first sheet; everything else is treated
// as CSV in one of the supported text encodings.
func ReadTable(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

func readCSV(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement file: %w", err)
	}

	text, err := DecodeText(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(text))
	// Bank exports are sloppy: ragged rows and loose quoting are common.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return records, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}
