package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// row is one CSV record with access by column name.
// Field accessors fail fast: a missing column or unparseable value is an
// error that aborts the whole ingestion run.
type row struct {
	file string
	num  int // 1-based data row number, excluding the header
	cols map[string]string
}

// readRows reads an entire CSV file into named rows using the header line
func readRows(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}

	header := records[0]
	rows := make([]row, 0, len(records)-1)
	for i, rec := range records[1:] {
		cols := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(rec) {
				cols[name] = rec[j]
			}
		}
		rows = append(rows, row{file: path, num: i + 1, cols: cols})
	}
	return rows, nil
}

func (r row) errf(col, format string, args ...any) error {
	return fmt.Errorf("%s row %d, column %q: %s", r.file, r.num, col, fmt.Sprintf(format, args...))
}

// get returns the raw value of a column, failing if the column is absent
func (r row) get(col string) (string, error) {
	v, ok := r.cols[col]
	if !ok {
		return "", r.errf(col, "column not present")
	}
	return v, nil
}

func (r row) uintField(col string) (uint, error) {
	s, err := r.get(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, r.errf(col, "not an integer: %q", s)
	}
	return uint(v), nil
}

func (r row) intField(col string) (int, error) {
	s, err := r.get(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, r.errf(col, "not an integer: %q", s)
	}
	return v, nil
}

// optionalUintField maps an empty value to nil instead of a sentinel
func (r row) optionalUintField(col string) (*uint, error) {
	s, err := r.get(col)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, r.errf(col, "not an integer: %q", s)
	}
	u := uint(v)
	return &u, nil
}

func (r row) decimalField(col string) (decimal.Decimal, error) {
	s, err := r.get(col)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, r.errf(col, "not a decimal: %q", s)
	}
	return d, nil
}

func (r row) boolField(col string) (bool, error) {
	v, err := r.intField(col)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// timeField parses a timestamp trying each given layout in order.
// Layouts differ per source table and must not be assumed global.
func (r row) timeField(col string, layouts ...string) (time.Time, error) {
	s, err := r.get(col)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range layouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t, nil
		}
	}
	return time.Time{}, r.errf(col, "timestamp %q does not match expected format", s)
}
