package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const (
	productsFile = "products"
	pricesFile   = "prices"
)

var (
	productHeader = []string{"organization", "name", "product_type", "ref", "init_stock"}
	priceHeader   = []string{"ref", "price_list", "active", "list_price", "standard_price", "limit_price"}
)

// record is one non-blank input line with its 1-based position in the
// file, header excluded.
type record struct {
	line   int
	fields []string
}

func (r record) field(i int) string {
	return strings.TrimSpace(r.fields[i])
}

// readCSV returns the header and the records of r. Blank lines are
// skipped and rows may have any number of fields.
func readCSV(r io.Reader) ([]string, []record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var header []string
	var records []record
	for line := 0; ; {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading csv: %w", err)
		}
		if isBlank(fields) {
			continue
		}
		if header == nil {
			header = fields
			continue
		}
		line++
		records = append(records, record{line: line, fields: fields})
	}
	return header, records, nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// hasHeader reports whether header starts with the expected column names,
// ignoring case and surrounding spaces.
func hasHeader(header, expected []string) bool {
	if len(header) < len(expected) {
		return false
	}
	for i, name := range expected {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return false
		}
	}
	return true
}
