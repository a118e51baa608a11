package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// column order is fixed by the scanner's export format.
var header = []string{"t", "absZ", "spacing"}

// Load reads a scan dataset from a CSV file. The file must carry the
// header t,absZ,spacing and rows ordered by strictly increasing t.
// A file with a header and no rows loads as an empty Dataset.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		var ce *csv.ParseError
		if errors.As(err, &ce) {
			return nil, &ParseError{Path: path, Line: ce.Line, Field: "row", Wrapped: ce.Err}
		}
		return nil, err
	}

	if len(records) == 0 {
		return nil, &ParseError{Path: path, Line: 0, Field: "header", Wrapped: ErrBadHeader}
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, &ParseError{Path: path, Line: 1, Field: "header", Wrapped: err}
	}

	ds := make(Dataset, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2 // 1-based, after header

		if len(record) != len(header) {
			return nil, &ParseError{
				Path: path, Line: line, Field: "row",
				Wrapped: fmt.Errorf("expected %d columns, got %d", len(header), len(record)),
			}
		}

		var s Sample
		for j, name := range header {
			val, err := strconv.ParseFloat(strings.TrimSpace(record[j]), 64)
			if err != nil {
				return nil, &ParseError{Path: path, Line: line, Field: name, Wrapped: err}
			}
			switch j {
			case 0:
				s.T = val
			case 1:
				s.AbsZ = val
			case 2:
				s.Spacing = val
			}
		}

		if n := len(ds); n > 0 && s.T <= ds[n-1].T {
			return nil, &ParseError{Path: path, Line: line, Field: "t", Wrapped: ErrUnsorted}
		}
		ds = append(ds, s)
	}

	return ds, nil
}

func checkHeader(record []string) error {
	if len(record) != len(header) {
		return ErrBadHeader
	}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(record[i]), name) {
			return ErrBadHeader
		}
	}
	return nil
}
