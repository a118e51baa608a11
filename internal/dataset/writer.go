package dataset

import (
	"encoding/csv"
	"os"
	"strconv"
)

// Save writes the dataset in the scanner's export format. Used by the
// local generator; the visualizer itself never rewrites its inputs.
func Save(path string, ds Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range ds {
		row := []string{
			strconv.FormatFloat(s.T, 'f', 6, 64),
			strconv.FormatFloat(s.AbsZ, 'f', 6, 64),
			strconv.FormatFloat(s.Spacing, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
