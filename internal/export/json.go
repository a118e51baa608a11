package export

import (
	"encoding/json"
	"io"

	"valleyviz/internal/analysis"
	"valleyviz/internal/dataset"
	"valleyviz/internal/extrema"
)

// ExtremumData is one detected extremum in the exported report.
type ExtremumData struct {
	Index   int     `json:"index"`
	T       float64 `json:"t"`
	AbsZ    float64 `json:"absZ"`
	Spacing float64 `json:"spacing,omitempty"`
	Kind    string  `json:"kind"`
}

// ReportData is the full JSON report for one dataset.
type ReportData struct {
	Dataset   string         `json:"dataset"`
	Samples   int            `json:"samples"`
	TMin      float64        `json:"t_min"`
	TMax      float64        `json:"t_max"`
	Valleys   int            `json:"valleys"`
	Mountains int            `json:"mountains"`
	Spacing   analysis.Stats `json:"spacing_stats"`
	Extrema   []ExtremumData `json:"extrema"`
}

// ReportJSON writes an indented extremum report for the dataset.
func ReportJSON(w io.Writer, name string, ds dataset.Dataset, report extrema.Report) error {
	lo, hi := ds.Bounds()
	data := ReportData{
		Dataset:   name,
		Samples:   len(ds),
		TMin:      lo,
		TMax:      hi,
		Valleys:   len(report.Valleys()),
		Mountains: len(report.Mountains()),
		Spacing:   analysis.SpacingStats(report.Valleys()),
		Extrema:   make([]ExtremumData, 0, len(report.Points)),
	}

	for _, p := range report.Points {
		data.Extrema = append(data.Extrema, ExtremumData{
			Index:   p.Index,
			T:       p.Sample.T,
			AbsZ:    p.Sample.AbsZ,
			Spacing: p.Sample.Spacing,
			Kind:    p.Kind.String(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
