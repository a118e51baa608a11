package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"valleyviz/internal/analysis"
	"valleyviz/internal/dataset"
	"valleyviz/internal/extrema"
)

// Store persists extremum scan reports under a base directory, one
// directory per report with metadata.json and extrema.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// ReportMeta describes one stored scan report.
type ReportMeta struct {
	ID        string         `json:"id"`
	Dataset   string         `json:"dataset"`
	Timestamp time.Time      `json:"timestamp"`
	Samples   int            `json:"samples"`
	TMin      float64        `json:"t_min"`
	TMax      float64        `json:"t_max"`
	Valleys   int            `json:"valleys"`
	Mountains int            `json:"mountains"`
	Spacing   analysis.Stats `json:"spacing_stats"`
}

// Save writes a new report for the dataset and returns its id.
func (s *Store) Save(datasetPath string, ds dataset.Dataset, report extrema.Report) (string, error) {
	name := strings.TrimSuffix(filepath.Base(datasetPath), filepath.Ext(datasetPath))
	reportID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	reportDir := filepath.Join(s.baseDir, reportID)

	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", err
	}

	lo, hi := ds.Bounds()
	meta := ReportMeta{
		ID:        reportID,
		Dataset:   datasetPath,
		Timestamp: time.Now(),
		Samples:   len(ds),
		TMin:      lo,
		TMax:      hi,
		Valleys:   len(report.Valleys()),
		Mountains: len(report.Mountains()),
		Spacing:   analysis.SpacingStats(report.Valleys()),
	}

	metaFile, err := os.Create(filepath.Join(reportDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(reportDir, "extrema.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)

	if err := w.Write([]string{"index", "t", "absZ", "spacing", "kind"}); err != nil {
		return "", err
	}
	for _, p := range report.Points {
		row := []string{
			strconv.Itoa(p.Index),
			strconv.FormatFloat(p.Sample.T, 'f', 6, 64),
			strconv.FormatFloat(p.Sample.AbsZ, 'f', 6, 64),
			strconv.FormatFloat(p.Sample.Spacing, 'f', 6, 64),
			p.Kind.String(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return reportID, nil
}

// List returns metadata for every stored report, skipping directories
// without readable metadata.
func (s *Store) List() ([]ReportMeta, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ReportMeta{}, nil
		}
		return nil, err
	}

	reports := make([]ReportMeta, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta ReportMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		reports = append(reports, meta)
	}
	return reports, nil
}

// Load reads one report's metadata by id.
func (s *Store) Load(reportID string) (*ReportMeta, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, reportID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta ReportMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadExtrema reads back the stored extremum rows for a report.
func (s *Store) LoadExtrema(reportID string) ([]extrema.Point, error) {
	f, err := os.Open(filepath.Join(s.baseDir, reportID, "extrema.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []extrema.Point{}, nil
	}

	points := make([]extrema.Point, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 5 {
			continue
		}
		idx, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		t, err1 := strconv.ParseFloat(record[1], 64)
		absZ, err2 := strconv.ParseFloat(record[2], 64)
		spacing, err3 := strconv.ParseFloat(record[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		kind := extrema.Valley
		if record[4] == extrema.Mountain.String() {
			kind = extrema.Mountain
		}
		points = append(points, extrema.Point{
			Index:  idx,
			Sample: dataset.Sample{T: t, AbsZ: absZ, Spacing: spacing},
			Kind:   kind,
		})
	}
	return points, nil
}
