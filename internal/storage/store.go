package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AdrienGallet/unitcalc/internal/quantity"
)

// Store persists evaluated worksheets, one directory per sheet, each holding
// a metadata.json and a quantities.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SheetMetadata struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Variables int       `json:"variables"`
}

var csvHeader = []string{"name", "value", "unit", "family", "base_value", "base_unit", "info", "formula", "dimension"}

func (s *Store) Save(name string, quantities []*quantity.Quantity) (string, error) {
	sheetID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	sheetDir := filepath.Join(s.baseDir, sheetID)

	if err := os.MkdirAll(sheetDir, 0755); err != nil {
		return "", err
	}

	meta := SheetMetadata{
		ID:        sheetID,
		Name:      name,
		Timestamp: time.Now(),
		Variables: len(quantities),
	}

	metaPath := filepath.Join(sheetDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(sheetDir, "quantities.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, q := range quantities {
		row := []string{
			q.Name(),
			strconv.FormatFloat(q.Value(), 'g', -1, 64),
			q.Unit(),
			q.Family(),
			strconv.FormatFloat(q.BaseValue(), 'g', -1, 64),
			q.BaseUnit(),
			q.Info(),
			q.Formula(),
			q.Dim().String(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return sheetID, nil
}

func (s *Store) List() ([]SheetMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SheetMetadata{}, nil
		}
		return nil, err
	}

	sheets := make([]SheetMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta SheetMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		sheets = append(sheets, meta)
	}

	return sheets, nil
}

func (s *Store) Load(sheetID string) (*SheetMetadata, error) {
	metaPath := filepath.Join(s.baseDir, sheetID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta SheetMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// ExportRecord is one persisted quantity row, as written to quantities.csv.
type ExportRecord struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Family    string  `json:"family,omitempty"`
	BaseValue float64 `json:"base_value"`
	BaseUnit  string  `json:"base_unit"`
	Info      string  `json:"info,omitempty"`
	Formula   string  `json:"formula,omitempty"`
	Dimension string  `json:"dimension"`
}

// LoadRecords reads the persisted quantity rows of a sheet.
func (s *Store) LoadRecords(sheetID string) ([]ExportRecord, error) {
	csvPath := filepath.Join(s.baseDir, sheetID, "quantities.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []ExportRecord{}, nil
	}

	records := make([]ExportRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			continue
		}
		value, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			continue
		}
		baseValue, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			continue
		}
		records = append(records, ExportRecord{
			Name:      row[0],
			Value:     value,
			Unit:      row[2],
			Family:    row[3],
			BaseValue: baseValue,
			BaseUnit:  row[5],
			Info:      row[6],
			Formula:   row[7],
			Dimension: row[8],
		})
	}
	return records, nil
}

// ExportJSON writes a sheet's metadata and quantity rows as indented JSON.
func (s *Store) ExportJSON(sheetID string, out io.Writer) error {
	meta, err := s.Load(sheetID)
	if err != nil {
		return err
	}
	records, err := s.LoadRecords(sheetID)
	if err != nil {
		return err
	}

	payload := struct {
		SheetMetadata
		Quantities []ExportRecord `json:"quantities"`
	}{*meta, records}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
