package data

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/maps"

	"github.com/launchdarkly/webqa-harness/framework/helpers"
)

// Store reads and writes test data files under a single directory, normally
// the workspace data directory. Names are plain file names, not paths.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the absolute location of a named file in the store.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// SaveJSON writes value as two-space-indented UTF-8 JSON and returns the path
// of the written file. Non-ASCII characters are written as themselves rather
// than escape sequences, so the files stay readable.
func (s *Store) SaveJSON(name string, value interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("could not encode %s: %w", name, err)
	}
	path := s.Path(name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil { //nolint:gosec
		return "", fmt.Errorf("could not write %s: %w", path, err)
	}
	return path, nil
}

// LoadJSON reads the named file into target. A file whose content is not
// valid JSON yields an error without touching target at all.
func (s *Store) LoadJSON(name string, target interface{}) error {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}
	if !json.Valid(data) {
		return fmt.Errorf("malformed JSON in %s", path)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("could not decode %s: %w", path, err)
	}
	return nil
}

// SaveCSV writes rows as CSV with a header row and returns the path of the
// written file. Column order is the sorted keys of the first row; every row
// is written using those columns.
func (s *Store) SaveCSV(name string, rows []map[string]string) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("no rows to write to %s", name)
	}
	columns := helpers.Sorted(maps.Keys(rows[0]))

	path := s.Path(name)
	f, err := os.Create(path) //nolint:gosec
	if err != nil {
		return "", fmt.Errorf("could not create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		_ = f.Close()
		return "", err
	}
	for _, row := range rows {
		record := make([]string, 0, len(columns))
		for _, column := range columns {
			record = append(record, row[column])
		}
		if err := w.Write(record); err != nil {
			_ = f.Close()
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("could not write %s: %w", path, err)
	}
	return path, f.Close()
}

// LoadCSV reads a CSV file written by SaveCSV back into one map per row,
// keyed by the header columns.
func (s *Store) LoadCSV(name string) ([]map[string]string, error) {
	path := s.Path(name)
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV in %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, column := range header {
			row[column] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
