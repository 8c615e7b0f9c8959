// Package storage persists the charge grid as a small JSON document in the
// user's data directory.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"charge-calculator/internal/composition"
	"charge-calculator/internal/logger"
)

const (
	// FileName is the name of the saved grid inside the data directory
	FileName = "saved_data.json"
	// AppDirName is the per-user directory created under the OS config root
	AppDirName = "charge-calculator"
)

// ErrNoSavedData is returned by Read when nothing has been saved yet
var ErrNoSavedData = errors.New("no saved data")

// ShapeError reports a saved document that is not exactly 9 rows of 9 fields
type ShapeError struct {
	Rows   int // number of rows found
	Row    int // first offending row, -1 when the row count is wrong
	Fields int // number of fields in Row
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("saved data has %d rows, want %d", e.Rows, composition.RowCount)
	}
	return fmt.Sprintf("saved data row %d has %d fields, want %d", e.Row, e.Fields, composition.FieldCount)
}

// document is the on-disk layout
type document struct {
	Rows [][]string `json:"rows"`
}

// Store reads and writes the grid file
type Store struct {
	path   string
	logger logger.Logger
}

// NewStore creates a store that keeps its file in dir. Its log entries carry
// the file path.
func NewStore(dir string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	path := filepath.Join(dir, FileName)
	return &Store{
		path:   path,
		logger: logger.With(log, map[string]interface{}{"path": path}),
	}
}

// DefaultDir returns the per-user data directory for the application
func DefaultDir() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(root, AppDirName), nil
}

// Path returns the location of the grid file
func (s *Store) Path() string {
	return s.path
}

// Save writes the grid and reports success. Failures are logged, never
// returned.
func (s *Store) Save(g composition.Grid) bool {
	if err := s.Write(g); err != nil {
		s.logger.Error("Store", err, nil)
		return false
	}

	s.logger.Debug("Store", "grid saved", nil)
	return true
}

// Load reads the saved grid. It returns false when there is no file or the
// file cannot be used; the caller falls back to defaults.
func (s *Store) Load() (composition.Grid, bool) {
	g, err := s.Read()
	switch {
	case err == nil:
		s.logger.Debug("Store", "grid loaded", nil)
		return g, true
	case errors.Is(err, ErrNoSavedData):
		s.logger.Debug("Store", "no saved grid", nil)
	default:
		s.logger.Warning("Store", "ignoring saved grid", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return composition.Grid{}, false
}

// Write stores the grid verbatim. The file is replaced atomically.
func (s *Store) Write(g composition.Grid) error {
	doc := document{Rows: make([][]string, composition.RowCount)}
	for r := range g {
		doc.Rows[r] = append([]string(nil), g[r][:]...)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode grid: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, FileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write grid: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace grid file: %w", err)
	}
	return nil
}

// Read loads the grid. A missing file yields ErrNoSavedData; a file that is
// not valid JSON or not exactly 9x9 is an error and nothing is restored.
func (s *Store) Read() (composition.Grid, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return composition.Grid{}, ErrNoSavedData
		}
		return composition.Grid{}, fmt.Errorf("read grid file: %w", err)
	}
	return Decode(data)
}

// Decode parses a saved document. Cells may be strings, numbers (kept as
// their literal text) or null (read as empty). A numeric zero reads as empty
// like null.
func Decode(data []byte) (composition.Grid, error) {
	var raw struct {
		Rows []json.RawMessage `json:"rows"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return composition.Grid{}, fmt.Errorf("decode grid file: %w", err)
	}
	if len(raw.Rows) != composition.RowCount {
		return composition.Grid{}, &ShapeError{Rows: len(raw.Rows), Row: -1}
	}

	var g composition.Grid
	for r, rawRow := range raw.Rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(rawRow, &cells); err != nil {
			return composition.Grid{}, fmt.Errorf("decode row %d: %w", r, err)
		}
		if len(cells) != composition.FieldCount {
			return composition.Grid{}, &ShapeError{Rows: len(raw.Rows), Row: r, Fields: len(cells)}
		}
		for c, cell := range cells {
			text, err := cellText(cell)
			if err != nil {
				return composition.Grid{}, fmt.Errorf("decode row %d field %d: %w", r, c, err)
			}
			g[r][c] = text
		}
	}
	return g, nil
}

func cellText(cell json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(cell))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", err
	}

	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case json.Number:
		if f, err := val.Float64(); err == nil && f == 0 {
			return "", nil
		}
		return val.String(), nil
	default:
		return "", fmt.Errorf("unsupported cell type %T", v)
	}
}
