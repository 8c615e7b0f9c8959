package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charge-calculator/internal/composition"
	"charge-calculator/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
}

// rowsJSON builds a document with the given number of rows of n string fields.
func rowsJSON(rows, fields int) string {
	row := "[" + strings.TrimSuffix(strings.Repeat(`"1",`, fields), ",") + "]"
	all := strings.TrimSuffix(strings.Repeat(row+",", rows), ",")
	return `{"rows": [` + all + `]}`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)

	g := composition.DefaultGrid()
	g[0][3] = "1,25"
	g[8][8] = "  "
	g[4][0] = "abc"
	g[5][5] = "<&>"

	require.True(t, store.Save(g))

	loaded, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, g, loaded)
}

func TestSaveWritesRowsDocument(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)

	var g composition.Grid
	g[0][0] = "<1>"
	require.NoError(t, store.Write(g))

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), `{"rows":[["<1>","",`))
	assert.Equal(t, filepath.Join(dir, FileName), store.Path())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewStore(dir, nil)

	require.True(t, store.Save(composition.DefaultGrid()))
	_, err := os.Stat(filepath.Join(dir, FileName))
	assert.NoError(t, err)
}

func TestSaveFailureReturnsFalse(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// the data dir would have to live under a regular file
	store := NewStore(filepath.Join(blocker, "data"), nil)
	assert.False(t, store.Save(composition.DefaultGrid()))
}

func TestSaveFailureLogsPathAndCause(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var buf bytes.Buffer
	store := NewStore(filepath.Join(blocker, "data"), logger.New(&buf, zerolog.ErrorLevel, true))
	require.False(t, store.Save(composition.DefaultGrid()))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "Store", entry["component"])
	assert.Equal(t, store.Path(), entry["path"])
	assert.NotEmpty(t, entry["message"])
	assert.Equal(t, entry["error"], entry["message"])
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	_, ok := store.Load()
	assert.False(t, ok)

	_, err := store.Read()
	assert.ErrorIs(t, err, ErrNoSavedData)
}

func TestLoadRejectsWrongShape(t *testing.T) {
	tests := map[string]string{
		"eight rows":         rowsJSON(8, 9),
		"ten rows":           rowsJSON(10, 9),
		"row with 8 fields":  strings.Replace(rowsJSON(9, 9), `["1","1","1","1","1","1","1","1","1"]`, `["1","1","1","1","1","1","1","1"]`, 1),
		"row with 10 fields": strings.Replace(rowsJSON(9, 9), `"1"]`, `"1","1"]`, 1),
		"missing rows":       `{"cells": []}`,
		"null rows":          `{"rows": null}`,
		"null row":           strings.Replace(rowsJSON(9, 9), `["1","1","1","1","1","1","1","1","1"]`, `null`, 1),
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, content)

			store := NewStore(dir, nil)
			_, ok := store.Load()
			assert.False(t, ok)

			_, err := store.Read()
			var shapeErr *ShapeError
			assert.True(t, errors.As(err, &shapeErr), "got %v", err)
		})
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":    `{"rows": [`,
		"array root":  `[]`,
		"row object":  strings.Replace(rowsJSON(9, 9), `["1","1","1","1","1","1","1","1","1"]`, `{}`, 1),
		"bool cell":   strings.Replace(rowsJSON(9, 9), `"1"`, `true`, 1),
		"nested cell": strings.Replace(rowsJSON(9, 9), `"1"`, `["1"]`, 1),
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, content)

			_, ok := NewStore(dir, nil).Load()
			assert.False(t, ok)
		})
	}
}

func TestLoadAcceptsNullAndNumberCells(t *testing.T) {
	dir := t.TempDir()
	content := strings.Replace(rowsJSON(9, 9), `["1","1","1","1","1","1","1","1","1"]`,
		`[null, 742, 1.50, "x", "", "1", "1", "1", "1"]`, 1)
	writeFile(t, dir, content)

	g, ok := NewStore(dir, nil).Load()
	require.True(t, ok)
	assert.Equal(t, composition.Row{"", "742", "1.50", "x", "", "1", "1", "1", "1"}, g[0])
	assert.Equal(t, "1", g[8][8])
}

func TestLoadReadsZeroNumberAsEmpty(t *testing.T) {
	dir := t.TempDir()
	content := strings.Replace(rowsJSON(9, 9), `["1","1","1","1","1","1","1","1","1"]`,
		`[0, 0.0, -0, 0e3, "0", 10, "1", "1", "1"]`, 1)
	writeFile(t, dir, content)

	g, ok := NewStore(dir, nil).Load()
	require.True(t, ok)
	assert.Equal(t, composition.Row{"", "", "", "", "0", "10", "1", "1", "1"}, g[0])
}

func TestShapeErrorMessage(t *testing.T) {
	assert.Equal(t, "saved data has 8 rows, want 9", (&ShapeError{Rows: 8, Row: -1}).Error())
	assert.Equal(t, "saved data row 2 has 8 fields, want 9", (&ShapeError{Rows: 9, Row: 2, Fields: 8}).Error())
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, AppDirName, filepath.Base(dir))
}
