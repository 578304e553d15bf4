package puzzle

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vytor/chronoquest/internal/models"
)

//go:embed data/puzzles.yaml
var embeddedPuzzles []byte

// Format is the encoding of a puzzle dataset.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported puzzle file extension %q", filepath.Ext(path))
	}
}

// Parse decodes a list of puzzles. Unknown fields are rejected so typos in
// a dataset surface at startup.
func Parse(data []byte, format Format) ([]models.Puzzle, error) {
	var records []models.Puzzle
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("decode json puzzles: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("decode yaml puzzles: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown puzzle format %q", format)
	}
	return records, nil
}

// Embedded returns the bundled sample puzzles.
func Embedded() ([]models.Puzzle, error) {
	return Parse(embeddedPuzzles, FormatYAML)
}

// LoadFile reads a JSON or YAML dataset from disk.
func LoadFile(path string) ([]models.Puzzle, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzles: %w", err)
	}
	return Parse(data, format)
}

// LoadCatalog builds a Catalog from path, or from the bundled dataset when
// path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	var (
		records []models.Puzzle
		err     error
	)
	if path == "" {
		records, err = Embedded()
	} else {
		records, err = LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return NewCatalog(records)
}
