// Package content loads the commentary tables shown alongside the
// statistics. The default table ships embedded in the binary.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bracketlab/bracket-stats/internal/models"
)

//go:embed commentary.yaml
var defaultCommentary []byte

// Default returns the embedded commentary table
func Default() (models.CommentaryTable, error) {
	return Parse(defaultCommentary)
}

// LoadFile reads a commentary table from path
func LoadFile(path string) (models.CommentaryTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.CommentaryTable{}, fmt.Errorf("read commentary: %w", err)
	}
	return Parse(data)
}

// Load returns the table at path, or the embedded default when path is empty.
func Load(path string) (models.CommentaryTable, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes a YAML commentary table. Fallback strings are required so
// every lookup has an answer.
func Parse(data []byte) (models.CommentaryTable, error) {
	var table models.CommentaryTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return models.CommentaryTable{}, fmt.Errorf("parse commentary: %w", err)
	}

	var errs []error
	if table.DefaultDescription == "" {
		errs = append(errs, errors.New("default_description is required"))
	}
	if table.DefaultUpset == "" {
		errs = append(errs, errors.New("default_upset_analysis is required"))
	}
	for seed := range table.SeedWinRates {
		if seed <= 0 {
			errs = append(errs, fmt.Errorf("seed_win_rates: invalid seed %d", seed))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return models.CommentaryTable{}, fmt.Errorf("parse commentary: %w", err)
	}
	return table, nil
}
