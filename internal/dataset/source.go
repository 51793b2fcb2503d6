// Package dataset loads the bracket dataset. The default source is the
// asset embedded at build time; file and Postgres sources serve other
// tournament years.
package dataset

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bracketlab/bracket-stats/internal/models"
)

//go:embed final_bracket.json
var embeddedBracket []byte

// Source produces an unvalidated bracket
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*models.Bracket, error)
}

// Load fetches from src and validates the result. An invalid dataset is
// rejected as a whole.
func Load(ctx context.Context, src Source) (*models.Bracket, error) {
	b, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s dataset: %w", src.Name(), err)
	}
	if err := Validate(b); err != nil {
		return nil, fmt.Errorf("load %s dataset: %w", src.Name(), err)
	}
	return b, nil
}

// Decode parses a bracket document
func Decode(data []byte) (*models.Bracket, error) {
	var b models.Bracket
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode bracket: %w", err)
	}
	return &b, nil
}

// EmbeddedSource reads the dataset compiled into the binary
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Fetch(ctx context.Context) (*models.Bracket, error) {
	return Decode(embeddedBracket)
}

// FileSource reads a bracket document from disk
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file" }

func (s FileSource) Fetch(ctx context.Context) (*models.Bracket, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
