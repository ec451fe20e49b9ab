package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Loader supplies the catalogue reference data.
type Loader interface {
	Load(ctx context.Context) ([]Product, error)
}

// FileLoader reads the catalogue from a JSON file on every call so edits to
// the file show up without a restart. Put a Cache in front when that gets
// too expensive.
type FileLoader struct {
	Path string
}

// Load parses the product file.
func (l FileLoader) Load(_ context.Context) ([]Product, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return products, nil
}
