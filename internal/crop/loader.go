package crop

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/validation"
)

type catalogFile struct {
	Version string                  `json:"version"`
	Crops   []domain.CropDefinition `json:"crops"`
}

// LoadRegistry reads a JSON catalog override, validating it before use.
// An empty path returns the built-in catalog.
func LoadRegistry(path string, v validation.SchemaValidator) (*Registry, error) {
	if path == "" {
		slog.Default().Debug(LogMsgCatalogDefault)
		return DefaultRegistry(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read crop catalog %s: %w", path, err)
	}
	if err := v.ValidateBytes(data, SchemaNameCatalog); err != nil {
		return nil, fmt.Errorf("%w: crop catalog %s: %v", domain.ErrInvalidInput, path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse crop catalog: %w", err)
	}

	r, err := NewRegistry(file.Crops)
	if err != nil {
		return nil, err
	}
	slog.Default().Info(LogMsgCatalogLoaded, "path", path, "crops", len(file.Crops), "version", file.Version)
	return r, nil
}
