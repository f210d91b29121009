package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Apiary_Go/internal/config"
	"github.com/osse101/Apiary_Go/internal/crop"
	"github.com/osse101/Apiary_Go/internal/validation"
)

// LoadCatalog reads the crop catalog override, when configured, and the tuning file
func LoadCatalog(cfg *config.Config) (*crop.Registry, config.Tuning, error) {
	registry, err := crop.LoadRegistry(cfg.CatalogPath, validation.NewSchemaValidator())
	if err != nil {
		return nil, config.Tuning{}, fmt.Errorf("%s: %w", ErrMsgFailedCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "path", cfg.CatalogPath, "crops", len(registry.IDs()))

	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return nil, config.Tuning{}, fmt.Errorf("%s: %w", ErrMsgFailedTuning, err)
	}
	slog.Info(LogMsgTuningLoaded, "path", cfg.TuningPath)

	return registry, tuning, nil
}
