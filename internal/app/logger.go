package app

import (
	"fmt"

	"freshbit/internal/config"

	"go.uber.org/zap"
)

// NewLogger JSON di production, console berwarna di luar itu.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.App.IsProduction() {
		zc = zap.NewProductionConfig()
	}
	if cfg.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
		}
		zc.Level = level
	}
	return zc.Build()
}
