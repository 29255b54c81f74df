package logger

import (
	"go.uber.org/zap"

	"github.com/Makepad-fr/flashcards/internal/config"
)

// New builds the application logger. The terminal belongs to the TUI, so
// logs only ever go to cfg.LogFile; without one nothing is logged.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}

	return zc.Build()
}
