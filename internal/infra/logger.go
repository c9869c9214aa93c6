package infra

import (
	"go.uber.org/zap"
	"tiew/internal/config"
)

// NewLogger builds the process logger. DEBUG switches to the development encoder
// and enables debug level, which also turns on upstream payload logging.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
