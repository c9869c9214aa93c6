package config_fx

import (
	"go.uber.org/fx"
	"tiew/internal/config"
	"tiew/internal/infra"
)

var Module = fx.Provide(
	config.Load,
	infra.NewLogger)
