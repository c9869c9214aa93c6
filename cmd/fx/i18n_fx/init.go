package i18n_fx

import (
	"go.uber.org/fx"
	"tiew/internal/services"
)

var Module = fx.Provide(services.NewLocaleFactory)
