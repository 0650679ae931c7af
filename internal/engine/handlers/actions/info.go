package actions

import (
	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/internal/engine/handlers"
	"github.com/danielldt/unisonLegends.50/pkg/api"
)

// HandleGetPlayerInfo возвращает полный снапшот автору команды.
func HandleGetPlayerInfo(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Events: []api.ServerEvent{
			api.Event(domain.EventPlayerDetails, BuildPlayerDetails(ctx.Player)),
		},
	}, nil
}
