package actions

import (
	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/internal/engine/handlers"
	"github.com/danielldt/unisonLegends.50/internal/systems"
	"github.com/danielldt/unisonLegends.50/pkg/api"
)

// HandleAllocateStat тратит свободное очко на атрибут.
func HandleAllocateStat(ctx handlers.Context, p api.StatPayload) (handlers.Result, error) {
	player := ctx.Player

	newValue, err := systems.TryAllocateStat(player, p.StatType)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.Result{
		Events: []api.ServerEvent{
			api.Event(domain.EventStatAllocated, api.StatPointData{
				StatType:        p.StatType,
				NewValue:        newValue,
				RemainingPoints: player.StatPoints,
			}),
		},
		Broadcasts: []api.ServerEvent{
			api.Event(domain.EventPlayerUpdated, api.PlayerUpdatedData{
				PlayerID: player.PlayerID,
				Stats:    BuildStatBlock(player),
			}),
		},
	}, nil
}

// HandleDecreaseStat возвращает очко из атрибута обратно в пул.
func HandleDecreaseStat(ctx handlers.Context, p api.StatPayload) (handlers.Result, error) {
	player := ctx.Player

	newValue, err := systems.TryDecreaseStat(player, p.StatType)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.Result{
		Events: []api.ServerEvent{
			api.Event(domain.EventStatDecreased, api.StatPointData{
				StatType:        p.StatType,
				NewValue:        newValue,
				RemainingPoints: player.StatPoints,
			}),
		},
		Broadcasts: []api.ServerEvent{
			api.Event(domain.EventPlayerUpdated, api.PlayerUpdatedData{
				PlayerID: player.PlayerID,
				Stats:    BuildStatBlock(player),
			}),
		},
	}, nil
}

// HandleResetStats сбрасывает атрибуты к минимуму с полным возвратом очков.
func HandleResetStats(ctx handlers.Context) (handlers.Result, error) {
	player := ctx.Player

	systems.ResetStats(player)

	return handlers.Result{
		Events: []api.ServerEvent{
			api.Event(domain.EventStatsReset, api.StatsResetData{
				Stats:           BuildStatBlock(player),
				RemainingPoints: player.StatPoints,
			}),
		},
		Broadcasts: []api.ServerEvent{
			api.Event(domain.EventPlayerUpdated, api.PlayerUpdatedData{
				PlayerID: player.PlayerID,
				Stats:    BuildStatBlock(player),
			}),
		},
	}, nil
}
