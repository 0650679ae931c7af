package actions

import (
	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/internal/engine/handlers"
	"github.com/danielldt/unisonLegends.50/internal/systems"
	"github.com/danielldt/unisonLegends.50/pkg/api"
	"github.com/danielldt/unisonLegends.50/pkg/logger"
)

// HandleEquipItem надевает предмет. Слот фиксируется в хранилище
// немедленно, не дожидаясь чекпоинта: потеря экипировки при падении
// сервера обиднее потери пары очков опыта.
func HandleEquipItem(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	player := ctx.Player

	if err := systems.TryEquipItem(player, p.ItemID, p.Slot); err != nil {
		return handlers.EmptyResult(), err
	}

	if err := ctx.Store.SaveEquipmentSlot(ctx.Ctx, player.PlayerID, p.Slot, p.ItemID); err != nil {
		// Память авторитетна, диск догонит на чекпоинте
		logger.WithComponent("engine").WithError(err).
			WithField("player_id", player.PlayerID).
			Warn("Не удалось зафиксировать слот экипировки")
	}

	return handlers.Result{
		Events: []api.ServerEvent{
			api.Event(domain.EventEquipmentUpdated, api.EquipmentUpdatedData{
				Slot:      p.Slot,
				ItemID:    p.ItemID,
				Equipment: BuildEquipmentView(player),
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

// HandleUnequipItem снимает предмет. Слот обязан содержать именно его.
func HandleUnequipItem(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	player := ctx.Player

	if err := systems.TryUnequipItem(player, p.ItemID, p.Slot); err != nil {
		return handlers.EmptyResult(), err
	}

	if err := ctx.Store.SaveEquipmentSlot(ctx.Ctx, player.PlayerID, p.Slot, ""); err != nil {
		logger.WithComponent("engine").WithError(err).
			WithField("player_id", player.PlayerID).
			Warn("Не удалось зафиксировать слот экипировки")
	}

	return handlers.Result{
		Events: []api.ServerEvent{
			api.Event(domain.EventEquipmentUpdated, api.EquipmentUpdatedData{
				Slot:      p.Slot,
				ItemID:    "",
				Equipment: BuildEquipmentView(player),
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
