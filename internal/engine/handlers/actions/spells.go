package actions

import (
	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/internal/engine/handlers"
	"github.com/danielldt/unisonLegends.50/internal/systems"
	"github.com/danielldt/unisonLegends.50/pkg/api"
	"github.com/danielldt/unisonLegends.50/pkg/logger"
)

// HandleUpdateSpells ставит изученное заклинание в активный слот.
func HandleUpdateSpells(ctx handlers.Context, p api.SpellPayload) (handlers.Result, error) {
	player := ctx.Player

	if err := systems.TryEquipSpell(player, p.SpellID, p.Slot); err != nil {
		return handlers.EmptyResult(), err
	}

	if err := ctx.Store.SaveSpellSlot(ctx.Ctx, player.PlayerID, p.Slot, p.SpellID); err != nil {
		logger.WithComponent("engine").WithError(err).
			WithField("player_id", player.PlayerID).
			Warn("Не удалось зафиксировать слот заклинания")
	}

	return handlers.Result{
		Events: []api.ServerEvent{
			api.Event(domain.EventSpellsUpdated, api.SpellsUpdatedData{
				Slot:         p.Slot,
				SpellID:      p.SpellID,
				ActiveSpells: BuildSpellsView(player),
			}),
		},
	}, nil
}

// HandleUnequipSpell снимает заклинание. Слот обязан содержать именно его.
func HandleUnequipSpell(ctx handlers.Context, p api.SpellPayload) (handlers.Result, error) {
	player := ctx.Player

	if err := systems.TryUnequipSpell(player, p.SpellID, p.Slot); err != nil {
		return handlers.EmptyResult(), err
	}

	if p.SpellID != "" {
		if err := ctx.Store.SaveSpellSlot(ctx.Ctx, player.PlayerID, p.Slot, ""); err != nil {
			logger.WithComponent("engine").WithError(err).
				WithField("player_id", player.PlayerID).
				Warn("Не удалось зафиксировать слот заклинания")
		}
	}

	return handlers.Result{
		Events: []api.ServerEvent{
			api.Event(domain.EventSpellsUpdated, api.SpellsUpdatedData{
				Slot:         p.Slot,
				SpellID:      "",
				ActiveSpells: BuildSpellsView(player),
			}),
		},
	}, nil
}
