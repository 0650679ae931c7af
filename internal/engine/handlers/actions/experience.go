package actions

import (
	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/internal/engine/handlers"
	"github.com/danielldt/unisonLegends.50/internal/systems"
	"github.com/danielldt/unisonLegends.50/pkg/api"
)

// HandleGainExperience начисляет опыт. Если начисление пересекло
// несколько порогов, автор получает отдельное level_up на КАЖДЫЙ
// взятый уровень, группа - по player_leveled_up.
func HandleGainExperience(ctx handlers.Context, p api.ExperiencePayload) (handlers.Result, error) {
	player := ctx.Player

	gained, err := systems.GainExperience(player, p.Amount)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	result := handlers.Result{
		Events: []api.ServerEvent{
			api.Event(domain.EventExperienceGained, api.ExperienceGainedData{
				Amount:          p.Amount,
				TotalExp:        player.Exp,
				ExpForNextLevel: domain.RequiredExp(player.Level),
				HP:              player.HP,
				MaxHP:           player.MaxHP,
				MP:              player.MP,
				MaxMP:           player.MaxMP,
			}),
		},
	}

	for _, level := range gained {
		result.Events = append(result.Events,
			api.Event(domain.EventLevelUp, api.LevelUpData{
				NewLevel:   level,
				StatPoints: player.StatPoints,
				Stats:      BuildStatBlock(player),
			}))
		result.Broadcasts = append(result.Broadcasts,
			api.Event(domain.EventPlayerLeveledUp, api.PlayerLeveledUpData{
				PlayerID: player.PlayerID,
				Username: player.Username,
				NewLevel: level,
			}))
	}

	return result, nil
}
