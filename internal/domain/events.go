package domain

// Имена исходящих событий. Стабильный проводной контракт -
// клиент подписывается на эти строки.
const (
	EventPlayerDetails    = "player_details"
	EventEquipmentUpdated = "equipment_updated"
	EventSpellsUpdated    = "spells_updated"
	EventStatAllocated    = "stat_point_allocated"
	EventStatDecreased    = "stat_point_decreased"
	EventStatsReset       = "stats_reset"
	EventExperienceGained = "experience_gained"
	EventLevelUp          = "level_up"

	EventEquipItemFailed      = "equip_item_failed"
	EventUnequipItemFailed    = "unequip_item_failed"
	EventUpdateSpellsFailed   = "update_spells_failed"
	EventUnequipSpellFailed   = "unequip_spell_failed"
	EventStatAllocationFailed = "stat_point_allocation_failed"
	EventStatDecreaseFailed   = "stat_point_decrease_failed"
	EventGainExperienceFailed = "gain_experience_failed"

	// Групповые рассылки (всем остальным в группе)
	EventPlayerJoined    = "player_joined"
	EventPlayerLeft      = "player_left"
	EventPlayerUpdated   = "player_updated"
	EventPlayerLeveledUp = "player_leveled_up"

	// Служебное: вход отклонен / старое соединение вытеснено
	EventJoinFailed      = "join_failed"
	EventSessionReplaced = "session_replaced"
)

// FailureEventFor возвращает имя события отказа для команды
// ("" - у команды нет своего события отказа).
func FailureEventFor(a ActionType) string {
	switch a {
	case ActionEquipItem:
		return EventEquipItemFailed
	case ActionUnequipItem:
		return EventUnequipItemFailed
	case ActionUpdateSpells:
		return EventUpdateSpellsFailed
	case ActionUnequipSpell:
		return EventUnequipSpellFailed
	case ActionAllocateStatPoint:
		return EventStatAllocationFailed
	case ActionDecreaseStatPoint:
		return EventStatDecreaseFailed
	case ActionGainExperience:
		return EventGainExperienceFailed
	}
	return ""
}
