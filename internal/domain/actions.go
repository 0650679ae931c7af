package domain

import "strings"

// ActionType - Внутренний числовой идентификатор команды
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionJoin
	ActionGetPlayerInfo
	ActionEquipItem
	ActionUnequipItem
	ActionUpdateSpells
	ActionUnequipSpell
	ActionAllocateStatPoint
	ActionDecreaseStatPoint
	ActionResetStats
	ActionGainExperience
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"join":                ActionJoin,
	"get_player_info":     ActionGetPlayerInfo,
	"equip_item":          ActionEquipItem,
	"unequip_item":        ActionUnequipItem,
	"update_spells":       ActionUpdateSpells,
	"unequip_spell":       ActionUnequipSpell,
	"allocate_stat_point": ActionAllocateStatPoint,
	"decrease_stat_point": ActionDecreaseStatPoint,
	"reset_stats":         ActionResetStats,
	"gain_experience":     ActionGainExperience,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionJoin:              "join",
	ActionGetPlayerInfo:     "get_player_info",
	ActionEquipItem:         "equip_item",
	ActionUnequipItem:       "unequip_item",
	ActionUpdateSpells:      "update_spells",
	ActionUnequipSpell:      "unequip_spell",
	ActionAllocateStatPoint: "allocate_stat_point",
	ActionDecreaseStatPoint: "decrease_stat_point",
	ActionResetStats:        "reset_stats",
	ActionGainExperience:    "gain_experience",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	lower := strings.ToLower(strings.TrimSpace(s))
	if val, ok := actionStringToCmd[lower]; ok {
		return val
	}
	return ActionUnknown
}

// IsMutating сообщает, меняет ли команда состояние игрока.
// Используется чекпоинтером и журналом команд.
func (a ActionType) IsMutating() bool {
	switch a {
	case ActionEquipItem, ActionUnequipItem, ActionUpdateSpells, ActionUnequipSpell,
		ActionAllocateStatPoint, ActionDecreaseStatPoint, ActionResetStats, ActionGainExperience:
		return true
	}
	return false
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "unknown"
}
