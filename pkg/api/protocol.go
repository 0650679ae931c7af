package api

import (
	"encoding/json"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Command имя команды (snake_case, см. domain.ParseAction).
	Command string `json:"command"`

	// Payload JSON-объект с данными для команды. Его структура зависит от Command.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// JoinPayload - первое сообщение после апгрейда соединения.
// До успешной проверки токена никакие другие команды не принимаются.
type JoinPayload struct {
	Token string `json:"token"`
	Group string `json:"group,omitempty"` // ID группы сессий, по умолчанию "main"
}

// ItemPayload используется для equip_item / unequip_item.
type ItemPayload struct {
	ItemID string `json:"itemId"`
	Slot   int    `json:"slot"`
}

// SpellPayload используется для update_spells / unequip_spell.
type SpellPayload struct {
	SpellID string `json:"spellId"`
	Slot    int    `json:"slot"`
}

// StatPayload используется для allocate_stat_point / decrease_stat_point.
type StatPayload struct {
	StatType string `json:"statType"` // str, int, agi, dex, luk
}

// ExperiencePayload используется для gain_experience.
type ExperiencePayload struct {
	Amount int `json:"amount"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerEvent это корневой объект всех исходящих сообщений.
// Type - имя события из проводного контракта, Data - его тело.
type ServerEvent struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Event - шорткат для конструирования исходящего события.
func Event(eventType string, data any) ServerEvent {
	return ServerEvent{Type: eventType, Data: data}
}

// FailureData - тело любого события *_failed.
type FailureData struct {
	Reason string `json:"reason"`
}

// Failure - шорткат для событий отказа.
func Failure(eventType, reason string) ServerEvent {
	return ServerEvent{Type: eventType, Data: FailureData{Reason: reason}}
}

// --- DTO ---

// StatsView - блок характеристик в снапшоте игрока.
type StatsView struct {
	HP         int `json:"hp"`
	MaxHP      int `json:"maxHp"`
	MP         int `json:"mp"`
	MaxMP      int `json:"maxMp"`
	Str        int `json:"str"`
	Int        int `json:"int"`
	Agi        int `json:"agi"`
	Dex        int `json:"dex"`
	Luk        int `json:"luk"`
	StatPoints int `json:"statPoints"`
	MaxExp     int `json:"maxExp"`

	// Производные статы
	Attack            int `json:"attack"`
	Defense           int `json:"defense"`
	CritRate          int `json:"critRate"`
	Dodge             int `json:"dodge"`
	Hit               int `json:"hit"`
	CooldownReduction int `json:"cooldownReduction"`
}

// EquipmentView - полная карта слотов экипировки.
// Пустая строка означает свободный слот.
type EquipmentView struct {
	Weapon1 string `json:"weapon1"`
	Weapon2 string `json:"weapon2"`
	Weapon3 string `json:"weapon3"`
	Weapon4 string `json:"weapon4"`
	Weapon5 string `json:"weapon5"`
	Head    string `json:"head"`
	Body    string `json:"body"`
	Legs    string `json:"legs"`
}

// SpellsView - полная карта слотов активных заклинаний.
type SpellsView struct {
	Spell1 string `json:"spell1"`
	Spell2 string `json:"spell2"`
	Spell3 string `json:"spell3"`
	Spell4 string `json:"spell4"`
	Spell5 string `json:"spell5"`
}

// InventoryItemView - один предмет в инвентаре игрока.
type InventoryItemView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Category   string `json:"category"`
	Rarity     string `json:"rarity"`
	Quantity   int    `json:"quantity"`
	IsEquipped bool   `json:"isEquipped"`
	Dmg        int    `json:"dmg"`
	Def        int    `json:"def"`

	Stats map[string]int `json:"stats,omitempty"`
}

// KnownSpellView - одно изученное заклинание.
type KnownSpellView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Element  string `json:"element"`
	Power    int    `json:"power"`
	Cooldown int    `json:"cooldown"`
	MpCost   int    `json:"mpCost"`
	Level    int    `json:"level"`
}

// PlayerDetails - полный снапшот игрока (событие player_details).
type PlayerDetails struct {
	ID           string              `json:"id"`
	Username     string              `json:"username"`
	Level        int                 `json:"level"`
	Exp          int                 `json:"exp"`
	Gold         int                 `json:"gold"`
	Diamond      int                 `json:"diamond"`
	Stats        StatsView           `json:"stats"`
	Equipment    EquipmentView       `json:"equipment"`
	ActiveSpells SpellsView          `json:"activeSpells"`
	Inventory    []InventoryItemView `json:"inventory"`
	KnownSpells  []KnownSpellView    `json:"knownSpells"`
}

// --- Тела событий ---

// EquipmentUpdatedData - событие equipment_updated.
// Всегда несет полную карту слотов, а не только дельту.
type EquipmentUpdatedData struct {
	Slot      int           `json:"slot"`
	ItemID    string        `json:"itemId"` // "" означает снятый предмет
	Equipment EquipmentView `json:"equipment"`
}

// SpellsUpdatedData - событие spells_updated.
type SpellsUpdatedData struct {
	Slot         int        `json:"slot"`
	SpellID      string     `json:"spellId"`
	ActiveSpells SpellsView `json:"activeSpells"`
}

// StatPointData - события stat_point_allocated / stat_point_decreased.
type StatPointData struct {
	StatType        string `json:"statType"`
	NewValue        int    `json:"newValue"`
	RemainingPoints int    `json:"remainingPoints"`
}

// StatBlock - компактный блок статов для рассылок.
type StatBlock struct {
	Str   int `json:"str"`
	Int   int `json:"int"`
	Agi   int `json:"agi"`
	Dex   int `json:"dex"`
	Luk   int `json:"luk"`
	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	MP    int `json:"mp"`
	MaxMP int `json:"maxMp"`
}

// StatsResetData - событие stats_reset.
type StatsResetData struct {
	Stats           StatBlock `json:"stats"`
	RemainingPoints int       `json:"remainingPoints"`
}

// ExperienceGainedData - событие experience_gained.
type ExperienceGainedData struct {
	Amount          int `json:"amount"`
	TotalExp        int `json:"totalExp"`
	ExpForNextLevel int `json:"expForNextLevel"`
	HP              int `json:"hp"`
	MaxHP           int `json:"maxHp"`
	MP              int `json:"mp"`
	MaxMP           int `json:"maxMp"`
}

// LevelUpData - событие level_up. Отправляется по одному на каждый
// взятый уровень, даже если одно начисление пересекло несколько порогов.
type LevelUpData struct {
	NewLevel   int       `json:"newLevel"`
	StatPoints int       `json:"statPoints"`
	Stats      StatBlock `json:"stats"`
}

// PlayerJoinedData - рассылка player_joined остальным в группе.
type PlayerJoinedData struct {
	PlayerID string `json:"playerId"`
	Username string `json:"username"`
	Level    int    `json:"level"`
}

// PlayerLeftData - рассылка player_left.
type PlayerLeftData struct {
	PlayerID string `json:"playerId"`
}

// PlayerUpdatedData - рассылка player_updated (дельта статов).
type PlayerUpdatedData struct {
	PlayerID string    `json:"playerId"`
	Stats    StatBlock `json:"stats"`
}

// PlayerLeveledUpData - рассылка player_leveled_up.
type PlayerLeveledUpData struct {
	PlayerID string `json:"playerId"`
	Username string `json:"username"`
	NewLevel int    `json:"newLevel"`
}
