package domain

// StatBonuses - вектор бонусов к атрибутам от предмета.
type StatBonuses struct {
	Str int `json:"str,omitempty"`
	Int int `json:"int,omitempty"`
	Agi int `json:"agi,omitempty"`
	Dex int `json:"dex,omitempty"`
	Luk int `json:"luk,omitempty"`
}

// ItemTemplate - статическое описание предмета из каталога.
// Сессия не меняет шаблоны, только ссылается на них.
type ItemTemplate struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`     // sword, shield, dagger, bow, staff, orb, ...
	Category string      `json:"category"` // weapon, head, body, legs, ...
	Rarity   string      `json:"rarity"`
	Dmg      int         `json:"dmg"`
	Def      int         `json:"def"`
	Stats    StatBonuses `json:"stats"`
}

// SpellTemplate - статическое описание заклинания.
type SpellTemplate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Element  string `json:"element"`
	Power    int    `json:"power"`
	Cooldown int    `json:"cooldown"`
	MpCost   int    `json:"mpCost"`
}

// OwnedItem - предмет в инвентаре игрока.
// Шаблон загружается вместе с записью игрока (явный join на границе загрузки).
type OwnedItem struct {
	Template   ItemTemplate `json:"item"`
	Quantity   int          `json:"quantity"`
	IsEquipped bool         `json:"isEquipped"`
}

// KnownSpell - изученное игроком заклинание.
type KnownSpell struct {
	Template   SpellTemplate `json:"spell"`
	Level      int           `json:"level"`
	IsEquipped bool          `json:"isEquipped"`
}

// WeaponAttribute возвращает атрибут, усиливающий оружие данного типа.
// Тяжелое оружие и щиты качаются от силы, легкое и стрелковое - от
// ловкости, магические проводники - от интеллекта.
func WeaponAttribute(weaponType string) string {
	switch weaponType {
	case WeaponTypeSword, WeaponTypeShield:
		return "str"
	case WeaponTypeDagger, WeaponTypeBow:
		return "dex"
	case WeaponTypeStaff, WeaponTypeOrb:
		return "int"
	default:
		return ""
	}
}

// SlotAcceptsCategory проверяет, можно ли положить предмет данной
// категории в данный слот. Слоты 0-4 принимают только оружие,
// броня идет строго в свой слот.
func SlotAcceptsCategory(slot int, category string) bool {
	switch {
	case slot >= SlotWeapon1 && slot <= SlotWeapon5:
		return category == ItemCategoryWeapon
	case slot == SlotHead:
		return category == ItemCategoryHead
	case slot == SlotBody:
		return category == ItemCategoryBody
	case slot == SlotLegs:
		return category == ItemCategoryLegs
	default:
		return false
	}
}
