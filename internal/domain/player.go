package domain

// PlayerState - авторитетное живое состояние одного подключенного игрока.
// Владелец - цикл группы сессий; все мутации происходят строго в нем,
// поэтому структура не нуждается в блокировках.
type PlayerState struct {
	// Идентификация
	PlayerID string // стабильный ID, совпадает с записью в хранилище
	ConnID   string // ID соединения, живет до дисконнекта
	Username string

	// Прогрессия
	Level      int
	Exp        int
	StatPoints int

	// Валюты (мутируются вне этого сервиса, но живут в записи)
	Gold    int
	Diamond int

	// Базовые атрибуты. Инвариант: каждый >= MinAttribute.
	Str int
	Int int
	Agi int
	Dex int
	Luk int

	// Пулы ресурсов. Максимумы производные, текущие значения
	// обрезаются по максимуму при каждом пересчете.
	HP    int
	MaxHP int
	MP    int
	MaxMP int

	// Слоты. Пустая строка = слот свободен.
	Equipment [EquipmentSlotCount]string
	Spells    [SpellSlotCount]string

	// Все, чем игрок владеет. Ключ - ID шаблона.
	Inventory   map[string]*OwnedItem
	KnownSpells map[string]*KnownSpell

	// Производные статы. Никогда не мутируются напрямую,
	// только пересчитываются целиком.
	Derived DerivedStats
}

// GetEquipmentSlot возвращает ID предмета в слоте ("" если пусто или слот вне диапазона).
func (p *PlayerState) GetEquipmentSlot(slot int) string {
	if slot < 0 || slot >= EquipmentSlotCount {
		return ""
	}
	return p.Equipment[slot]
}

// SetEquipmentSlot записывает ID предмета в слот. Слоты вне диапазона игнорируются.
func (p *PlayerState) SetEquipmentSlot(slot int, itemID string) {
	if slot < 0 || slot >= EquipmentSlotCount {
		return
	}
	p.Equipment[slot] = itemID
}

// GetSpellSlot возвращает ID заклинания в слоте.
func (p *PlayerState) GetSpellSlot(slot int) string {
	if slot < 0 || slot >= SpellSlotCount {
		return ""
	}
	return p.Spells[slot]
}

// SetSpellSlot записывает ID заклинания в слот.
func (p *PlayerState) SetSpellSlot(slot int, spellID string) {
	if slot < 0 || slot >= SpellSlotCount {
		return
	}
	p.Spells[slot] = spellID
}

// FindEquippedSlot возвращает слот, который занимает предмет, или -1.
// Нужен для инварианта "один предмет - максимум один слот".
func (p *PlayerState) FindEquippedSlot(itemID string) int {
	if itemID == "" {
		return -1
	}
	for slot, id := range p.Equipment {
		if id == itemID {
			return slot
		}
	}
	return -1
}

// FindSpellSlot возвращает слот, который занимает заклинание, или -1.
func (p *PlayerState) FindSpellSlot(spellID string) int {
	if spellID == "" {
		return -1
	}
	for slot, id := range p.Spells {
		if id == spellID {
			return slot
		}
	}
	return -1
}

// Attribute возвращает значение базового атрибута по имени (str/int/agi/dex/luk).
// Второе значение false, если имя неизвестно.
func (p *PlayerState) Attribute(statType string) (int, bool) {
	switch statType {
	case "str":
		return p.Str, true
	case "int":
		return p.Int, true
	case "agi":
		return p.Agi, true
	case "dex":
		return p.Dex, true
	case "luk":
		return p.Luk, true
	}
	return 0, false
}

// AddAttribute сдвигает базовый атрибут на delta. false, если имя неизвестно.
func (p *PlayerState) AddAttribute(statType string, delta int) bool {
	switch statType {
	case "str":
		p.Str += delta
	case "int":
		p.Int += delta
	case "agi":
		p.Agi += delta
	case "dex":
		p.Dex += delta
	case "luk":
		p.Luk += delta
	default:
		return false
	}
	return true
}

// AllocatedPoints возвращает сумму очков, вложенных сверх минимума.
func (p *PlayerState) AllocatedPoints() int {
	return (p.Str - MinAttribute) +
		(p.Int - MinAttribute) +
		(p.Agi - MinAttribute) +
		(p.Dex - MinAttribute) +
		(p.Luk - MinAttribute)
}

// EquippedItems возвращает шаблоны предметов по слотам (nil для пустых).
// Вход Derived Stats Engine.
func (p *PlayerState) EquippedItems() [EquipmentSlotCount]*ItemTemplate {
	var out [EquipmentSlotCount]*ItemTemplate
	for slot, id := range p.Equipment {
		if id == "" {
			continue
		}
		if owned, ok := p.Inventory[id]; ok {
			out[slot] = &owned.Template
		}
	}
	return out
}

// Clone делает глубокую копию состояния. Чекпоинтер снимает копию
// внутри цикла группы и сохраняет её в фоне, не держа цикл на диске.
func (p *PlayerState) Clone() *PlayerState {
	c := *p
	c.Inventory = make(map[string]*OwnedItem, len(p.Inventory))
	for id, owned := range p.Inventory {
		cp := *owned
		c.Inventory[id] = &cp
	}
	c.KnownSpells = make(map[string]*KnownSpell, len(p.KnownSpells))
	for id, known := range p.KnownSpells {
		cp := *known
		c.KnownSpells[id] = &cp
	}
	return &c
}

// Recalculate пересчитывает производные статы и максимумы пулов,
// обрезая текущие hp/mp по новым потолкам. Вызывается после КАЖДОЙ
// мутации атрибутов, уровня или экипировки - кэширования нет.
func (p *PlayerState) Recalculate() {
	p.MaxHP = BaseMaxHP + p.Str*HPPerStrength + p.Level*HPPerLevel
	p.MaxMP = BaseMaxMP + p.Int*MPPerInt + p.Level*MPPerLevel
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	if p.MP > p.MaxMP {
		p.MP = p.MaxMP
	}
	p.Derived = ComputeDerivedStats(p)
}
