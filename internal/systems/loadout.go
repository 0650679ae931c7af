package systems

import (
	"github.com/danielldt/unisonLegends.50/internal/domain"
)

// --- EQUIP ---

// TryEquipItem надевает предмет из инвентаря в указанный слот.
// Предмет экипирован максимум в одном слоте: если он уже надет в
// другом месте - старый слот освобождается (перенос, а не дубликат).
// Прежний обитатель целевого слота вытесняется обратно в инвентарь.
func TryEquipItem(p *domain.PlayerState, itemID string, slot int) error {
	owned, ok := p.Inventory[itemID]
	if !ok {
		return domain.Invalid("Item not found in inventory")
	}
	if !domain.SlotAcceptsCategory(slot, owned.Template.Category) {
		return domain.Invalid("Item cannot be equipped in that slot")
	}

	// Перенос: предмет уже надет где-то еще
	if prev := p.FindEquippedSlot(itemID); prev >= 0 && prev != slot {
		p.SetEquipmentSlot(prev, "")
	}

	// Вытеснение прежнего обитателя
	if evictedID := p.GetEquipmentSlot(slot); evictedID != "" && evictedID != itemID {
		if evicted, ok := p.Inventory[evictedID]; ok {
			evicted.IsEquipped = false
		}
	}

	p.SetEquipmentSlot(slot, itemID)
	owned.IsEquipped = true
	p.Recalculate()
	return nil
}

// --- UNEQUIP ---

// TryUnequipItem снимает предмет из слота. Слот обязан содержать
// именно этот предмет, иначе отказ.
func TryUnequipItem(p *domain.PlayerState, itemID string, slot int) error {
	if p.GetEquipmentSlot(slot) != itemID {
		return domain.Invalid("Item is not equipped in the specified slot")
	}

	p.SetEquipmentSlot(slot, "")
	if owned, ok := p.Inventory[itemID]; ok {
		owned.IsEquipped = false
	}
	p.Recalculate()
	return nil
}

// --- SPELLS ---

// TryEquipSpell ставит изученное заклинание в активный слот.
// Та же дисциплина, что и у экипировки: один экземпляр в один слот.
func TryEquipSpell(p *domain.PlayerState, spellID string, slot int) error {
	if spellID == "" {
		return domain.Invalid("spellId is required")
	}
	known, ok := p.KnownSpells[spellID]
	if !ok {
		return domain.Invalid("Spell not found")
	}

	if prev := p.FindSpellSlot(spellID); prev >= 0 && prev != slot {
		p.SetSpellSlot(prev, "")
	}

	if evictedID := p.GetSpellSlot(slot); evictedID != "" && evictedID != spellID {
		if evicted, ok := p.KnownSpells[evictedID]; ok {
			evicted.IsEquipped = false
		}
	}

	p.SetSpellSlot(slot, spellID)
	known.IsEquipped = true
	return nil
}

// TryUnequipSpell снимает заклинание из слота. Слот обязан содержать
// именно это заклинание, иначе отказ - та же дисциплина, что и у
// TryUnequipItem.
func TryUnequipSpell(p *domain.PlayerState, spellID string, slot int) error {
	if slot < 0 || slot >= domain.SpellSlotCount {
		return domain.Invalid("Invalid spell slot")
	}
	if p.GetSpellSlot(slot) != spellID {
		return domain.Invalid("Spell is not equipped in the specified slot")
	}
	if spellID == "" {
		return nil // пустой слот и пустая ссылка - no-op
	}

	p.SetSpellSlot(slot, "")
	if known, ok := p.KnownSpells[spellID]; ok {
		known.IsEquipped = false
	}
	return nil
}
