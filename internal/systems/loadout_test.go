package systems

import (
	"testing"

	"github.com/danielldt/unisonLegends.50/internal/domain"
)

func newLoadoutPlayer() *domain.PlayerState {
	p := &domain.PlayerState{
		PlayerID:    "p1",
		Username:    "tester",
		Level:       1,
		Str:         domain.MinAttribute,
		Int:         domain.MinAttribute,
		Agi:         domain.MinAttribute,
		Dex:         domain.MinAttribute,
		Luk:         domain.MinAttribute,
		Inventory:   make(map[string]*domain.OwnedItem),
		KnownSpells: make(map[string]*domain.KnownSpell),
	}
	p.Recalculate()
	p.HP = p.MaxHP
	p.MP = p.MaxMP
	return p
}

func giveItem(p *domain.PlayerState, id, category string) {
	p.Inventory[id] = &domain.OwnedItem{
		Template: domain.ItemTemplate{ID: id, Name: id, Category: category, Type: domain.WeaponTypeSword},
		Quantity: 1,
	}
}

func giveSpell(p *domain.PlayerState, id string) {
	p.KnownSpells[id] = &domain.KnownSpell{
		Template: domain.SpellTemplate{ID: id, Name: id},
		Level:    1,
	}
}

func TestTryEquipItem(t *testing.T) {
	p := newLoadoutPlayer()
	giveItem(p, "sword-1", domain.ItemCategoryWeapon)

	if err := TryEquipItem(p, "sword-1", domain.SlotWeapon1); err != nil {
		t.Fatalf("Equip failed: %v", err)
	}
	if p.GetEquipmentSlot(domain.SlotWeapon1) != "sword-1" {
		t.Error("Slot not occupied after equip")
	}
	if !p.Inventory["sword-1"].IsEquipped {
		t.Error("Item not marked as equipped")
	}
}

func TestTryEquipItem_NotOwned(t *testing.T) {
	p := newLoadoutPlayer()

	err := TryEquipItem(p, "ghost", domain.SlotWeapon1)
	if err == nil {
		t.Fatal("Expected error for unowned item")
	}
	if !domain.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestTryEquipItem_CategoryMismatch(t *testing.T) {
	p := newLoadoutPlayer()
	giveItem(p, "helm-1", domain.ItemCategoryHead)

	if err := TryEquipItem(p, "helm-1", domain.SlotWeapon1); err == nil {
		t.Error("Head item must not fit a weapon slot")
	}
	if err := TryEquipItem(p, "helm-1", domain.SlotBody); err == nil {
		t.Error("Head item must not fit the body slot")
	}
	if err := TryEquipItem(p, "helm-1", domain.SlotHead); err != nil {
		t.Errorf("Head item must fit the head slot: %v", err)
	}
}

// Один предмет - максимум один слот: повторный equip в другой слот
// это перенос, старый слот освобождается.
func TestTryEquipItem_MoveBetweenSlots(t *testing.T) {
	p := newLoadoutPlayer()
	giveItem(p, "sword-1", domain.ItemCategoryWeapon)

	if err := TryEquipItem(p, "sword-1", domain.SlotWeapon1); err != nil {
		t.Fatal(err)
	}
	if err := TryEquipItem(p, "sword-1", domain.SlotWeapon3); err != nil {
		t.Fatal(err)
	}

	if p.GetEquipmentSlot(domain.SlotWeapon1) != "" {
		t.Error("Old slot not freed on move")
	}
	if p.GetEquipmentSlot(domain.SlotWeapon3) != "sword-1" {
		t.Error("New slot not occupied on move")
	}
}

func TestTryEquipItem_EvictsOccupant(t *testing.T) {
	p := newLoadoutPlayer()
	giveItem(p, "sword-1", domain.ItemCategoryWeapon)
	giveItem(p, "sword-2", domain.ItemCategoryWeapon)

	if err := TryEquipItem(p, "sword-1", domain.SlotWeapon1); err != nil {
		t.Fatal(err)
	}
	if err := TryEquipItem(p, "sword-2", domain.SlotWeapon1); err != nil {
		t.Fatal(err)
	}

	if p.GetEquipmentSlot(domain.SlotWeapon1) != "sword-2" {
		t.Error("Occupant not replaced")
	}
	if p.Inventory["sword-1"].IsEquipped {
		t.Error("Evicted item still marked as equipped")
	}
}

func TestTryUnequipItem(t *testing.T) {
	p := newLoadoutPlayer()
	giveItem(p, "sword-1", domain.ItemCategoryWeapon)
	if err := TryEquipItem(p, "sword-1", domain.SlotWeapon1); err != nil {
		t.Fatal(err)
	}

	if err := TryUnequipItem(p, "sword-1", domain.SlotWeapon1); err != nil {
		t.Fatalf("Unequip failed: %v", err)
	}
	if p.GetEquipmentSlot(domain.SlotWeapon1) != "" {
		t.Error("Slot not freed after unequip")
	}
	if p.Inventory["sword-1"].IsEquipped {
		t.Error("Item still marked as equipped")
	}
}

func TestTryUnequipItem_WrongSlot(t *testing.T) {
	p := newLoadoutPlayer()
	giveItem(p, "sword-1", domain.ItemCategoryWeapon)
	if err := TryEquipItem(p, "sword-1", domain.SlotWeapon1); err != nil {
		t.Fatal(err)
	}

	err := TryUnequipItem(p, "sword-1", domain.SlotWeapon2)
	if err == nil {
		t.Fatal("Expected error for wrong slot")
	}
	if err.Error() != "Item is not equipped in the specified slot" {
		t.Errorf("Unexpected reason: %q", err.Error())
	}
	if p.GetEquipmentSlot(domain.SlotWeapon1) != "sword-1" {
		t.Error("Item must stay equipped after failed unequip")
	}
}

func TestTryEquipItem_AffectsDerivedStats(t *testing.T) {
	p := newLoadoutPlayer()
	p.Inventory["sword-1"] = &domain.OwnedItem{
		Template: domain.ItemTemplate{
			ID: "sword-1", Type: domain.WeaponTypeSword,
			Category: domain.ItemCategoryWeapon, Dmg: 30,
		},
		Quantity: 1,
	}

	if err := TryEquipItem(p, "sword-1", domain.SlotWeapon1); err != nil {
		t.Fatal(err)
	}
	// 30 + 0.5*5 = 32.5 -> 33 (единственный занятый слот оружия)
	if p.Derived.Attack != 33 {
		t.Errorf("Attack = %d, want 33", p.Derived.Attack)
	}

	if err := TryUnequipItem(p, "sword-1", domain.SlotWeapon1); err != nil {
		t.Fatal(err)
	}
	if p.Derived.Attack != 0 {
		t.Errorf("Attack after unequip = %d, want 0", p.Derived.Attack)
	}
}

func TestTryEquipSpell(t *testing.T) {
	p := newLoadoutPlayer()
	giveSpell(p, "fireball")

	if err := TryEquipSpell(p, "fireball", 0); err != nil {
		t.Fatalf("Equip spell failed: %v", err)
	}
	if p.GetSpellSlot(0) != "fireball" {
		t.Error("Spell slot not occupied")
	}
	if !p.KnownSpells["fireball"].IsEquipped {
		t.Error("Spell not marked as equipped")
	}
}

func TestTryEquipSpell_Unknown(t *testing.T) {
	p := newLoadoutPlayer()

	if err := TryEquipSpell(p, "ghost", 0); err == nil {
		t.Error("Expected error for unknown spell")
	}
}

func TestTryEquipSpell_MoveBetweenSlots(t *testing.T) {
	p := newLoadoutPlayer()
	giveSpell(p, "fireball")

	if err := TryEquipSpell(p, "fireball", 0); err != nil {
		t.Fatal(err)
	}
	if err := TryEquipSpell(p, "fireball", 3); err != nil {
		t.Fatal(err)
	}

	if p.GetSpellSlot(0) != "" {
		t.Error("Old spell slot not freed on move")
	}
	if p.GetSpellSlot(3) != "fireball" {
		t.Error("New spell slot not occupied")
	}
}

func TestTryUnequipSpell(t *testing.T) {
	p := newLoadoutPlayer()
	giveSpell(p, "fireball")
	if err := TryEquipSpell(p, "fireball", 2); err != nil {
		t.Fatal(err)
	}

	if err := TryUnequipSpell(p, "fireball", 2); err != nil {
		t.Fatalf("Unequip spell failed: %v", err)
	}
	if p.GetSpellSlot(2) != "" {
		t.Error("Spell slot not freed after unequip")
	}
	if p.KnownSpells["fireball"].IsEquipped {
		t.Error("Spell still marked as equipped")
	}
}

// Слот обязан содержать именно указанное заклинание, иначе отказ
// и слот остается нетронутым.
func TestTryUnequipSpell_WrongSpell(t *testing.T) {
	p := newLoadoutPlayer()
	giveSpell(p, "icebolt")
	if err := TryEquipSpell(p, "icebolt", 0); err != nil {
		t.Fatal(err)
	}

	err := TryUnequipSpell(p, "fireball", 0)
	if err == nil {
		t.Fatal("Expected error for mismatched spell reference")
	}
	if err.Error() != "Spell is not equipped in the specified slot" {
		t.Errorf("Unexpected reason: %q", err.Error())
	}
	if p.GetSpellSlot(0) != "icebolt" {
		t.Error("Spell must stay equipped after failed unequip")
	}
	if !p.KnownSpells["icebolt"].IsEquipped {
		t.Error("Spell must stay marked as equipped")
	}
}

// Пустая ссылка на пустой слот - no-op, а не ошибка.
func TestTryUnequipSpell_EmptySlot(t *testing.T) {
	p := newLoadoutPlayer()

	if err := TryUnequipSpell(p, "", 0); err != nil {
		t.Errorf("Empty slot must not be an error: %v", err)
	}

	err := TryUnequipSpell(p, "fireball", 0)
	if err == nil {
		t.Error("Reference to an empty slot must be rejected")
	}
}
