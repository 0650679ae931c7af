package domain

import "testing"

// Helper: кладет предмет в инвентарь и слот игрока
func giveAndEquip(p *PlayerState, tpl ItemTemplate, slot int) {
	p.Inventory[tpl.ID] = &OwnedItem{Template: tpl, Quantity: 1, IsEquipped: true}
	p.SetEquipmentSlot(slot, tpl.ID)
}

func TestComputeDerivedStats_Unarmed(t *testing.T) {
	p := newTestPlayer()

	d := ComputeDerivedStats(p)

	if d.Attack != 0 {
		t.Errorf("Unarmed attack must be 0, got %d", d.Attack)
	}
	if d.Defense != 0 {
		t.Errorf("Naked defense must be 0, got %d", d.Defense)
	}
	// critRate = 5 + 5*0.1 = 5.5 -> 6 (округление до ближайшего)
	if d.CritRate != 6 {
		t.Errorf("CritRate = %d, want 6", d.CritRate)
	}
	// dodge = 2*5 + 5 = 15, hit = 2*5 + 5 = 15
	if d.Dodge != 15 || d.Hit != 15 {
		t.Errorf("Dodge/Hit = %d/%d, want 15/15", d.Dodge, d.Hit)
	}
	// cdr = 0.5*5 = 2.5 -> 3 (math.Round: до ближайшего, от нуля)
	if d.CooldownReduction != 3 {
		t.Errorf("CooldownReduction = %d, want 3", d.CooldownReduction)
	}
}

func TestComputeDerivedStats_WeaponAverage(t *testing.T) {
	p := newTestPlayer()
	p.Str = 10
	p.Dex = 20

	// Меч качается от силы: 30 + 0.5*10 = 35
	giveAndEquip(p, ItemTemplate{ID: "sword-1", Type: WeaponTypeSword, Category: ItemCategoryWeapon, Dmg: 30}, SlotWeapon1)
	// Лук качается от ловкости: 10 + 0.5*20 = 20
	giveAndEquip(p, ItemTemplate{ID: "bow-1", Type: WeaponTypeBow, Category: ItemCategoryWeapon, Dmg: 10}, SlotWeapon2)

	d := ComputeDerivedStats(p)

	// Атака - среднее по непустым слотам: (35 + 20) / 2 = 27.5 -> 28
	if d.Attack != 28 {
		t.Errorf("Attack = %d, want 28", d.Attack)
	}
}

func TestComputeDerivedStats_ArmorDefense(t *testing.T) {
	p := newTestPlayer()

	giveAndEquip(p, ItemTemplate{ID: "helm", Category: ItemCategoryHead, Def: 3}, SlotHead)
	giveAndEquip(p, ItemTemplate{ID: "mail", Category: ItemCategoryBody, Def: 7}, SlotBody)
	giveAndEquip(p, ItemTemplate{ID: "greaves", Category: ItemCategoryLegs, Def: 4}, SlotLegs)

	d := ComputeDerivedStats(p)

	if d.Defense != 14 {
		t.Errorf("Defense = %d, want 14", d.Defense)
	}
}

func TestComputeDerivedStats_EquipmentBonuses(t *testing.T) {
	p := newTestPlayer()

	giveAndEquip(p, ItemTemplate{
		ID: "lucky-charm", Category: ItemCategoryHead,
		Stats: StatBonuses{Luk: 10, Agi: 5, Dex: 3, Int: 2},
	}, SlotHead)

	d := ComputeDerivedStats(p)

	// critRate = 5 + (5+10)*0.1 = 6.5 -> 7 (math.Round: 6.5 -> 7)
	if d.CritRate != 7 {
		t.Errorf("CritRate = %d, want 7", d.CritRate)
	}
	// dodge = 2*(5+5) + (5+10) = 35
	if d.Dodge != 35 {
		t.Errorf("Dodge = %d, want 35", d.Dodge)
	}
	// hit = 2*(5+3) + (5+10) = 31
	if d.Hit != 31 {
		t.Errorf("Hit = %d, want 31", d.Hit)
	}
	// cdr = 0.5*(5+2) = 3.5 -> 4
	if d.CooldownReduction != 4 {
		t.Errorf("CooldownReduction = %d, want 4", d.CooldownReduction)
	}
}

func TestComputeDerivedStats_CritRateCap(t *testing.T) {
	p := newTestPlayer()
	p.Luk = 10000

	d := ComputeDerivedStats(p)

	if d.CritRate != int(MaxCritRate) {
		t.Errorf("CritRate = %d, want capped %d", d.CritRate, int(MaxCritRate))
	}
}

func TestRecalculate_ClampsPools(t *testing.T) {
	p := newTestPlayer()
	p.HP = p.MaxHP
	p.MP = p.MaxMP

	// Снижение силы и интеллекта снижает потолки - текущие значения обрезаются
	p.Str = MinAttribute
	p.Int = MinAttribute
	p.HP = 99999
	p.MP = 99999
	p.Recalculate()

	if p.HP != p.MaxHP {
		t.Errorf("HP not clamped: %d > %d", p.HP, p.MaxHP)
	}
	if p.MP != p.MaxMP {
		t.Errorf("MP not clamped: %d > %d", p.MP, p.MaxMP)
	}
}
