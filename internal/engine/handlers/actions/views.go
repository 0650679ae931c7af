package actions

import (
	"sort"

	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/pkg/api"
)

// Конвертация доменного состояния в проводные DTO.
// Снапшоты всегда строятся целиком: клиент не обязан уметь
// накатывать дельты на экипировку.

func BuildEquipmentView(p *domain.PlayerState) api.EquipmentView {
	return api.EquipmentView{
		Weapon1: p.Equipment[domain.SlotWeapon1],
		Weapon2: p.Equipment[domain.SlotWeapon2],
		Weapon3: p.Equipment[domain.SlotWeapon3],
		Weapon4: p.Equipment[domain.SlotWeapon4],
		Weapon5: p.Equipment[domain.SlotWeapon5],
		Head:    p.Equipment[domain.SlotHead],
		Body:    p.Equipment[domain.SlotBody],
		Legs:    p.Equipment[domain.SlotLegs],
	}
}

func BuildSpellsView(p *domain.PlayerState) api.SpellsView {
	return api.SpellsView{
		Spell1: p.Spells[0],
		Spell2: p.Spells[1],
		Spell3: p.Spells[2],
		Spell4: p.Spells[3],
		Spell5: p.Spells[4],
	}
}

func BuildStatBlock(p *domain.PlayerState) api.StatBlock {
	return api.StatBlock{
		Str: p.Str, Int: p.Int, Agi: p.Agi, Dex: p.Dex, Luk: p.Luk,
		HP: p.HP, MaxHP: p.MaxHP, MP: p.MP, MaxMP: p.MaxMP,
	}
}

func BuildStatsView(p *domain.PlayerState) api.StatsView {
	return api.StatsView{
		HP: p.HP, MaxHP: p.MaxHP, MP: p.MP, MaxMP: p.MaxMP,
		Str: p.Str, Int: p.Int, Agi: p.Agi, Dex: p.Dex, Luk: p.Luk,
		StatPoints: p.StatPoints,
		MaxExp:     domain.RequiredExp(p.Level),

		Attack:            p.Derived.Attack,
		Defense:           p.Derived.Defense,
		CritRate:          p.Derived.CritRate,
		Dodge:             p.Derived.Dodge,
		Hit:               p.Derived.Hit,
		CooldownReduction: p.Derived.CooldownReduction,
	}
}

// BuildPlayerDetails собирает полный снапшот для события player_details.
// Инвентарь и заклинания сортируются по ID, чтобы снапшот был
// детерминированным (мапы в Go итерируются в случайном порядке).
func BuildPlayerDetails(p *domain.PlayerState) api.PlayerDetails {
	inventory := make([]api.InventoryItemView, 0, len(p.Inventory))
	for _, owned := range p.Inventory {
		tpl := owned.Template
		view := api.InventoryItemView{
			ID: tpl.ID, Name: tpl.Name, Type: tpl.Type, Category: tpl.Category,
			Rarity: tpl.Rarity, Quantity: owned.Quantity, IsEquipped: owned.IsEquipped,
			Dmg: tpl.Dmg, Def: tpl.Def,
		}
		if tpl.Stats != (domain.StatBonuses{}) {
			view.Stats = map[string]int{}
			addBonus(view.Stats, "str", tpl.Stats.Str)
			addBonus(view.Stats, "int", tpl.Stats.Int)
			addBonus(view.Stats, "agi", tpl.Stats.Agi)
			addBonus(view.Stats, "dex", tpl.Stats.Dex)
			addBonus(view.Stats, "luk", tpl.Stats.Luk)
		}
		inventory = append(inventory, view)
	}
	sort.Slice(inventory, func(i, j int) bool { return inventory[i].ID < inventory[j].ID })

	spells := make([]api.KnownSpellView, 0, len(p.KnownSpells))
	for _, known := range p.KnownSpells {
		tpl := known.Template
		spells = append(spells, api.KnownSpellView{
			ID: tpl.ID, Name: tpl.Name, Type: tpl.Type, Element: tpl.Element,
			Power: tpl.Power, Cooldown: tpl.Cooldown, MpCost: tpl.MpCost,
			Level: known.Level,
		})
	}
	sort.Slice(spells, func(i, j int) bool { return spells[i].ID < spells[j].ID })

	return api.PlayerDetails{
		ID:           p.PlayerID,
		Username:     p.Username,
		Level:        p.Level,
		Exp:          p.Exp,
		Gold:         p.Gold,
		Diamond:      p.Diamond,
		Stats:        BuildStatsView(p),
		Equipment:    BuildEquipmentView(p),
		ActiveSpells: BuildSpellsView(p),
		Inventory:    inventory,
		KnownSpells:  spells,
	}
}

func addBonus(m map[string]int, key string, value int) {
	if value != 0 {
		m[key] = value
	}
}
