package domain

import "math"

// DerivedStats - боевые статы, вычисляемые из атрибутов и экипировки.
// Чистая производная: хранить их отдельно от источника нельзя.
type DerivedStats struct {
	Attack            int `json:"attack"`
	Defense           int `json:"defense"`
	CritRate          int `json:"critRate"`
	Dodge             int `json:"dodge"`
	Hit               int `json:"hit"`
	CooldownReduction int `json:"cooldownReduction"`
}

// ComputeDerivedStats - Derived Stats Engine. Чистая функция:
// базовые атрибуты + бонусы надетых предметов -> боевые статы.
// Накопление во float, наружу - округление до ближайшего целого.
func ComputeDerivedStats(p *PlayerState) DerivedStats {
	equipped := p.EquippedItems()

	// Суммарные атрибуты = база + бонусы со ВСЕХ надетых предметов
	totalStr := float64(p.Str)
	totalInt := float64(p.Int)
	totalAgi := float64(p.Agi)
	totalDex := float64(p.Dex)
	totalLuk := float64(p.Luk)

	for _, item := range equipped {
		if item == nil {
			continue
		}
		totalStr += float64(item.Stats.Str)
		totalInt += float64(item.Stats.Int)
		totalAgi += float64(item.Stats.Agi)
		totalDex += float64(item.Stats.Dex)
		totalLuk += float64(item.Stats.Luk)
	}

	// Атака: среднее по непустым слотам оружия.
	// Каждое оружие дает базовый урон + половину профильного атрибута.
	attack := 0.0
	weapons := 0
	for slot := SlotWeapon1; slot <= SlotWeapon5; slot++ {
		item := equipped[slot]
		if item == nil {
			continue
		}
		bonus := 0
		switch WeaponAttribute(item.Type) {
		case "str":
			bonus = p.Str
		case "dex":
			bonus = p.Dex
		case "int":
			bonus = p.Int
		}
		attack += float64(item.Dmg) + float64(bonus)*WeaponStatMultiplier
		weapons++
	}
	if weapons > 0 {
		attack /= float64(weapons)
	}

	// Защита: сумма def брони (голова + тело + ноги)
	defense := 0
	for _, slot := range []int{SlotHead, SlotBody, SlotLegs} {
		if item := equipped[slot]; item != nil {
			defense += item.Def
		}
	}

	critRate := BaseCritRate + totalLuk*LuckCritMultiplier
	if critRate > MaxCritRate {
		critRate = MaxCritRate
	}

	dodge := totalAgi*2 + totalLuk
	hit := totalDex*2 + totalLuk
	cdr := totalInt * CooldownReductionPerInt

	return DerivedStats{
		Attack:            int(math.Round(attack)),
		Defense:           defense,
		CritRate:          int(math.Round(critRate)),
		Dodge:             int(math.Round(dodge)),
		Hit:               int(math.Round(hit)),
		CooldownReduction: int(math.Round(cdr)),
	}
}
