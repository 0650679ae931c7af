package systems

import (
	"github.com/danielldt/unisonLegends.50/internal/domain"
)

// --- STAT POINTS ---

// TryAllocateStat тратит одно свободное очко на базовый атрибут.
// Возвращает новое значение атрибута.
func TryAllocateStat(p *domain.PlayerState, statType string) (int, error) {
	if _, ok := p.Attribute(statType); !ok {
		return 0, domain.Invalid("Invalid stat type")
	}
	if p.StatPoints <= 0 {
		return 0, domain.Invalid("No stat points available")
	}

	p.AddAttribute(statType, 1)
	p.StatPoints--
	p.Recalculate()

	value, _ := p.Attribute(statType)
	return value, nil
}

// TryDecreaseStat возвращает одно вложенное очко обратно в пул.
// Ниже минимума атрибут опуститься не может.
func TryDecreaseStat(p *domain.PlayerState, statType string) (int, error) {
	value, ok := p.Attribute(statType)
	if !ok {
		return 0, domain.Invalid("Invalid stat type")
	}
	if value <= domain.MinAttribute {
		return 0, domain.Invalid("Stat is already at minimum value")
	}

	p.AddAttribute(statType, -1)
	p.StatPoints++
	p.Recalculate()

	return value - 1, nil
}

// ResetStats сбрасывает все атрибуты к минимуму и возвращает вложенные
// очки в пул. Производные статы и пулы пересчитываются (hp/mp могут
// обрезаться, если потолок упал).
func ResetStats(p *domain.PlayerState) {
	refund := p.AllocatedPoints()

	p.Str = domain.MinAttribute
	p.Int = domain.MinAttribute
	p.Agi = domain.MinAttribute
	p.Dex = domain.MinAttribute
	p.Luk = domain.MinAttribute
	p.StatPoints += refund
	p.Recalculate()
}

// --- EXPERIENCE ---

// GainExperience начисляет опыт и возвращает список взятых уровней.
// Отрицательные и нулевые начисления отклоняются еще на валидации,
// здесь защита на случай внутренних вызовов.
func GainExperience(p *domain.PlayerState, amount int) ([]int, error) {
	if amount <= 0 {
		return nil, domain.Invalid("Experience amount must be positive")
	}
	return domain.ApplyExperience(p, amount), nil
}
