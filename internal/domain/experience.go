package domain

import "math"

// RequiredExp возвращает суммарный опыт, необходимый для взятия
// следующего уровня с уровня level: floor(L * 100 * 1.5^(L-1)).
func RequiredExp(level int) int {
	base := float64(level * BaseExpMultiplier)
	multiplier := math.Pow(LevelGrowth, float64(level-1))
	return int(math.Floor(base * multiplier))
}

// CanLevelUp проверяет, достаточно ли опыта для следующего уровня.
// На потолке уровней всегда false - опыт копится, уровни не растут.
func CanLevelUp(exp, level int) bool {
	if level >= MaxLevel {
		return false
	}
	return exp >= RequiredExp(level)
}

// ApplyExperience - Leveling Engine. Добавляет опыт и крутит цикл
// уровней: одно большое начисление может пересечь несколько порогов
// за раз, поэтому именно цикл, а не одиночная проверка.
// Возвращает список взятых уровней (по порядку).
//
// Пересчет максимумов и обрезку hp/mp делает p.Recalculate() на каждом
// шаге: потолок растет, но текущие значения сверх потолка не поднимаются.
func ApplyExperience(p *PlayerState, amount int) []int {
	p.Exp += amount

	var gained []int
	for CanLevelUp(p.Exp, p.Level) {
		p.Level++
		p.StatPoints += StatPointsPerLevel
		p.Recalculate()
		gained = append(gained, p.Level)
	}
	return gained
}
