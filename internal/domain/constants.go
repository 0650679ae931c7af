package domain

// Базовые атрибуты
const (
	MinAttribute       = 5 // Нижний порог каждого атрибута
	StatPointsPerLevel = 5 // Награда очками за каждый взятый уровень
)

// Кривая опыта
const (
	MaxLevel          = 100
	BaseExpMultiplier = 100
	LevelGrowth       = 1.5
)

// Формулы пулов ресурсов
const (
	BaseMaxHP     = 100
	HPPerStrength = 5
	HPPerLevel    = 10

	BaseMaxMP  = 50
	MPPerInt   = 5
	MPPerLevel = 5
)

// Производные боевые статы
const (
	BaseCritRate       = 5.0
	LuckCritMultiplier = 0.1
	// MaxCritRate - потолок крита. Движок обрезает всё, что выше.
	MaxCritRate = 75.0

	WeaponStatMultiplier    = 0.5
	CooldownReductionPerInt = 0.5
)

// Слоты экипировки. Номера слотов - стабильный проводной контракт:
// 0-4 оружие, 5 голова, 6 тело, 7 ноги.
const (
	SlotWeapon1 = 0
	SlotWeapon2 = 1
	SlotWeapon3 = 2
	SlotWeapon4 = 3
	SlotWeapon5 = 4
	SlotHead    = 5
	SlotBody    = 6
	SlotLegs    = 7

	EquipmentSlotCount = 8
	SpellSlotCount     = 5
)

// Категории предметов (колонка category в каталоге)
const (
	ItemCategoryWeapon = "weapon"
	ItemCategoryHead   = "head"
	ItemCategoryBody   = "body"
	ItemCategoryLegs   = "legs"
)

// Типы оружия (колонка type). Определяют, какой атрибут
// усиливает атаку этим оружием.
const (
	WeaponTypeSword  = "sword"
	WeaponTypeShield = "shield"
	WeaponTypeDagger = "dagger"
	WeaponTypeBow    = "bow"
	WeaponTypeStaff  = "staff"
	WeaponTypeOrb    = "orb"
)

// Статусы аккаунта
const (
	AccountStatusActive    = "active"
	AccountStatusSuspended = "suspended"
	AccountStatusBanned    = "banned"
)
