package domain

import "testing"

// Helper: игрок первого уровня с минимальными атрибутами
func newTestPlayer() *PlayerState {
	p := &PlayerState{
		PlayerID:    "p1",
		Username:    "tester",
		Level:       1,
		Str:         MinAttribute,
		Int:         MinAttribute,
		Agi:         MinAttribute,
		Dex:         MinAttribute,
		Luk:         MinAttribute,
		Inventory:   make(map[string]*OwnedItem),
		KnownSpells: make(map[string]*KnownSpell),
	}
	p.Recalculate()
	p.HP = p.MaxHP
	p.MP = p.MaxMP
	return p
}

func TestRequiredExp(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 100},  // 1 * 100 * 1.5^0
		{2, 300},  // 2 * 100 * 1.5^1
		{3, 675},  // 3 * 100 * 1.5^2
		{4, 1350}, // 4 * 100 * 1.5^3
	}

	for _, tt := range tests {
		if got := RequiredExp(tt.level); got != tt.expected {
			t.Errorf("RequiredExp(%d) = %d, want %d", tt.level, got, tt.expected)
		}
	}
}

func TestApplyExperience_SingleLevel(t *testing.T) {
	p := newTestPlayer()

	gained := ApplyExperience(p, 100)

	if p.Level != 2 {
		t.Errorf("Expected level 2, got %d", p.Level)
	}
	if len(gained) != 1 || gained[0] != 2 {
		t.Errorf("Expected gained=[2], got %v", gained)
	}
	if p.StatPoints != StatPointsPerLevel {
		t.Errorf("Expected %d stat points, got %d", StatPointsPerLevel, p.StatPoints)
	}
}

func TestApplyExperience_NoLevel(t *testing.T) {
	p := newTestPlayer()

	gained := ApplyExperience(p, 99)

	if p.Level != 1 {
		t.Errorf("Level changed without reaching threshold: %d", p.Level)
	}
	if len(gained) != 0 {
		t.Errorf("Expected no levels gained, got %v", gained)
	}
	if p.Exp != 99 {
		t.Errorf("Expected exp 99, got %d", p.Exp)
	}
}

// Одно большое начисление должно пересечь несколько порогов за раз.
func TestApplyExperience_MultiLevelLoop(t *testing.T) {
	p := newTestPlayer()

	gained := ApplyExperience(p, 10000)

	// Пороговые значения: 100, 300, 675, 1350, 2531, 4556, 7973, 13668.
	// 10000 >= 7973 (уровень 7 -> 8), но < 13668, значит финал - уровень 8.
	if p.Level != 8 {
		t.Errorf("Expected level 8, got %d", p.Level)
	}
	if len(gained) != 7 {
		t.Fatalf("Expected 7 level-ups, got %d (%v)", len(gained), gained)
	}
	// Уровни строго монотонно растут
	for i, lvl := range gained {
		if lvl != i+2 {
			t.Errorf("gained[%d] = %d, want %d", i, lvl, i+2)
		}
	}
	if p.StatPoints != 7*StatPointsPerLevel {
		t.Errorf("Expected %d stat points, got %d", 7*StatPointsPerLevel, p.StatPoints)
	}
}

// Потолки hp/mp растут с уровнем, но текущие значения не должны
// подниматься выше того, что было (только обрезаться сверху).
func TestApplyExperience_PoolsClampedNotRaised(t *testing.T) {
	p := newTestPlayer()
	p.HP = 10
	p.MP = 5

	ApplyExperience(p, 100)

	if p.HP != 10 {
		t.Errorf("Level up must not heal: hp = %d", p.HP)
	}
	if p.MP != 5 {
		t.Errorf("Level up must not restore mp: mp = %d", p.MP)
	}
	if p.MaxHP != BaseMaxHP+MinAttribute*HPPerStrength+2*HPPerLevel {
		t.Errorf("Unexpected maxHp %d", p.MaxHP)
	}
}

func TestApplyExperience_MaxLevelCap(t *testing.T) {
	p := newTestPlayer()
	p.Level = MaxLevel
	p.Recalculate()

	gained := ApplyExperience(p, 1_000_000_000)

	if p.Level != MaxLevel {
		t.Errorf("Level exceeded cap: %d", p.Level)
	}
	if len(gained) != 0 {
		t.Errorf("Expected no level-ups at cap, got %v", gained)
	}
	if p.Exp != 1_000_000_000 {
		t.Errorf("Experience must keep accumulating at cap, got %d", p.Exp)
	}
}
