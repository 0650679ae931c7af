package storage

import (
	"context"
	"fmt"

	"github.com/danielldt/unisonLegends.50/internal/domain"
)

// Каталоги предметов и заклинаний плюс выдача их игрокам.
// Сервис сессий их не мутирует, но инструменты наполнения и тесты
// ходят через эти же методы.

// CreatePlayer заводит новую запись игрока с минимальными атрибутами.
func (s *Store) CreatePlayer(ctx context.Context, playerID, username string) error {
	hp := domain.BaseMaxHP + domain.MinAttribute*domain.HPPerStrength + domain.HPPerLevel
	mp := domain.BaseMaxMP + domain.MinAttribute*domain.MPPerInt + domain.MPPerLevel

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (id, username, hp, mp)
		VALUES (?, ?, ?, ?)`, playerID, username, hp, mp)
	if err != nil {
		return fmt.Errorf("create player %s: %w", playerID, err)
	}
	return nil
}

// SetAccountStatus меняет статус аккаунта (active / suspended / banned).
func (s *Store) SetAccountStatus(ctx context.Context, playerID, status string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE players SET status = ? WHERE id = ?`, status, playerID)
	return err
}

// UpsertItem кладет шаблон предмета в каталог.
func (s *Store) UpsertItem(ctx context.Context, tpl domain.ItemTemplate) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, name, type, category, rarity, dmg, def,
		                   bonus_str, bonus_int, bonus_agi, bonus_dex, bonus_luk)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, type = excluded.type, category = excluded.category,
			rarity = excluded.rarity, dmg = excluded.dmg, def = excluded.def,
			bonus_str = excluded.bonus_str, bonus_int = excluded.bonus_int,
			bonus_agi = excluded.bonus_agi, bonus_dex = excluded.bonus_dex,
			bonus_luk = excluded.bonus_luk`,
		tpl.ID, tpl.Name, tpl.Type, tpl.Category, tpl.Rarity, tpl.Dmg, tpl.Def,
		tpl.Stats.Str, tpl.Stats.Int, tpl.Stats.Agi, tpl.Stats.Dex, tpl.Stats.Luk)
	if err != nil {
		return fmt.Errorf("upsert item %s: %w", tpl.ID, err)
	}
	return nil
}

// UpsertSpell кладет шаблон заклинания в каталог.
func (s *Store) UpsertSpell(ctx context.Context, tpl domain.SpellTemplate) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO spells (id, name, type, element, power, cooldown, mp_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, type = excluded.type, element = excluded.element,
			power = excluded.power, cooldown = excluded.cooldown, mp_cost = excluded.mp_cost`,
		tpl.ID, tpl.Name, tpl.Type, tpl.Element, tpl.Power, tpl.Cooldown, tpl.MpCost)
	if err != nil {
		return fmt.Errorf("upsert spell %s: %w", tpl.ID, err)
	}
	return nil
}

// GrantItem выдает игроку count экземпляров предмета (стакается).
func (s *Store) GrantItem(ctx context.Context, playerID, itemID string, count int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO player_items (player_id, item_id, quantity)
		VALUES (?, ?, ?)
		ON CONFLICT(player_id, item_id) DO UPDATE SET
			quantity = quantity + excluded.quantity`,
		playerID, itemID, count)
	if err != nil {
		return fmt.Errorf("grant item %s to %s: %w", itemID, playerID, err)
	}
	return nil
}

// GrantSpell обучает игрока заклинанию.
func (s *Store) GrantSpell(ctx context.Context, playerID, spellID string, level int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO player_spells (player_id, spell_id, level)
		VALUES (?, ?, ?)
		ON CONFLICT(player_id, spell_id) DO UPDATE SET
			level = excluded.level`,
		playerID, spellID, level)
	if err != nil {
		return fmt.Errorf("grant spell %s to %s: %w", spellID, playerID, err)
	}
	return nil
}
