package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielldt/unisonLegends.50/internal/domain"
)

// LoadPlayer собирает полное состояние игрока: запись, инвентарь с
// шаблонами предметов, изученные заклинания и занятые слоты.
// Шаблоны подтягиваются явным join еще на границе загрузки - дальше
// движок работает только с памятью.
func (s *Store) LoadPlayer(ctx context.Context, playerID string) (*domain.PlayerState, error) {
	p := &domain.PlayerState{
		PlayerID:    playerID,
		Inventory:   make(map[string]*domain.OwnedItem),
		KnownSpells: make(map[string]*domain.KnownSpell),
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT username, level, exp, stat_points, gold, diamond,
		       strength, intellect, agility, dexterity, luck, hp, mp
		FROM players WHERE id = ?`, playerID).Scan(
		&p.Username, &p.Level, &p.Exp, &p.StatPoints, &p.Gold, &p.Diamond,
		&p.Str, &p.Int, &p.Agi, &p.Dex, &p.Luk, &p.HP, &p.MP,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", playerID, err)
	}

	if err := s.loadInventory(ctx, p); err != nil {
		return nil, err
	}
	if err := s.loadSpells(ctx, p); err != nil {
		return nil, err
	}

	// Пересчет производных и обрезка hp/mp по потолкам: запись могла
	// быть сохранена до смены формул или баланса предметов.
	p.Recalculate()
	if p.HP < 0 {
		p.HP = 0
	}
	if p.MP < 0 {
		p.MP = 0
	}
	return p, nil
}

func (s *Store) loadInventory(ctx context.Context, p *domain.PlayerState) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.name, i.type, i.category, i.rarity, i.dmg, i.def,
		       i.bonus_str, i.bonus_int, i.bonus_agi, i.bonus_dex, i.bonus_luk,
		       pi.quantity, pi.slot
		FROM player_items pi
		JOIN items i ON i.id = pi.item_id
		WHERE pi.player_id = ?`, p.PlayerID)
	if err != nil {
		return fmt.Errorf("load inventory %s: %w", p.PlayerID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var tpl domain.ItemTemplate
		var quantity, slot int
		if err := rows.Scan(
			&tpl.ID, &tpl.Name, &tpl.Type, &tpl.Category, &tpl.Rarity, &tpl.Dmg, &tpl.Def,
			&tpl.Stats.Str, &tpl.Stats.Int, &tpl.Stats.Agi, &tpl.Stats.Dex, &tpl.Stats.Luk,
			&quantity, &slot,
		); err != nil {
			return err
		}

		owned := &domain.OwnedItem{Template: tpl, Quantity: quantity}
		if slot >= 0 && slot < domain.EquipmentSlotCount &&
			domain.SlotAcceptsCategory(slot, tpl.Category) {
			owned.IsEquipped = true
			p.SetEquipmentSlot(slot, tpl.ID)
		}
		p.Inventory[tpl.ID] = owned
	}
	return rows.Err()
}

func (s *Store) loadSpells(ctx context.Context, p *domain.PlayerState) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sp.id, sp.name, sp.type, sp.element, sp.power, sp.cooldown, sp.mp_cost,
		       ps.level, ps.slot
		FROM player_spells ps
		JOIN spells sp ON sp.id = ps.spell_id
		WHERE ps.player_id = ?`, p.PlayerID)
	if err != nil {
		return fmt.Errorf("load spells %s: %w", p.PlayerID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var tpl domain.SpellTemplate
		var level, slot int
		if err := rows.Scan(
			&tpl.ID, &tpl.Name, &tpl.Type, &tpl.Element, &tpl.Power, &tpl.Cooldown, &tpl.MpCost,
			&level, &slot,
		); err != nil {
			return err
		}

		known := &domain.KnownSpell{Template: tpl, Level: level}
		if slot >= 0 && slot < domain.SpellSlotCount {
			known.IsEquipped = true
			p.SetSpellSlot(slot, tpl.ID)
		}
		p.KnownSpells[tpl.ID] = known
	}
	return rows.Err()
}

// SavePlayer записывает полный снапшот: запись игрока и все занятые
// слоты. Чекпоинтер и выход из сессии ходят именно сюда.
func (s *Store) SavePlayer(ctx context.Context, p *domain.PlayerState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save player %s: %w", p.PlayerID, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE players SET
			level = ?, exp = ?, stat_points = ?, gold = ?, diamond = ?,
			strength = ?, intellect = ?, agility = ?, dexterity = ?, luck = ?,
			hp = ?, mp = ?
		WHERE id = ?`,
		p.Level, p.Exp, p.StatPoints, p.Gold, p.Diamond,
		p.Str, p.Int, p.Agi, p.Dex, p.Luk,
		p.HP, p.MP, p.PlayerID)
	if err != nil {
		return fmt.Errorf("save player %s: %w", p.PlayerID, err)
	}

	// Слоты переписываются целиком: сбросить все, проставить занятые
	if _, err := tx.ExecContext(ctx,
		`UPDATE player_items SET slot = -1 WHERE player_id = ?`, p.PlayerID); err != nil {
		return err
	}
	for slot, itemID := range p.Equipment {
		if itemID == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE player_items SET slot = ? WHERE player_id = ? AND item_id = ?`,
			slot, p.PlayerID, itemID); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE player_spells SET slot = -1 WHERE player_id = ?`, p.PlayerID); err != nil {
		return err
	}
	for slot, spellID := range p.Spells {
		if spellID == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE player_spells SET slot = ? WHERE player_id = ? AND spell_id = ?`,
			slot, p.PlayerID, spellID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveEquipmentSlot немедленно фиксирует одно изменение слота
// экипировки, не дожидаясь чекпоинта. itemID == "" освобождает слот.
func (s *Store) SaveEquipmentSlot(ctx context.Context, playerID string, slot int, itemID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save equipment slot: %w", err)
	}
	defer tx.Rollback()

	// Перенос и вытеснение: предмет покидает старый слот, прежний
	// обитатель целевого слота снимается
	if itemID != "" {
		if _, err := tx.ExecContext(ctx,
			`UPDATE player_items SET slot = -1 WHERE player_id = ? AND item_id = ?`,
			playerID, itemID); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE player_items SET slot = -1 WHERE player_id = ? AND slot = ?`,
		playerID, slot); err != nil {
		return err
	}
	if itemID != "" {
		if _, err := tx.ExecContext(ctx,
			`UPDATE player_items SET slot = ? WHERE player_id = ? AND item_id = ?`,
			slot, playerID, itemID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveSpellSlot - то же самое для слота активных заклинаний.
func (s *Store) SaveSpellSlot(ctx context.Context, playerID string, slot int, spellID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save spell slot: %w", err)
	}
	defer tx.Rollback()

	if spellID != "" {
		if _, err := tx.ExecContext(ctx,
			`UPDATE player_spells SET slot = -1 WHERE player_id = ? AND spell_id = ?`,
			playerID, spellID); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE player_spells SET slot = -1 WHERE player_id = ? AND slot = ?`,
		playerID, slot); err != nil {
		return err
	}
	if spellID != "" {
		if _, err := tx.ExecContext(ctx,
			`UPDATE player_spells SET slot = ? WHERE player_id = ? AND spell_id = ?`,
			slot, playerID, spellID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
