package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/danielldt/unisonLegends.50/pkg/logger"
)

// Схема создается при открытии. Экипировка и активные заклинания
// хранятся колонкой slot на строках владения (-1 = не надето),
// отдельная таблица слотов не нужна.
const schema = `
CREATE TABLE IF NOT EXISTS players (
	id          TEXT PRIMARY KEY,
	username    TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'active',
	level       INTEGER NOT NULL DEFAULT 1,
	exp         INTEGER NOT NULL DEFAULT 0,
	stat_points INTEGER NOT NULL DEFAULT 0,
	gold        INTEGER NOT NULL DEFAULT 0,
	diamond     INTEGER NOT NULL DEFAULT 0,
	strength    INTEGER NOT NULL DEFAULT 5,
	intellect   INTEGER NOT NULL DEFAULT 5,
	agility     INTEGER NOT NULL DEFAULT 5,
	dexterity   INTEGER NOT NULL DEFAULT 5,
	luck        INTEGER NOT NULL DEFAULT 5,
	hp          INTEGER NOT NULL DEFAULT 0,
	mp          INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS items (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	type      TEXT NOT NULL DEFAULT '',
	category  TEXT NOT NULL,
	rarity    TEXT NOT NULL DEFAULT 'common',
	dmg       INTEGER NOT NULL DEFAULT 0,
	def       INTEGER NOT NULL DEFAULT 0,
	bonus_str INTEGER NOT NULL DEFAULT 0,
	bonus_int INTEGER NOT NULL DEFAULT 0,
	bonus_agi INTEGER NOT NULL DEFAULT 0,
	bonus_dex INTEGER NOT NULL DEFAULT 0,
	bonus_luk INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS spells (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	type     TEXT NOT NULL DEFAULT '',
	element  TEXT NOT NULL DEFAULT '',
	power    INTEGER NOT NULL DEFAULT 0,
	cooldown INTEGER NOT NULL DEFAULT 0,
	mp_cost  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS player_items (
	player_id TEXT NOT NULL REFERENCES players(id),
	item_id   TEXT NOT NULL REFERENCES items(id),
	quantity  INTEGER NOT NULL DEFAULT 1,
	slot      INTEGER NOT NULL DEFAULT -1,
	PRIMARY KEY (player_id, item_id)
);

CREATE TABLE IF NOT EXISTS player_spells (
	player_id TEXT NOT NULL REFERENCES players(id),
	spell_id  TEXT NOT NULL REFERENCES spells(id),
	level     INTEGER NOT NULL DEFAULT 1,
	slot      INTEGER NOT NULL DEFAULT -1,
	PRIMARY KEY (player_id, spell_id)
);
`

// Store - долговременное хранилище игроков и каталогов на sqlite.
// Потокобезопасность дает database/sql, но по контракту сервиса все
// записи одного игрока идут из цикла его группы последовательно.
type Store struct {
	db  *sql.DB
	log *logrus.Entry
}

// Open открывает (и при необходимости создает) базу по пути path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	log := logger.WithComponent("storage")
	log.WithField("path", path).Info("Хранилище открыто")
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// AccountStatus возвращает статус аккаунта (active / suspended / banned).
func (s *Store) AccountStatus(ctx context.Context, playerID string) (string, error) {
	var status string
	err := s.db.QueryRowContext(ctx,
		`SELECT status FROM players WHERE id = ?`, playerID).Scan(&status)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("account %s: %w", playerID, sql.ErrNoRows)
	}
	if err != nil {
		return "", err
	}
	return status, nil
}
