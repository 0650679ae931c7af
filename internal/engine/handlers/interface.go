package handlers

import (
	"context"
	"encoding/json"

	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/pkg/api"
)

// SlotStore описывает немедленную фиксацию изменений слотов.
// Цикл группы передает сюда хранилище; в тестах - заглушку.
type SlotStore interface {
	SaveEquipmentSlot(ctx context.Context, playerID string, slot int, itemID string) error
	SaveSpellSlot(ctx context.Context, playerID string, slot int, spellID string) error
}

// Context передает хендлеру состояние сессии.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Ctx    context.Context
	Player *domain.PlayerState // Тот, кто выполняет команду
	Group  string
	Store  SlotStore
}

// Result - результат выполнения команды.
// Хендлер НЕ шлет события сам, он возвращает данные:
// Events уходят автору команды, Broadcasts - остальным в группе.
type Result struct {
	Events     []api.ServerEvent
	Broadcasts []api.ServerEvent
}

// HandlerFunc - это контракт для любой команды.
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
