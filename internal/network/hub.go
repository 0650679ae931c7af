package network

import (
	"sync"

	"github.com/danielldt/unisonLegends.50/pkg/api"
)

// Broadcaster занимается только рассылкой событий подписчикам.
// Ключ - ID соединения: у одного игрока в один момент ровно одно
// живое соединение, за этим следит слой сессий.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ConnID -> личный канал
	subscribers map[string]subscriber
}

type subscriber struct {
	group string
	ch    chan api.ServerEvent
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]subscriber),
	}
}

// Register создает личный канал для соединения.
func (b *Broadcaster) Register(connID, group string) chan api.ServerEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[connID]; ok {
		close(old.ch)
	}

	ch := make(chan api.ServerEvent, 100)
	b.subscribers[connID] = subscriber{group: group, ch: ch}
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(connID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subscribers[connID]; ok {
		close(sub.ch)
		delete(b.subscribers, connID)
	}
}

// SendTo отправляет событие конкретному соединению (Unicast)
func (b *Broadcaster) SendTo(connID string, event api.ServerEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if sub, ok := b.subscribers[connID]; ok {
		select {
		case sub.ch <- event:
		default:
			// Канал переполнен - медленный клиент теряет событие,
			// следующий полный снапшот его догонит
		}
	}
}

// BroadcastGroup отправляет событие всем в группе, кроме exceptConnID
// (пустая строка = без исключений).
func (b *Broadcaster) BroadcastGroup(group string, event api.ServerEvent, exceptConnID string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for connID, sub := range b.subscribers {
		if sub.group != group || connID == exceptConnID {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
}

// HasSubscriber проверяет, живо ли соединение.
func (b *Broadcaster) HasSubscriber(connID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[connID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
