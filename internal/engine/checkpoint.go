package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/pkg/logger"
)

const saveTimeout = 10 * time.Second

// Checkpointer периодически сбрасывает состояние игроков на диск.
// Цикл группы отдает сюда КОПИИ состояний и тут же продолжает работу,
// сами записи идут в фоне. Ошибка записи не фатальна: состояние в
// памяти авторитетно, следующий чекпоинт или выход из сессии допишут.
type Checkpointer struct {
	store Store
	log   *logrus.Entry
}

func NewCheckpointer(store Store) *Checkpointer {
	return &Checkpointer{
		store: store,
		log:   logger.WithComponent("checkpoint"),
	}
}

// SaveAsync пишет снапшоты в фоне.
func (c *Checkpointer) SaveAsync(group string, snapshots []*domain.PlayerState) {
	if len(snapshots) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		failed := 0
		for _, p := range snapshots {
			if err := c.store.SavePlayer(ctx, p); err != nil {
				failed++
				c.log.WithError(err).WithFields(logrus.Fields{
					"group":     group,
					"player_id": p.PlayerID,
				}).Error("Чекпоинт игрока не записался")
			}
		}

		c.log.WithFields(logrus.Fields{
			"group":  group,
			"saved":  len(snapshots) - failed,
			"failed": failed,
		}).Info("Чекпоинт группы завершен")
	}()
}

// SaveSync пишет одного игрока синхронно (выход из сессии, останов).
func (c *Checkpointer) SaveSync(p *domain.PlayerState) error {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	return c.store.SavePlayer(ctx, p)
}
