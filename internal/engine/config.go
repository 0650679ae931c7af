package engine

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config - конфигурация сервиса сессий. Заполняется из окружения.
type Config struct {
	Port      int    `env:"UL_PORT" envDefault:"8080"`
	DBPath    string `env:"UL_DB_PATH" envDefault:"unison.db"`
	JWTSecret string `env:"UL_JWT_SECRET,required"`

	// TickInterval - период сердцебиения цикла группы (20 Гц).
	// Накопленные групповые рассылки уходят на границе тика.
	TickInterval time.Duration `env:"UL_TICK_INTERVAL" envDefault:"50ms"`

	// SaveInterval - период фонового чекпоинта всех игроков группы.
	SaveInterval time.Duration `env:"UL_SAVE_INTERVAL" envDefault:"5m"`

	JournalDir string `env:"UL_JOURNAL_DIR" envDefault:"journals"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
