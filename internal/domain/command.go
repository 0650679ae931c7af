package domain

import "encoding/json"

// InternalCommand - оптимизированная команда для движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	ConnID  string          // ID соединения, от имени которого выполняется команда
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
