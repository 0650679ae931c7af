package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/danielldt/unisonLegends.50/internal/auth"
	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/internal/engine"
	"github.com/danielldt/unisonLegends.50/pkg/api"
	"github.com/danielldt/unisonLegends.50/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	admitTimeout   = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и GameService
type Client struct {
	Game   *engine.GameService
	Conn   *websocket.Conn
	Send   chan api.ServerEvent
	ConnID string

	admitted bool
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game:   game,
		Conn:   conn,
		Send:   make(chan api.ServerEvent, 256),
		ConnID: uuid.NewString(),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		if c.admitted {
			c.Game.Disconnect(c.ConnID)
			c.Game.Hub.Unregister(c.ConnID)
		}
		_ = c.Conn.Close()
		logger.Log.WithField("conn_id", c.ConnID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE (JOIN)
	// Первое сообщение обязано быть командой join с токеном.
	// До успешного впуска никакие другие команды не принимаются.
	var joinCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&joinCmd); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}
	if domain.ParseAction(joinCmd.Command) != domain.ActionJoin {
		c.rejectJoin("First command must be join")
		return
	}

	var payload api.JoinPayload
	if err := json.Unmarshal(joinCmd.Payload, &payload); err != nil {
		c.rejectJoin("Invalid join payload")
		return
	}
	if err := payload.Validate(); err != nil {
		c.rejectJoin(err.Error())
		return
	}

	// 2. ПОДПИСКА ДО ВПУСКА
	// Канал регистрируется заранее, чтобы player_details из цикла
	// группы не улетел в пустоту.
	group := payload.Group
	if group == "" {
		group = engine.DefaultGroup
	}
	updates := c.Game.Hub.Register(c.ConnID, group)
	go forwardEvents(updates, c.Send)

	// 3. ВПУСК (токен, статус аккаунта, загрузка состояния)
	ctx, cancel := context.WithTimeout(context.Background(), admitTimeout)
	err := c.Game.Admit(ctx, c.ConnID, payload.Token, group)
	cancel()
	if err != nil {
		c.Send <- api.Failure(domain.EventJoinFailed, admissionReason(err))
		logger.Log.WithError(err).WithField("conn_id", c.ConnID).Warn("Join rejected")
		c.Game.Hub.Unregister(c.ConnID)
		return
	}
	c.admitted = true

	logger.Log.WithFields(logrus.Fields{
		"conn_id": c.ConnID,
		"group":   group,
	}).Info("Client joined")

	// 4. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		c.Game.ProcessCommand(c.ConnID, cmd)
	}
}

// forwardEvents перекачивает события подписки хаба в канал отправки
// соединения. Переполненный канал не блокирует перекачку: событие
// отбрасывается, как делает сам Broadcaster у медленных подписчиков -
// иначе горутина зависнет навсегда, если writePump умер с полным Send.
func forwardEvents(updates <-chan api.ServerEvent, send chan<- api.ServerEvent) {
	for event := range updates {
		select {
		case send <- event:
		default:
		}
	}
	close(send)
}

// rejectJoin шлет отказ напрямую в сокет (подписки еще нет).
func (c *Client) rejectJoin(reason string) {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err == nil {
		_ = c.Conn.WriteJSON(api.Failure(domain.EventJoinFailed, reason))
	}
}

// admissionReason конвертирует ошибку впуска в причину для клиента.
func admissionReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid or expired token"
	case errors.Is(err, auth.ErrAccountInactive):
		return "Account is not active"
	case errors.Is(err, domain.ErrPlayerNotFound):
		return "Player record not found"
	}
	return "Internal error"
}

// writePump отправляет события клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(event); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
