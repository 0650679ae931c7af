package engine

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/danielldt/unisonLegends.50/internal/auth"
	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/internal/engine/handlers"
	"github.com/danielldt/unisonLegends.50/internal/engine/handlers/actions"
	"github.com/danielldt/unisonLegends.50/internal/infrastructure/journal"
	"github.com/danielldt/unisonLegends.50/internal/network"
	"github.com/danielldt/unisonLegends.50/pkg/api"
	"github.com/danielldt/unisonLegends.50/pkg/logger"
)

// DefaultGroup - группа по умолчанию, если join пришел без группы.
const DefaultGroup = "main"

type sessionRef struct {
	PlayerID string
	Group    string
}

// GameService владеет циклами групп и маршрутизацией между
// транспортом и ними. Вход, выход и команды игрока всегда уходят
// в цикл ЕГО группы - сервис сам состояние игроков не трогает.
type GameService struct {
	Cfg          Config
	Store        Store
	Hub          *network.Broadcaster
	Verifier     auth.Verifier
	Journal      *journal.Service
	Checkpointer *Checkpointer

	mu       sync.Mutex
	groups   map[string]*Instance
	sessions map[string]sessionRef // ConnID -> сессия
	byPlayer map[string]string     // PlayerID -> ConnID (для вытеснения)

	actionHandlers map[domain.ActionType]handlers.HandlerFunc

	log *logrus.Entry
}

func NewService(cfg Config, store Store, verifier auth.Verifier, hub *network.Broadcaster, js *journal.Service) *GameService {
	s := &GameService{
		Cfg:            cfg,
		Store:          store,
		Hub:            hub,
		Verifier:       verifier,
		Journal:        js,
		Checkpointer:   NewCheckpointer(store),
		groups:         make(map[string]*Instance),
		sessions:       make(map[string]sessionRef),
		byPlayer:       make(map[string]string),
		actionHandlers: make(map[domain.ActionType]handlers.HandlerFunc),
		log:            logger.WithComponent("service"),
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.actionHandlers[domain.ActionGetPlayerInfo] = handlers.WithEmptyPayload(actions.HandleGetPlayerInfo)
	s.actionHandlers[domain.ActionEquipItem] = handlers.WithPayload(actions.HandleEquipItem)
	s.actionHandlers[domain.ActionUnequipItem] = handlers.WithPayload(actions.HandleUnequipItem)
	s.actionHandlers[domain.ActionUpdateSpells] = handlers.WithPayload(actions.HandleUpdateSpells)
	s.actionHandlers[domain.ActionUnequipSpell] = handlers.WithPayload(actions.HandleUnequipSpell)
	s.actionHandlers[domain.ActionAllocateStatPoint] = handlers.WithPayload(actions.HandleAllocateStat)
	s.actionHandlers[domain.ActionDecreaseStatPoint] = handlers.WithPayload(actions.HandleDecreaseStat)
	s.actionHandlers[domain.ActionResetStats] = handlers.WithEmptyPayload(actions.HandleResetStats)
	s.actionHandlers[domain.ActionGainExperience] = handlers.WithPayload(actions.HandleGainExperience)
}

// Admit впускает соединение: проверка токена, статус аккаунта,
// вытеснение старой сессии того же игрока, загрузка состояния и
// передача в цикл группы. Вызывается из горутины чтения соединения
// ДО того, как от него принимаются какие-либо команды.
func (s *GameService) Admit(ctx context.Context, connID, token, group string) error {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return err
	}

	status, err := s.Store.AccountStatus(ctx, claims.PlayerID)
	if err != nil {
		return domain.ErrPlayerNotFound
	}
	if status != domain.AccountStatusActive {
		return auth.ErrAccountInactive
	}

	if group == "" {
		group = DefaultGroup
	}

	// Повторный вход того же игрока вытесняет старую сессию.
	// Дожидаемся сохранения её состояния, иначе свежая загрузка
	// прочитает устаревшую запись.
	s.evictExisting(claims.PlayerID)

	player, err := s.Store.LoadPlayer(ctx, claims.PlayerID)
	if err != nil {
		return err
	}
	player.ConnID = connID
	if player.Username == "" {
		player.Username = claims.Username
	}

	inst, err := s.instance(group)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sessions[connID] = sessionRef{PlayerID: claims.PlayerID, Group: group}
	s.byPlayer[claims.PlayerID] = connID
	s.mu.Unlock()

	inst.JoinChan <- JoinRequest{ConnID: connID, Player: player}
	return nil
}

func (s *GameService) evictExisting(playerID string) {
	s.mu.Lock()
	oldConn, exists := s.byPlayer[playerID]
	var oldRef sessionRef
	if exists {
		oldRef = s.sessions[oldConn]
		delete(s.sessions, oldConn)
		delete(s.byPlayer, playerID)
	}
	oldInst := s.groups[oldRef.Group]
	s.mu.Unlock()

	if !exists || oldInst == nil {
		return
	}

	s.Hub.SendTo(oldConn, api.Event(domain.EventSessionReplaced, nil))

	done := make(chan struct{})
	oldInst.LeaveChan <- LeaveRequest{ConnID: oldConn, Done: done}
	<-done

	// Закрытие канала подписчика роняет writePump старого соединения
	s.Hub.Unregister(oldConn)

	s.log.WithFields(logrus.Fields{
		"player_id": playerID,
		"conn_id":   oldConn,
	}).Info("Старая сессия вытеснена повторным входом")
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Соединение обязано быть впущенным через Admit.
func (s *GameService) ProcessCommand(connID string, external api.ClientCommand) {
	actionType := domain.ParseAction(external.Command)
	if actionType == domain.ActionUnknown || actionType == domain.ActionJoin {
		s.log.WithField("command", external.Command).Warn("Неизвестная команда")
		return
	}

	s.mu.Lock()
	ref, ok := s.sessions[connID]
	inst := s.groups[ref.Group]
	s.mu.Unlock()
	if !ok || inst == nil {
		return
	}

	inst.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		ConnID:  connID,
		Payload: external.Payload,
	}
}

// Disconnect выводит соединение из его группы (дисконнект сокета).
func (s *GameService) Disconnect(connID string) {
	s.mu.Lock()
	ref, ok := s.sessions[connID]
	if ok {
		delete(s.sessions, connID)
		if s.byPlayer[ref.PlayerID] == connID {
			delete(s.byPlayer, ref.PlayerID)
		}
	}
	inst := s.groups[ref.Group]
	s.mu.Unlock()

	if !ok || inst == nil {
		return
	}
	inst.LeaveChan <- LeaveRequest{ConnID: connID}
}

// instance возвращает цикл группы, создавая и запуская его при
// первом обращении.
func (s *GameService) instance(group string) (*Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inst, ok := s.groups[group]; ok {
		return inst, nil
	}

	var jw *journal.Writer
	if s.Journal != nil {
		var err error
		jw, err = s.Journal.ForGroup(group)
		if err != nil {
			return nil, err
		}
	}

	inst := NewInstance(group, s, jw)
	s.groups[group] = inst
	go inst.Run()
	return inst, nil
}

// Shutdown останавливает все циклы групп, дожидаясь финального
// сохранения состояний, и закрывает журналы.
func (s *GameService) Shutdown(ctx context.Context) {
	s.mu.Lock()
	instances := make([]*Instance, 0, len(s.groups))
	for _, inst := range s.groups {
		instances = append(instances, inst)
	}
	s.mu.Unlock()

	for _, inst := range instances {
		stopped := make(chan struct{})
		go func(in *Instance) {
			in.Stop()
			close(stopped)
		}(inst)

		select {
		case <-stopped:
		case <-ctx.Done():
			s.log.WithField("group", inst.Group).Warn("Группа не успела остановиться")
		}
	}

	if s.Journal != nil {
		s.Journal.CloseAll()
	}
	s.log.Info("Сервис сессий остановлен")
}

// SessionInfo - срез одной живой сессии для отладочных ручек.
type SessionInfo struct {
	ConnID   string `json:"connId"`
	PlayerID string `json:"playerId"`
	Group    string `json:"group"`
}

// Sessions возвращает срез всех живых сессий.
func (s *GameService) Sessions() []SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SessionInfo, 0, len(s.sessions))
	for connID, ref := range s.sessions {
		out = append(out, SessionInfo{ConnID: connID, PlayerID: ref.PlayerID, Group: ref.Group})
	}
	return out
}

// Groups возвращает количество игроков по группам.
func (s *GameService) Groups() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.groups))
	for group := range s.groups {
		out[group] = 0
	}
	for _, ref := range s.sessions {
		out[ref.Group]++
	}
	return out
}
