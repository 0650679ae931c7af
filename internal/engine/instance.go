package engine

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/internal/engine/handlers"
	"github.com/danielldt/unisonLegends.50/internal/engine/handlers/actions"
	"github.com/danielldt/unisonLegends.50/internal/infrastructure/journal"
	"github.com/danielldt/unisonLegends.50/pkg/api"
	"github.com/danielldt/unisonLegends.50/pkg/logger"
)

// JoinRequest - вход уже аутентифицированного игрока в группу.
// Загрузку из хранилища делает сервис ДО отправки сюда.
type JoinRequest struct {
	ConnID string
	Player *domain.PlayerState
}

// LeaveRequest - выход игрока. Done (если не nil) закрывается после
// того, как состояние синхронно сохранено - на это полагается
// вытеснение при повторном входе.
type LeaveRequest struct {
	ConnID string
	Done   chan struct{}
}

type pendingBroadcast struct {
	event  api.ServerEvent
	except string
}

// Instance - один изолированный запущенный цикл группы сессий.
// Все состояния игроков группы принадлежат этому циклу: любая мутация
// проходит через его каналы и выполняется строго последовательно,
// поэтому ни доменное состояние, ни хендлеры не нуждаются в блокировках.
type Instance struct {
	Group   string
	Players map[string]*domain.PlayerState // ConnID -> состояние

	// Каналы коммуникации
	CommandChan chan domain.InternalCommand // Команды от игроков
	JoinChan    chan JoinRequest            // Вход новых игроков
	LeaveChan   chan LeaveRequest           // Выход игроков

	// Ссылка на Service для доступа к Hub и хендлерам
	Service *GameService

	CurrentTick int64

	// Групповые рассылки копятся между тиками и уходят пачкой
	// на границе тика
	pending []pendingBroadcast

	journal  *journal.Writer
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	log      *logrus.Entry
}

func NewInstance(group string, service *GameService, jw *journal.Writer) *Instance {
	return &Instance{
		Group:       group,
		Players:     make(map[string]*domain.PlayerState),
		CommandChan: make(chan domain.InternalCommand, 100),
		JoinChan:    make(chan JoinRequest, 10),
		LeaveChan:   make(chan LeaveRequest, 10),
		Service:     service,
		journal:     jw,
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
		log:         logger.WithComponent("engine").WithField("group", group),
	}
}

// Run запускает цикл ЭТОЙ группы.
func (i *Instance) Run() {
	i.log.Info("Цикл группы запущен")

	heartbeat := time.NewTicker(i.Service.Cfg.TickInterval)
	checkpoint := time.NewTicker(i.Service.Cfg.SaveInterval)
	defer heartbeat.Stop()
	defer checkpoint.Stop()

	for {
		select {
		case req := <-i.JoinChan:
			i.addPlayer(req)

		case req := <-i.LeaveChan:
			i.removePlayer(req)

		case cmd := <-i.CommandChan:
			i.executeCommand(cmd)

		case <-heartbeat.C:
			i.tick()

		case <-checkpoint.C:
			i.checkpoint()

		case <-i.quit:
			i.flush()
			i.log.Info("Цикл группы остановлен")
			close(i.done)
			return
		}
	}
}

// Stop останавливает цикл и дожидается финального сброса состояний.
// Повторные вызовы безопасны.
func (i *Instance) Stop() {
	i.stopOnce.Do(func() { close(i.quit) })
	<-i.done
}

// addPlayer вводит игрока в группу: снапшот ему, рассылка остальным.
func (i *Instance) addPlayer(req JoinRequest) {
	i.Players[req.ConnID] = req.Player

	i.Service.Hub.SendTo(req.ConnID,
		api.Event(domain.EventPlayerDetails, actions.BuildPlayerDetails(req.Player)))

	i.broadcastLater(api.Event(domain.EventPlayerJoined, api.PlayerJoinedData{
		PlayerID: req.Player.PlayerID,
		Username: req.Player.Username,
		Level:    req.Player.Level,
	}), req.ConnID)

	i.log.WithFields(logrus.Fields{
		"player_id": req.Player.PlayerID,
		"conn_id":   req.ConnID,
		"players":   len(i.Players),
	}).Info("Игрок вошел в группу")
}

// removePlayer выводит игрока: синхронное сохранение, потом рассылка.
func (i *Instance) removePlayer(req LeaveRequest) {
	defer func() {
		if req.Done != nil {
			close(req.Done)
		}
	}()

	p, ok := i.Players[req.ConnID]
	if !ok {
		return
	}
	delete(i.Players, req.ConnID)

	if err := i.Service.Checkpointer.SaveSync(p); err != nil {
		i.log.WithError(err).WithField("player_id", p.PlayerID).
			Error("Состояние не сохранилось при выходе")
	}

	i.broadcastLater(api.Event(domain.EventPlayerLeft, api.PlayerLeftData{
		PlayerID: p.PlayerID,
	}), "")

	i.log.WithFields(logrus.Fields{
		"player_id": p.PlayerID,
		"players":   len(i.Players),
	}).Info("Игрок покинул группу")
}

// executeCommand выполняет команду в контексте группы
func (i *Instance) executeCommand(cmd domain.InternalCommand) {
	player, ok := i.Players[cmd.ConnID]
	if !ok {
		return // соединение уже покинуло группу
	}

	handler, ok := i.Service.actionHandlers[cmd.Action]
	if !ok {
		return
	}

	// Мутирующие команды дописываются в журнал ДО применения
	if cmd.Action.IsMutating() && i.journal != nil {
		if err := i.journal.Append(player.PlayerID, cmd.Action, cmd.Payload); err != nil {
			i.log.WithError(err).Warn("Команда не записалась в журнал")
		}
	}

	ctx := handlers.Context{
		Ctx:    context.Background(),
		Player: player,
		Group:  i.Group,
		Store:  i.Service.Store,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		i.rejectCommand(cmd, player, err)
		return
	}

	// Каждая успешная мутация тут же уходит на диск фоновым
	// снапшотом. Ошибка записи не мешает циклу: память авторитетна,
	// чекпоинт или выход из сессии допишут.
	if cmd.Action.IsMutating() {
		i.Service.Checkpointer.SaveAsync(i.Group, []*domain.PlayerState{player.Clone()})
	}

	for _, event := range result.Events {
		i.Service.Hub.SendTo(cmd.ConnID, event)
	}
	for _, event := range result.Broadcasts {
		i.broadcastLater(event, cmd.ConnID)
	}
}

// rejectCommand превращает ошибку хендлера в событие *_failed.
func (i *Instance) rejectCommand(cmd domain.InternalCommand, player *domain.PlayerState, err error) {
	if !domain.IsValidation(err) {
		i.log.WithError(err).WithFields(logrus.Fields{
			"action":    cmd.Action.String(),
			"player_id": player.PlayerID,
		}).Error("Команда упала не на валидации")
	}

	failEvent := domain.FailureEventFor(cmd.Action)
	if failEvent == "" {
		return
	}
	i.Service.Hub.SendTo(cmd.ConnID, api.Failure(failEvent, err.Error()))
}

// tick - сердцебиение: накопленные рассылки уходят в группу.
func (i *Instance) tick() {
	i.CurrentTick++

	if len(i.pending) == 0 {
		return
	}
	for _, b := range i.pending {
		i.Service.Hub.BroadcastGroup(i.Group, b.event, b.except)
	}
	i.pending = i.pending[:0]
}

func (i *Instance) broadcastLater(event api.ServerEvent, exceptConnID string) {
	i.pending = append(i.pending, pendingBroadcast{event: event, except: exceptConnID})
}

// checkpoint снимает копии всех состояний и отдает их фоновому сбросу.
func (i *Instance) checkpoint() {
	snapshots := make([]*domain.PlayerState, 0, len(i.Players))
	for _, p := range i.Players {
		snapshots = append(snapshots, p.Clone())
	}
	i.Service.Checkpointer.SaveAsync(i.Group, snapshots)
}

// flush синхронно сохраняет всех при останове сервера.
func (i *Instance) flush() {
	for _, p := range i.Players {
		if err := i.Service.Checkpointer.SaveSync(p); err != nil {
			i.log.WithError(err).WithField("player_id", p.PlayerID).
				Error("Состояние не сохранилось при останове")
		}
	}
}
