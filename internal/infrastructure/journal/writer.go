package journal

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/danielldt/unisonLegends.50/internal/domain"
)

const (
	MagicHeader string = `ULSJ` // 4 байта
	Version1    uint32 = 1
)

// FileHeader - точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов
// и строк, только массивы и числа.
type FileHeader struct {
	Magic     [4]byte // 4 байта
	Version   uint32  // 4 байта
	CreatedAt int64   // 8 байт
	GroupLen  uint16  // 2 байта, следом идут байты имени группы
}

// EntryHeader - заголовок каждой записи команды.
type EntryHeader struct {
	Timestamp   int64  // 8
	ActionType  uint8  // 1
	PlayerIDLen uint8  // 1
	PayloadLen  uint16 // 2
}

// Entry - одна зафиксированная мутирующая команда.
type Entry struct {
	Timestamp int64
	Action    domain.ActionType
	PlayerID  string
	Payload   json.RawMessage
}

// Service раздает журналы команд по группам сессий. Журнал - это
// аудиторский след мутаций между чекпоинтами: каждая мутирующая
// команда дописывается до применения.
type Service struct {
	Dir string

	mu      sync.Mutex
	writers map[string]*Writer
}

func NewService(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	return &Service{Dir: dir, writers: make(map[string]*Writer)}, nil
}

// ForGroup возвращает журнал группы, открывая файл при первом обращении.
func (s *Service) ForGroup(group string) (*Writer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.writers[group]; ok {
		return w, nil
	}

	filename := fmt.Sprintf("journal_%s_%d.ulsj", group, time.Now().Unix())
	w, err := newWriter(filepath.Join(s.Dir, filename), group)
	if err != nil {
		return nil, err
	}
	s.writers[group] = w
	return w, nil
}

// CloseAll закрывает все открытые журналы (останов сервера).
func (s *Service) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for group, w := range s.writers {
		_ = w.Close()
		delete(s.writers, group)
	}
}

// Writer - журнал одной группы. Используется только из цикла группы,
// поэтому блокировок нет.
type Writer struct {
	f *os.File
}

func newWriter(path, group string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}

	groupBytes := []byte(group)
	if len(groupBytes) > 65535 {
		f.Close()
		return nil, fmt.Errorf("group name too long: %d", len(groupBytes))
	}

	header := FileHeader{
		Version:   Version1,
		CreatedAt: time.Now().Unix(),
		GroupLen:  uint16(len(groupBytes)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(f, binary.LittleEndian, &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := f.Write(groupBytes); err != nil {
		f.Close()
		return nil, err
	}

	return &Writer{f: f}, nil
}

// Append дописывает одну команду. Заголовок пишется структурой целиком,
// динамические хвосты (ID игрока и payload) следом.
func (w *Writer) Append(playerID string, action domain.ActionType, payload json.RawMessage) error {
	idBytes := []byte(playerID)
	if len(idBytes) > 255 {
		return fmt.Errorf("player id too long: %d", len(idBytes))
	}
	if len(payload) > 65535 {
		return fmt.Errorf("payload too long: %d", len(payload))
	}

	header := EntryHeader{
		Timestamp:   time.Now().UnixMilli(),
		ActionType:  uint8(action),
		PlayerIDLen: uint8(len(idBytes)),
		PayloadLen:  uint16(len(payload)),
	}

	if err := binary.Write(w.f, binary.LittleEndian, &header); err != nil {
		return err
	}
	if _, err := w.f.Write(idBytes); err != nil {
		return err
	}
	if len(payload) > 0 {
		if _, err := w.f.Write(payload); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Close() error {
	return w.f.Close()
}
