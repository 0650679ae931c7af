package journal

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/danielldt/unisonLegends.50/internal/domain"
)

// Load читает журнал целиком: имя группы и все записи до конца файла.
// Количество записей в заголовке не хранится - журнал дописывается
// потоково и может оборваться на любом месте при падении сервера;
// обрыв посреди записи не считается ошибкой, хвост отбрасывается.
func Load(path string) (string, []Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (string, []Entry, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return "", nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return "", nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return "", nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	groupBuf := make([]byte, header.GroupLen)
	if _, err := io.ReadFull(r, groupBuf); err != nil {
		return "", nil, fmt.Errorf("failed to read group name: %w", err)
	}
	group := string(groupBuf)

	var entries []Entry
	for {
		var eh EntryHeader
		if err := binary.Read(r, binary.LittleEndian, &eh); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return "", nil, err
		}

		entry := Entry{
			Timestamp: eh.Timestamp,
			Action:    domain.ActionType(eh.ActionType),
		}

		idBuf := make([]byte, eh.PlayerIDLen)
		if _, err := io.ReadFull(r, idBuf); err != nil {
			break // оборванная запись
		}
		entry.PlayerID = string(idBuf)

		if eh.PayloadLen > 0 {
			entry.Payload = make([]byte, eh.PayloadLen)
			if _, err := io.ReadFull(r, entry.Payload); err != nil {
				break
			}
		} else {
			entry.Payload = json.RawMessage{}
		}

		entries = append(entries, entry)
	}

	return group, entries, nil
}
