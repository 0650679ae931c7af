package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielldt/unisonLegends.50/internal/domain"
)

func TestJournal_RoundTrip(t *testing.T) {
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	w, err := svc.ForGroup("main")
	if err != nil {
		t.Fatalf("ForGroup failed: %v", err)
	}

	payload := json.RawMessage(`{"itemId":"sword-1","slot":0}`)
	if err := w.Append("p1", domain.ActionEquipItem, payload); err != nil {
		t.Fatal(err)
	}
	if err := w.Append("p2", domain.ActionGainExperience, json.RawMessage(`{"amount":100}`)); err != nil {
		t.Fatal(err)
	}
	if err := w.Append("p1", domain.ActionResetStats, nil); err != nil {
		t.Fatal(err)
	}
	svc.CloseAll()

	files, err := filepath.Glob(filepath.Join(svc.Dir, "journal_main_*.ulsj"))
	if err != nil || len(files) != 1 {
		t.Fatalf("Expected one journal file, got %v (%v)", files, err)
	}

	group, entries, err := Load(files[0])
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if group != "main" {
		t.Errorf("Group = %q, want main", group)
	}
	if len(entries) != 3 {
		t.Fatalf("Entries = %d, want 3", len(entries))
	}

	if entries[0].PlayerID != "p1" || entries[0].Action != domain.ActionEquipItem {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if string(entries[0].Payload) != string(payload) {
		t.Errorf("Payload = %s, want %s", entries[0].Payload, payload)
	}
	if entries[1].Action != domain.ActionGainExperience {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
	if len(entries[2].Payload) != 0 {
		t.Errorf("Expected empty payload, got %s", entries[2].Payload)
	}
}

func TestJournal_SameWriterPerGroup(t *testing.T) {
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer svc.CloseAll()

	w1, err := svc.ForGroup("main")
	if err != nil {
		t.Fatal(err)
	}
	w2, err := svc.ForGroup("main")
	if err != nil {
		t.Fatal(err)
	}
	if w1 != w2 {
		t.Error("Expected the same writer for the same group")
	}
}

// Падение сервера посреди записи не должно ломать чтение журнала -
// оборванный хвост просто отбрасывается.
func TestJournal_TruncatedTail(t *testing.T) {
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	w, err := svc.ForGroup("main")
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Append("p1", domain.ActionEquipItem, json.RawMessage(`{"slot":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := w.Append("p1", domain.ActionUnequipItem, json.RawMessage(`{"slot":1}`)); err != nil {
		t.Fatal(err)
	}
	svc.CloseAll()

	files, _ := filepath.Glob(filepath.Join(svc.Dir, "*.ulsj"))
	if len(files) != 1 {
		t.Fatal("Expected one journal file")
	}

	// Обрезаем последние 5 байт - вторая запись становится неполной
	info, err := os.Stat(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Truncate(files[0], info.Size()-5); err != nil {
		t.Fatal(err)
	}

	_, entries, err := Load(files[0])
	if err != nil {
		t.Fatalf("Load must survive a truncated tail: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Entries = %d, want 1 (the complete one)", len(entries))
	}
}
