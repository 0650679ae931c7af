package network

import (
	"testing"

	"github.com/danielldt/unisonLegends.50/pkg/api"
)

func TestBroadcaster_SendTo(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("conn-1", "main")

	b.SendTo("conn-1", api.Event("ping", nil))

	select {
	case ev := <-ch:
		if ev.Type != "ping" {
			t.Errorf("Type = %q, want ping", ev.Type)
		}
	default:
		t.Fatal("Event not delivered")
	}
}

func TestBroadcaster_GroupIsolation(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Register("conn-1", "main")
	ch2 := b.Register("conn-2", "main")
	ch3 := b.Register("conn-3", "other")

	b.BroadcastGroup("main", api.Event("ping", nil), "conn-1")

	if len(ch1) != 0 {
		t.Error("Excluded connection received the broadcast")
	}
	if len(ch2) != 1 {
		t.Error("Group member missed the broadcast")
	}
	if len(ch3) != 0 {
		t.Error("Broadcast leaked into another group")
	}
}

func TestBroadcaster_Unregister(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("conn-1", "main")

	b.Unregister("conn-1")

	if _, ok := <-ch; ok {
		t.Error("Channel must be closed after Unregister")
	}
	if b.HasSubscriber("conn-1") {
		t.Error("Subscriber still present")
	}
	// Повторный Unregister безопасен
	b.Unregister("conn-1")
}

func TestBroadcaster_ReRegisterClosesOld(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("conn-1", "main")
	_ = b.Register("conn-1", "main")

	if _, ok := <-old; ok {
		t.Error("Old channel must be closed on re-register")
	}
	if b.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount = %d, want 1", b.SubscriberCount())
	}
}
