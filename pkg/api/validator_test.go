package api

import "testing"

func TestItemPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload ItemPayload
		wantErr bool
	}{
		{"valid weapon slot", ItemPayload{ItemID: "sword-1", Slot: 0}, false},
		{"valid legs slot", ItemPayload{ItemID: "greaves-1", Slot: 7}, false},
		{"negative slot", ItemPayload{ItemID: "sword-1", Slot: -1}, true},
		{"slot out of range", ItemPayload{ItemID: "sword-1", Slot: 8}, true},
		{"missing item id", ItemPayload{Slot: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSpellPayload_Validate(t *testing.T) {
	if err := (SpellPayload{SpellID: "fireball", Slot: 4}).Validate(); err != nil {
		t.Errorf("Valid payload rejected: %v", err)
	}
	if err := (SpellPayload{Slot: 2}).Validate(); err != nil {
		t.Errorf("unequip_spell payload has no spellId, must pass: %v", err)
	}
	if err := (SpellPayload{SpellID: "fireball", Slot: 5}).Validate(); err == nil {
		t.Error("Slot 5 must be rejected")
	}
}

func TestExperiencePayload_Validate(t *testing.T) {
	if err := (ExperiencePayload{Amount: 100}).Validate(); err != nil {
		t.Errorf("Valid amount rejected: %v", err)
	}
	if err := (ExperiencePayload{Amount: 0}).Validate(); err == nil {
		t.Error("Zero amount must be rejected")
	}
	if err := (ExperiencePayload{Amount: -5}).Validate(); err == nil {
		t.Error("Negative amount must be rejected")
	}
}

func TestJoinPayload_Validate(t *testing.T) {
	if err := (JoinPayload{Token: "abc"}).Validate(); err != nil {
		t.Errorf("Valid token rejected: %v", err)
	}
	if err := (JoinPayload{}).Validate(); err == nil {
		t.Error("Empty token must be rejected")
	}
}
