package version

import "testing"

func TestCalculateBuildID(t *testing.T) {
	defer func() { BuildDate = "" }()

	tests := []struct {
		date    string
		want    int
		wantErr bool
	}{
		{"2024-03-01", 0, false},
		{"2024-03-02", 1, false},
		{"2024-03-31", 30, false},
		{"2023-12-31", 0, true}, // до эпохи
		{"not-a-date", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		BuildDate = tt.date
		got, err := CalculateBuildID()
		if (err != nil) != tt.wantErr {
			t.Errorf("CalculateBuildID(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("CalculateBuildID(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestInfo_Uncalculated(t *testing.T) {
	BuildDate = ""
	info := Info()
	if info.Calculated {
		t.Error("Empty BuildDate must not calculate")
	}
	if info.Error == "" {
		t.Error("Expected error text in info")
	}
}
