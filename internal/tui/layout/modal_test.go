package layout

import "testing"

func TestModalConfig_Width(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		percent       int
		want          int
	}{
		{"wide terminal takes percent", 200, 40, 80},
		{"narrow percent grows to min", 100, 40, 50},
		{"large percent stops at max", 300, 60, 90},
		{"keeps a margin on small terminals", 40, 40, 36},
		{"never below one column", 3, 40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Width(tt.terminalWidth, tt.percent); got != tt.want {
				t.Errorf("Width(%d, %d) = %d, want %d", tt.terminalWidth, tt.percent, got, tt.want)
			}
		})
	}
}

func TestListWindow(t *testing.T) {
	tests := []struct {
		name                      string
		maxVisible, cursor, total int
		wantStart, wantEnd        int
	}{
		{"short list", 8, 3, 5, 0, 5},
		{"cursor on last visible row", 8, 7, 20, 0, 8},
		{"cursor scrolled past page", 8, 10, 20, 3, 11},
		{"cursor on last entry", 8, 19, 20, 12, 20},
		{"empty list", 8, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ListWindow(tt.maxVisible, tt.cursor, tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ListWindow(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.maxVisible, tt.cursor, tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
