package components

import (
	"strings"
	"testing"
)

func TestProgressBar_Fraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 10, 0},
		{5, 10, 0.5},
		{10, 10, 1},
		{12, 10, 1},
		{3, 0, 0},
	}
	for _, tt := range tests {
		got := NewProgressBar(tt.done, tt.total, 40).Fraction()
		if got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestProgressBar_ViewShowsCounter(t *testing.T) {
	view := NewProgressBar(3, 8, 40).View()
	if !strings.Contains(view, "3/8") {
		t.Errorf("view %q missing counter", view)
	}
}
