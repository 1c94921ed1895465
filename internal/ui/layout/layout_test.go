package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{120, 40, false},
		{79, 24, true},
		{80, 23, true},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Assessment", "emp-1", 100)
	footer := RenderFooter([]KeyHint{{"esc", "back"}, {"enter", "select"}}, 100)
	frame := RenderFrame(header, "body", footer, 100, 30)

	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
	for _, want := range []string{"Legacy Ready", "Assessment", "emp-1", "esc", "select", "body"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(60, 20)
	if !strings.Contains(msg, "currently 60 x 20") {
		t.Errorf("message = %q", msg)
	}
}
