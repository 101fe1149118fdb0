package components

import (
	"testing"

	cfg "github.com/automoto/gridvale/config"
)

func TestGetActionEdgeDetection(t *testing.T) {
	tests := []struct {
		name     string
		previous bool
		current  bool
		want     ActionState
	}{
		{"held", true, true, ActionState{Pressed: true}},
		{"idle", false, false, ActionState{}},
		{"just pressed", false, true, ActionState{Pressed: true, JustPressed: true}},
		{"just released", true, false, ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := InputData{}
			d.Previous[cfg.ActionSwing] = tt.previous
			d.Current[cfg.ActionSwing] = tt.current

			if got := d.GetAction(cfg.ActionSwing); got != tt.want {
				t.Errorf("GetAction() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGetActionIsPerAction(t *testing.T) {
	d := InputData{}
	d.Current[cfg.ActionMoveLeft] = true

	if !d.GetAction(cfg.ActionMoveLeft).JustPressed {
		t.Error("expected MoveLeft to be just pressed")
	}
	if d.GetAction(cfg.ActionMoveRight).Pressed {
		t.Error("MoveRight should be unaffected")
	}
}
