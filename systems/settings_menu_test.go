package systems

import (
	"testing"

	cfg "github.com/automoto/gridvale/config"
)

func TestSettingsFromSavedClampsStoredIndexes(t *testing.T) {
	tests := []struct {
		name           string
		saved          SavedSettings
		wantResolution int
		wantInputMode  int
	}{
		{
			name:           "valid save passes through",
			saved:          SavedSettings{ResolutionIndex: 0, InputMode: 1},
			wantResolution: 0,
			wantInputMode:  1,
		},
		{
			name:           "resolution past the list resets to default",
			saved:          SavedSettings{ResolutionIndex: 5},
			wantResolution: cfg.SettingsMenu.DefaultResolutionIndex,
			wantInputMode:  0,
		},
		{
			name:           "negative resolution resets to default",
			saved:          SavedSettings{ResolutionIndex: -1},
			wantResolution: cfg.SettingsMenu.DefaultResolutionIndex,
			wantInputMode:  0,
		},
		{
			name:           "input mode past the list resets to keyboard",
			saved:          SavedSettings{InputMode: 99},
			wantResolution: 0,
			wantInputMode:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := settingsFromSaved(&tt.saved)
			if got.ResolutionIndex != tt.wantResolution {
				t.Errorf("ResolutionIndex = %d, want %d", got.ResolutionIndex, tt.wantResolution)
			}
			if got.InputMode != tt.wantInputMode {
				t.Errorf("InputMode = %d, want %d", got.InputMode, tt.wantInputMode)
			}
		})
	}
}

func TestSettingsFromSavedKeepsFullscreen(t *testing.T) {
	got := settingsFromSaved(&SavedSettings{Fullscreen: true, ResolutionIndex: 42})
	if !got.Fullscreen {
		t.Error("Fullscreen flag should survive index clamping")
	}
}
