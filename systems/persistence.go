package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"

	"github.com/automoto/gridvale/components"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	InputMode       int  `json:"inputMode"`
}

// SavedSlot is one save file: who you are and how many dummies you've
// flattened.
type SavedSlot struct {
	PlayerName     string `json:"playerName"`
	CharacterIndex int    `json:"characterIndex"`
	CharacterName  string `json:"characterName"`
	Score          int    `json:"score"`
}

// SlotCount is the number of save files on the file select screen.
const SlotCount = 3

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and save-slot
// storage. Failure is non-fatal: the game runs without persistence.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gridvale",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		InputMode:       s.InputMode,
	}
	_ = SaveSettings(saved)
}

func slotKey(index int) string {
	return fmt.Sprintf("slot%d", index)
}

// LoadSlot loads one save slot. A missing or unreadable slot returns nil.
func LoadSlot(index int) (*SavedSlot, error) {
	if !gdataInitialized || gdataManager == nil || index < 0 || index >= SlotCount {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(slotKey(index))
	if err != nil {
		log.Printf("Warning: Could not load save slot %d: %v", index, err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var slot SavedSlot
	if err := json.Unmarshal(data, &slot); err != nil {
		log.Printf("Warning: Could not parse save slot %d: %v", index, err)
		return nil, err
	}
	return &slot, nil
}

// SaveSlot writes one save slot to disk.
func SaveSlot(index int, slot *SavedSlot) error {
	if !gdataInitialized || gdataManager == nil || index < 0 || index >= SlotCount {
		return nil
	}

	data, err := json.Marshal(slot)
	if err != nil {
		log.Printf("Warning: Could not serialize save slot %d: %v", index, err)
		return err
	}
	if err := gdataManager.SaveItem(slotKey(index), data); err != nil {
		log.Printf("Warning: Could not save slot %d: %v", index, err)
		return err
	}
	return nil
}

// ClearSlot removes a save slot.
func ClearSlot(index int) error {
	if !gdataInitialized || gdataManager == nil || index < 0 || index >= SlotCount {
		return nil
	}
	if err := gdataManager.SaveItem(slotKey(index), nil); err != nil {
		log.Printf("Warning: Could not clear save slot %d: %v", index, err)
		return err
	}
	return nil
}
