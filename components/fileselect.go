package components

import "github.com/yohamta/donburi"

// SlotSummary is what the file select screen shows for one save slot.
type SlotSummary struct {
	Occupied       bool
	PlayerName     string
	CharacterIndex int
	CharacterName  string
	Score          int
}

// FileSelectData stores the file select screen state
type FileSelectData struct {
	SelectedSlot int
	Slots        [3]SlotSummary
	// ConfirmingDelete is true while the "delete this save?" dialog is up.
	ConfirmingDelete bool
	ConfirmSelection int // 0 = No, 1 = Yes
}

var FileSelect = donburi.NewComponentType[FileSelectData]()
