package components

import "github.com/yohamta/donburi"

// CharSelectData stores the character select screen state. The roster is laid
// out as a grid; SelectedIndex addresses it row-major.
type CharSelectData struct {
	SelectedIndex int
	Confirmed     bool
}

var CharSelect = donburi.NewComponentType[CharSelectData]()
