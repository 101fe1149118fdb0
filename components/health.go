package components

import "github.com/yohamta/donburi"

// HealthData is hit points for the hero and the training dummies. The hero
// revives at full Max on reaching zero; dummies respawn at their marker.
type HealthData struct {
	Current int
	Max     int
}

// HealthBarData shows the small bar over a dummy after it takes a hit.
type HealthBarData struct {
	TimeToLive int // frames until the bar hides again
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
