// internal/event/types.go
package event

import "go-waypoint-defense/internal/types"

const (
	MoneyChanged   EventType = "MoneyChanged"   // Изменился баланс, Data: MoneyDelta
	LivesChanged   EventType = "LivesChanged"   // Изменились жизни, Data: LivesDelta
	MobSpawned     EventType = "MobSpawned"     // Data: MobRef
	MobKilled      EventType = "MobKilled"      // Моб убит, Data: MobRef
	MobLeaked      EventType = "MobLeaked"      // Моб дошёл до края, Data: MobRef
	WaveStarted    EventType = "WaveStarted"    // Data: WaveRef
	WaveCompleted  EventType = "WaveCompleted"  // Все мобы волны выпущены, Data: WaveRef
	ShooterPlaced  EventType = "ShooterPlaced"  // Data: ShooterRef
	ShooterRemoved EventType = "ShooterRemoved" // Data: ShooterRef
	GameOver       EventType = "GameOver"       // Жизни кончились
)

// MoneyDelta — данные MoneyChanged.
type MoneyDelta struct {
	Delta   int
	Balance int
}

// LivesDelta — данные LivesChanged.
type LivesDelta struct {
	Delta int
	Lives int
}

// MobRef описывает моба в событиях.
type MobRef struct {
	ID     types.EntityID
	Type   string
	Reward int
}

// WaveRef описывает волну в событиях.
type WaveRef struct {
	Index   int
	MobType string
	Count   int
}

// ShooterRef описывает стрелка в событиях.
type ShooterRef struct {
	ID    types.EntityID
	Type  string
	X, Y  float64
	Price int
}
