package entity

import "time"

// Chest is a timed reward container ("cofre"). Temps is the tier value
// supplied at creation; no expiry is computed server-side.
type Chest struct {
	ID        uint64
	IDUsuari  uint64
	Temps     int
	CreatedAt time.Time
}
