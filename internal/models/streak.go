package models

// StreakState is the persisted run of consecutive wins.
type StreakState struct {
	Count int `json:"count"`
}
