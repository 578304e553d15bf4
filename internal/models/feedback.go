package models

type Direction string

const (
	DirectionNone     Direction = ""
	DirectionTooEarly Direction = "too_early"
	DirectionTooLate  Direction = "too_late"
)

// Tier buckets the distance between a guess and the answer.
type Tier string

const (
	TierExact    Tier = "exact"
	TierClose    Tier = "close"
	TierModerate Tier = "moderate"
	TierFar      Tier = "far"
)

// Feedback describes how a single recorded guess compares to the answer.
type Feedback struct {
	Guess     int       `json:"guess"`
	Exact     bool      `json:"exact"`
	Direction Direction `json:"direction,omitempty"`
	Distance  int       `json:"distance"`
	Tier      Tier      `json:"tier"`
}
