package domain

// BadgeTier is a streak milestone level.
type BadgeTier string

const (
	TierSpark    BadgeTier = "Spark"
	TierGlow     BadgeTier = "Glow"
	TierMedal    BadgeTier = "Medal"
	TierChampion BadgeTier = "Champion"
)

// Badge is derived from a streak count on every read and never stored.
type Badge struct {
	Activity    string    `json:"activity"`
	Tier        BadgeTier `json:"tier"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
}
