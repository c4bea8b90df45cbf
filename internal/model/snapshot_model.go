package model

// RecommendationSnapshot is a persisted result of a prior classification run,
// consumed later by the highlighter. Name entries are free-form nutrient names
// and are not guaranteed to match graph node identifiers exactly.
// CreatedAt is unix milliseconds.
type RecommendationSnapshot struct {
	ID           string   `json:"id"`
	Deficiencies []string `json:"deficiencies"`
	HighRisk     []string `json:"highRisk"`
	NetworkNotes []string `json:"networkNotes"`
	CreatedAt    int64    `json:"createdAt"`
}
