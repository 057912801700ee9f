// internal/models/recommendation.go
package models

import "time"

// Recommendation is a stored recommendation run: the survey that was
// submitted and the gifts that came back. UserID is empty for anonymous
// runs, which are served but not persisted.
type Recommendation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Survey    Survey    `json:"survey"`
	Gifts     []Gift    `json:"gifts"`
	Degraded  bool      `json:"degraded"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecommendationStats is the admin dashboard summary.
type RecommendationStats struct {
	Total     int64 `json:"total"`
	Today     int64 `json:"today"`
	ThisMonth int64 `json:"thisMonth"`
}
