// internal/models/gift.go
package models

// Gift is a single recommendation shown to the user. The JSON shape is the
// contract with the web frontend, so field names are fixed.
type Gift struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Reason      string   `json:"reason"`
	ImageURL    string   `json:"imageUrl"`
	PurchaseURL string   `json:"purchaseUrl"`
	Tags        []string `json:"tags,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	ReviewCount int      `json:"reviewCount,omitempty"`
}
