package cost

import "time"

// Record is one append-only snapshot of a product's ingredient cost.
type Record struct {
	ID        string    `json:"_id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Cost      float64   `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
}
