package entity

// Orchid is a catalog product. The backend serves it under several loose
// field spellings; the HTTP layer adapts those into this one shape before
// anything else sees the data.
type Orchid struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Natural     bool      `json:"natural"`
	Available   bool      `json:"available"`
	Category    *Category `json:"category,omitempty"`
}

// Category groups orchids in the catalog.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
