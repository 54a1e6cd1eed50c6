package models

// Plan is a read-only pricing tier. The plan catalog is fixed at boot and
// not editable through the API.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Features []string `json:"features"`
	MaxOtt   int      `json:"maxOtt"`
	Popular  bool     `json:"popular,omitempty"`
}
