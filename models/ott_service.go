package models

// OttService is a catalog entry for a shareable streaming service.
// The catalog has no ownership concept; only admins may mutate it.
type OttService struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Price       int    `json:"price"`
	MaxMembers  int    `json:"maxMembers"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Description string `json:"description"`
}
