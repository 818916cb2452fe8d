package domain

// Company is a static reference entity, seeded at startup and read-only
// thereafter.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
}
