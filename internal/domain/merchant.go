package domain

// Affinity bounds
const (
	MinAffinity = 0
	MaxAffinity = 100
)

// Merchant is a buyer with crop specialties. Affinity is the only mutable field.
type Merchant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Affinity    int      `json:"affinity"`
}
