package exercises

// Exercise is one entry of the shared exercise catalog. The catalog is
// read-only over the API and seeded out of band.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Equipment   string `json:"equipment,omitempty"`
	Description string `json:"description,omitempty"`
}

// Filter narrows a catalog listing.
type Filter struct {
	MuscleGroup string
	Search      string
}
