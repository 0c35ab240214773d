package models

// Ring represents one adoption stage on the radar, such as Adopt or Hold.
// Rings are owned by the radar; entries reference them by pointer so that
// every entry in the same ring shares one instance.
type Ring struct {
	// Name is the ring name exactly as it appears in the source rows.
	Name string `json:"name"`
	// Order is the zero-based position of the ring, assigned by first
	// appearance across the source rows.
	Order int `json:"order"`
}
