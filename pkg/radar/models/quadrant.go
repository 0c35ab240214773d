package models

// Quadrant represents one technology category on the radar and the entries
// that fall into it, in source order.
type Quadrant struct {
	// Name is the display name of the quadrant, capitalized.
	Name string `json:"name"`
	// Entries lists the entries of the quadrant in the order their source
	// rows appeared.
	Entries []*Entry `json:"entries"`
}

// Add appends an entry to the quadrant.
func (q *Quadrant) Add(e *Entry) {
	q.Entries = append(q.Entries, e)
}
