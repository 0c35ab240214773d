// Package models defines the technology radar data structures and the
// error taxonomy shared by the ingestion pipeline.
package models

// Entry represents a single technology positioned on the radar.
type Entry struct {
	// Name is the technology name.
	Name string `json:"name"`
	// Ring points at the adoption ring the entry belongs to.
	Ring *Ring `json:"ring"`
	// IsNew reports whether the entry is new in this radar edition.
	IsNew bool `json:"isNew"`
	// Topic is an optional free-form grouping label.
	Topic string `json:"topic,omitempty"`
	// Description is the text shown when the entry is selected.
	Description string `json:"description"`
}
