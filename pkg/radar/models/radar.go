package models

// Radar is the finished aggregate handed to a renderer. It is built in one
// shot from a fully validated source document; a radar is never constructed
// from partially ingested data.
type Radar struct {
	// Title is the resolved display title of the source document.
	Title string `json:"title"`
	// Quadrants holds the quadrants in the order their names first appeared.
	Quadrants []*Quadrant `json:"quadrants"`
	// Rings holds the adoption rings in first-seen order.
	Rings []*Ring `json:"rings"`
	// CurrentSheetName is the sheet tab the radar was built from. For
	// single-document sources it equals the document title.
	CurrentSheetName string `json:"currentSheetName"`
	// AlternativeSheetNames lists every sheet tab available in the source
	// document, including the current one. Never nil.
	AlternativeSheetNames []string `json:"alternativeSheetNames"`
}
