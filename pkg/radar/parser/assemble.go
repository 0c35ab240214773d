package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/radargen/radargen/pkg/radar/models"
)

// MaxRings is the largest number of distinct ring names a radar document may
// declare.
const MaxRings = 4

// Assemble groups sanitized records into the radar aggregate. Ring order is
// assigned by first appearance across the records and capped at MaxRings;
// exceeding the cap is a MalformedDataError. Quadrants are created lazily in
// first-seen order, one per distinct quadrant value, with display names
// capitalized. A nil alternatives slice becomes an empty one.
func Assemble(records []Record, title, sheetName string, alternatives []string) (*models.Radar, error) {
	rings, ringsByName, err := collectRings(records)
	if err != nil {
		return nil, err
	}

	quadrants := make([]*models.Quadrant, 0, 4)
	quadrantsByValue := make(map[string]*models.Quadrant)
	for _, rec := range records {
		q, ok := quadrantsByValue[rec.Quadrant]
		if !ok {
			q = &models.Quadrant{Name: capitalize(rec.Quadrant)}
			quadrantsByValue[rec.Quadrant] = q
			quadrants = append(quadrants, q)
		}
		q.Add(&models.Entry{
			Name:        rec.Name,
			Ring:        ringsByName[rec.Ring],
			IsNew:       rec.IsNew,
			Topic:       rec.Topic,
			Description: rec.Description,
		})
	}

	if alternatives == nil {
		alternatives = []string{}
	}
	return &models.Radar{
		Title:                 title,
		Quadrants:             quadrants,
		Rings:                 rings,
		CurrentSheetName:      sheetName,
		AlternativeSheetNames: alternatives,
	}, nil
}

// collectRings builds the ring set in first-seen order and enforces the cap.
func collectRings(records []Record) ([]*models.Ring, map[string]*models.Ring, error) {
	var names []string
	seen := make(map[string]bool)
	for _, rec := range records {
		if !seen[rec.Ring] {
			seen[rec.Ring] = true
			names = append(names, rec.Ring)
		}
	}
	if len(names) > MaxRings {
		return nil, nil, models.NewMalformedDataError(
			"more than %d rings", MaxRings)
	}

	rings := make([]*models.Ring, len(names))
	byName := make(map[string]*models.Ring, len(names))
	for i, name := range names {
		r := &models.Ring{Name: name, Order: i}
		rings[i] = r
		byName[name] = r
	}
	return rings, byName, nil
}

// capitalize upper-cases the first rune and leaves the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
