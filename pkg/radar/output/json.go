// Package output hands finished radars to their consumers.
package output

import (
	"encoding/json"
	"io"

	"github.com/radargen/radargen/pkg/radar/models"
)

// minCanvasSize is the smallest canvas the plot stays legible at.
const minCanvasSize = 620

// headerHeight is the vertical space reserved above the plot.
const headerHeight = 133

// CanvasSize derives the square canvas hint from the viewport height: the
// viewport minus the header band, floored at the minimum size.
func CanvasSize(viewportHeight int) int {
	if size := viewportHeight - headerHeight; size > minCanvasSize {
		return size
	}
	return minCanvasSize
}

// Renderer consumes a finished radar together with its canvas size hint.
type Renderer interface {
	Render(size int, r *models.Radar) error
}

// ToJSON encodes a radar for the JavaScript plot renderer.
func ToJSON(r *models.Radar, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// JSONRenderer writes the radar and its size hint as a JSON document.
type JSONRenderer struct {
	// W receives the document.
	W io.Writer
	// Pretty toggles indented output.
	Pretty bool
}

// Render implements Renderer. The size hint travels inside the document so
// the consumer does not re-derive it.
func (j *JSONRenderer) Render(size int, r *models.Radar) error {
	doc := struct {
		Size  int           `json:"size"`
		Radar *models.Radar `json:"radar"`
	}{Size: size, Radar: r}

	var (
		data []byte
		err  error
	)
	if j.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = j.W.Write(data)
	return err
}
