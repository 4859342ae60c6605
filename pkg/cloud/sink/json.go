package sink

import (
	"encoding/json"

	"github.com/matzehuels/wordcloud/pkg/cloud"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	width, height int
	gridSize      int
	seed          uint64
	shape         string
	status        string
	stats         *cloud.Stats
}

// WithJSONSize records the surface dimensions in pixels.
func WithJSONSize(w, h int) JSONOption {
	return func(r *jsonRenderer) { r.width, r.height = w, h }
}

// WithJSONGridSize records the cell size the cloud was placed with.
func WithJSONGridSize(g int) JSONOption { return func(r *jsonRenderer) { r.gridSize = g } }

// WithJSONSeed records the random seed, enabling reproducible re-rendering.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// WithJSONShape records the shape name.
func WithJSONShape(s string) JSONOption { return func(r *jsonRenderer) { r.shape = s } }

// WithJSONRun records the final status and counters of the run.
func WithJSONRun(status cloud.Status, stats cloud.Stats) JSONOption {
	return func(r *jsonRenderer) { r.status = status.String(); r.stats = &stats }
}

type jsonOutput struct {
	Width    int        `json:"width,omitempty"`
	Height   int        `json:"height,omitempty"`
	GridSize int        `json:"grid_size,omitempty"`
	Seed     uint64     `json:"seed,omitempty"`
	Shape    string     `json:"shape,omitempty"`
	Status   string     `json:"status,omitempty"`
	Stats    *jsonStats `json:"stats,omitempty"`
	Words    []jsonWord `json:"words"`
}

type jsonStats struct {
	Processed int `json:"processed"`
	Drawn     int `json:"drawn"`
	Skipped   int `json:"skipped"`
	Rejected  int `json:"rejected"`
}

type jsonWord struct {
	Word       string            `json:"word"`
	Weight     float64           `json:"weight"`
	X          int               `json:"x"`
	Y          int               `json:"y"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	FontSize   float64           `json:"font_size"`
	Rotation   float64           `json:"rotation,omitempty"`
	Color      string            `json:"color,omitempty"`
	Classes    string            `json:"classes,omitempty"`
	Distance   int               `json:"distance"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// RenderJSON exports the placements of a run as a pretty-printed JSON
// document, in drawing order. Each word carries its pixel bounding
// rectangle, so the output can drive hit testing or re-rendering elsewhere.
func RenderJSON(placements []*cloud.Placement, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:    r.width,
		Height:   r.height,
		GridSize: r.gridSize,
		Seed:     r.seed,
		Shape:    r.shape,
		Status:   r.status,
		Words:    buildJSONWords(placements),
	}
	if r.stats != nil {
		out.Stats = &jsonStats{
			Processed: r.stats.Processed,
			Drawn:     r.stats.Drawn,
			Skipped:   r.stats.Skipped,
			Rejected:  r.stats.Rejected,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONWords(placements []*cloud.Placement) []jsonWord {
	words := make([]jsonWord, 0, len(placements))
	for _, p := range placements {
		if p == nil {
			continue
		}
		words = append(words, jsonWord{
			Word:       p.Item.Word,
			Weight:     p.Item.Weight,
			X:          p.Rect.X,
			Y:          p.Rect.Y,
			Width:      p.Rect.W,
			Height:     p.Rect.H,
			FontSize:   p.FontSize,
			Rotation:   p.Rotation,
			Color:      p.Color,
			Classes:    p.Classes,
			Distance:   p.Distance,
			Attributes: p.Item.Attributes,
		})
	}
	return words
}
