package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/wordcloud/pkg/cloud"
)

// WriteJSON encodes items as a JSON array of objects, the form read back
// by [ReadWords].
func WriteJSON(items []cloud.Item, w io.Writer) error {
	if items == nil {
		items = []cloud.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes items to a JSON file at path.
func ExportJSON(items []cloud.Item, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(items, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePlacements encodes the placements of a run as JSON, in drawing
// order.
func WritePlacements(placements []*cloud.Placement, w io.Writer) error {
	if placements == nil {
		placements = []*cloud.Placement{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(placements); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadPlacements decodes placements written by [WritePlacements].
func ReadPlacements(r io.Reader) ([]*cloud.Placement, error) {
	var ps []*cloud.Placement
	if err := json.NewDecoder(r).Decode(&ps); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ps, nil
}
