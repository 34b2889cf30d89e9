package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/honeycomb/pkg/layout"
)

// Document is the JSON artifact: the solved measurements, the chronological
// adjustment log, and every cell of the grid in row-major order.
type Document struct {
	Derived     layout.Derived      `json:"derived"`
	Adjustments []layout.Adjustment `json:"adjustments,omitempty"`
	Cells       []layout.Cell       `json:"cells"`
}

// RenderJSON encodes the layout as an indented JSON document.
func RenderJSON(d layout.Derived, adjustments []layout.Adjustment, cells []layout.Cell) ([]byte, error) {
	doc := Document{
		Derived:     d,
		Adjustments: adjustments,
		Cells:       cells,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseJSON decodes a document produced by RenderJSON.
func ParseJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode layout: %w", err)
	}
	return doc, nil
}
