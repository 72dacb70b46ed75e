package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Palette represents an ordered collection of colours. Insertion order is
// the palette order and is semantically meaningful (e.g. gradient
// direction, extraction dominance).
type Palette struct {
	Colours []Colour

	// Counts holds per-colour pixel membership from extraction,
	// dominance-sorted. Nil for generated palettes.
	Counts []int
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colours []Colour) *Palette {
	return &Palette{Colours: colours}
}

// NewPaletteWithCounts creates a Palette carrying cluster pixel counts.
func NewPaletteWithCounts(colours []Colour, counts []int) *Palette {
	return &Palette{Colours: colours, Counts: counts}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Hexes returns the palette colours as hex strings.
func (p *Palette) Hexes() []string {
	out := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		out[i] = c.Hex
	}
	return out
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Colour, error) {
	if index < 0 || index >= len(p.Colours) {
		return Colour{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colours))
	}
	return p.Colours[index], nil
}

// paletteJSON is the JSON export shape: every representation of every
// colour, so consumers can render exports without recomputation.
type paletteJSON struct {
	Count   int      `json:"count"`
	Colours []Colour `json:"colours"`
	Pixels  []int    `json:"pixels,omitempty"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(paletteJSON{
		Count:   len(p.Colours),
		Colours: p.Colours,
		Pixels:  p.Counts,
	}, "", "  ")
}

// ToCSSVariables renders the palette as a :root block of CSS custom
// properties named prefix-1..prefix-n.
func (p *Palette) ToCSSVariables(prefix string) string {
	if prefix == "" {
		prefix = "colour"
	}
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range p.Colours {
		fmt.Fprintf(&b, "  --%s-%d: %s;\n", prefix, i+1, c.Hex)
	}
	b.WriteString("}\n")
	return b.String()
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		fmt.Fprintf(&b, "  %2d: %s (%s)\n", i+1, c.Hex, c.CSS.RGB)
	}
	return b.String()
}
