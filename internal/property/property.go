// Package property provides the property domain model and its text rendering.
package property

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which sort of property a record describes.
type Kind string

const (
	KindResidential Kind = "Residential"
	KindCommercial  Kind = "Commercial"
)

// Kinds lists the selectable property kinds in display order.
var Kinds = []Kind{KindResidential, KindCommercial}

// ParseKind maps a form value to a Kind. An empty value selects the first
// choice, matching the form's default selection.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.TrimSpace(s)) {
	case "", KindResidential:
		return KindResidential, nil
	case KindCommercial:
		return KindCommercial, nil
	}
	return "", fmt.Errorf("unknown property type %q", s)
}

// Label returns the heading used when describing a property of this kind.
func (k Kind) Label() string {
	return string(k) + " Property"
}

// Property is a single listed property. Price is in dollars and Area in square feet.
type Property struct {
	Kind      Kind     `json:"kind"`
	Address   string   `json:"address"`
	Price     float64  `json:"price"`
	Area      float64  `json:"area"`
	Status    string   `json:"status"`
	Amenities []string `json:"amenities"`
}

// Describe renders the property as labelled lines.
func (p *Property) Describe() string {
	var b strings.Builder
	b.WriteString(p.Kind.Label() + ":\n")
	b.WriteString("Address: " + p.Address + "\n")
	b.WriteString("Price: $" + FormatAmount(p.Price) + "\n")
	b.WriteString("Area: " + FormatAmount(p.Area) + " sqft\n")
	b.WriteString("Status: " + p.Status + "\n")
	b.WriteString("Amenities: " + strings.Join(p.Amenities, ", "))
	return b.String()
}

// ParseAmenities splits a comma-separated list, trimming each entry and
// dropping empty ones. Order is preserved.
func ParseAmenities(s string) []string {
	amenities := []string{}
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}
	return amenities
}

// FormatAmount renders a decimal in its shortest form, always keeping at
// least one fractional digit (250000 -> "250000.0").
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
