// Package airport serves the static airport catalogue used to pick origins and destinations.
package airport

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed airports.json
var catalogueJSON []byte

type Airport struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Catalogue is an immutable, city-ordered list of airports.
type Catalogue struct {
	airports []Airport
}

// NewCatalogue loads the embedded airport list.
func NewCatalogue() (*Catalogue, error) {
	var airports []Airport
	if err := json.Unmarshal(catalogueJSON, &airports); err != nil {
		return nil, fmt.Errorf("failed to load airport catalogue: %w", err)
	}

	return NewCatalogueFrom(airports), nil
}

func NewCatalogueFrom(airports []Airport) *Catalogue {
	sorted := make([]Airport, len(airports))
	copy(sorted, airports)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].City != sorted[j].City {
			return sorted[i].City < sorted[j].City
		}

		return sorted[i].Code < sorted[j].Code
	})

	return &Catalogue{airports: sorted}
}

// Search matches the query case-insensitively against code, city and name.
// An exact code match is listed first. An empty query returns every airport.
func (c *Catalogue) Search(query string) []Airport {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]Airport, 0, len(c.airports))
	if query == "" {
		return append(result, c.airports...)
	}

	var exact []Airport

	for _, a := range c.airports {
		if strings.ToLower(a.Code) == query {
			exact = append(exact, a)
			continue
		}

		if strings.Contains(strings.ToLower(a.Code), query) ||
			strings.Contains(strings.ToLower(a.City), query) ||
			strings.Contains(strings.ToLower(a.Name), query) {
			result = append(result, a)
		}
	}

	if len(exact) == 0 {
		return result
	}

	return append(exact, result...)
}
