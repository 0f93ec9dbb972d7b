// Package geodata holds the static geography reference sets used by the
// geography dimension. The subdivision lists live in embedded YAML files
// rather than code so reference data stays separate from transform logic.
package geodata

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed india.yaml unitedstates.yaml canada.yaml
var files embed.FS

// Subdivision is one state, province, or territory.
type Subdivision struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Capital string `yaml:"capital"`
	Status  string `yaml:"status"`
	ISOCode string `yaml:"iso_code"`
}

// RegionSet is a country's full subdivision list.
type RegionSet struct {
	Country      string        `yaml:"country"`
	Subdivisions []Subdivision `yaml:"subdivisions"`
}

// CountryIndia and friends are the closed set of country values.
const (
	CountryIndia        = "India"
	CountryUnitedStates = "United States"
	CountryCanada       = "Canada"
)

// Load parses the embedded reference sets. The order is fixed: India,
// United States, Canada. The combined row count does not depend on order
// volume.
func Load() ([]RegionSet, error) {
	names := []string{"india.yaml", "unitedstates.yaml", "canada.yaml"}

	sets := make([]RegionSet, 0, len(names))
	for _, name := range names {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var set RegionSet
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		if set.Country == "" || len(set.Subdivisions) == 0 {
			return nil, fmt.Errorf("reference set %s is incomplete", name)
		}
		sets = append(sets, set)
	}
	return sets, nil
}
