package geodata

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	sets, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("Expected 3 reference sets, got %d", len(sets))
	}

	tests := []struct {
		country   string
		count     int
		isoPrefix string
	}{
		{country: CountryIndia, count: 38, isoPrefix: "IN-"},
		{country: CountryUnitedStates, count: 56, isoPrefix: "US-"},
		{country: CountryCanada, count: 13, isoPrefix: "CA-"},
	}

	for i, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			set := sets[i]
			if set.Country != tt.country {
				t.Errorf("Expected country %q at position %d, got %q", tt.country, i, set.Country)
			}
			if len(set.Subdivisions) != tt.count {
				t.Errorf("Expected %d subdivisions, got %d", tt.count, len(set.Subdivisions))
			}
			for _, sub := range set.Subdivisions {
				if sub.Code == "" || sub.Name == "" || sub.Status == "" {
					t.Errorf("Incomplete subdivision: %+v", sub)
				}
				if !strings.HasPrefix(sub.ISOCode, tt.isoPrefix) {
					t.Errorf("Subdivision %s has ISO code %q, want prefix %q",
						sub.Code, sub.ISOCode, tt.isoPrefix)
				}
			}
		})
	}
}

func TestLoadTotalRowCount(t *testing.T) {
	sets, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	total := 0
	for _, set := range sets {
		total += len(set.Subdivisions)
	}
	if total != 107 {
		t.Errorf("Expected 107 total subdivisions, got %d", total)
	}
}
