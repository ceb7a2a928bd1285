package services

import (
	"context"
	"strings"
	"testing"
)

func TestSearchAirportsExactCode(t *testing.T) {
	g := testGDS(t)
	got := g.SearchAirports(context.Background(), "JFK")
	if len(got) == 0 {
		t.Fatal("no results for JFK")
	}
	if got[0].IataCode != "JFK" || got[0].Relevance != 100 {
		t.Fatalf("top result = %+v, want JFK at relevance 100", got[0])
	}
	if got[0].SubType != "AIRPORT" {
		t.Errorf("subType = %s, want AIRPORT", got[0].SubType)
	}
	if got[0].Name != strings.ToUpper(got[0].Name) {
		t.Errorf("name %q not upper-cased", got[0].Name)
	}
}

func TestSearchAirportsByCity(t *testing.T) {
	g := testGDS(t)
	got := g.SearchAirports(context.Background(), "chicago")
	if len(got) == 0 {
		t.Fatal("no results for chicago")
	}
	for _, loc := range got {
		if loc.Address.CityName != "CHICAGO" {
			t.Errorf("unexpected city %s for keyword chicago", loc.Address.CityName)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Relevance > got[i-1].Relevance {
			t.Fatalf("results not sorted by relevance: %+v", got)
		}
	}
}

func TestSearchAirportsLimitsAndEmpty(t *testing.T) {
	g := testGDS(t)
	if got := g.SearchAirports(context.Background(), "international"); len(got) > 5 {
		t.Errorf("results = %d, want at most 5", len(got))
	}
	if got := g.SearchAirports(context.Background(), ""); len(got) != 0 {
		t.Errorf("blank keyword returned %d results", len(got))
	}
	if got := g.SearchAirports(context.Background(), "zzzzzz"); got == nil || len(got) != 0 {
		t.Errorf("no-match keyword must return an empty, non-nil slice")
	}
}

func TestNearestAirports(t *testing.T) {
	g := testGDS(t)
	// MIA's own coordinates: MIA first at zero distance, FLL nearby.
	got := g.NearestAirports(context.Background(), 25.7959, -80.2870)
	if len(got) == 0 {
		t.Fatal("no airports near Miami")
	}
	if got[0].IataCode != "MIA" {
		t.Fatalf("nearest = %s, want MIA", got[0].IataCode)
	}
	if got[0].Distance == nil || got[0].Distance.Value != 0 || got[0].Distance.Unit != "MI" {
		t.Fatalf("MIA distance = %+v, want 0 MI", got[0].Distance)
	}
	if got[0].Relevance != 100 {
		t.Errorf("zero-distance relevance = %.0f, want 100", got[0].Relevance)
	}

	foundFLL := false
	for i, loc := range got {
		if loc.IataCode == "FLL" {
			foundFLL = true
		}
		if loc.Distance.Value > 75 {
			t.Errorf("result %s at %.1f miles beyond the cutoff", loc.IataCode, loc.Distance.Value)
		}
		if i > 0 && loc.Distance.Value < got[i-1].Distance.Value {
			t.Errorf("results not sorted nearest-first")
		}
	}
	if !foundFLL {
		t.Errorf("FLL missing from Miami proximity results: %+v", got)
	}
	if len(got) > 5 {
		t.Errorf("results = %d, want at most 5", len(got))
	}
}

func TestNearestAirportsOpenOcean(t *testing.T) {
	g := testGDS(t)
	if got := g.NearestAirports(context.Background(), 0, -35); len(got) != 0 {
		t.Fatalf("mid-Atlantic coordinate returned %d airports", len(got))
	}
}
