package services

import (
	"context"
	"math"
	"sort"
	"strings"
)

// SearchAirports is the keyword half of the reference-data surface: a
// case-insensitive substring match over code, airport name and city name,
// returning up to 5 records ranked by relevance.
func (g *MockGDS) SearchAirports(ctx context.Context, keyword string) []Location {
	rng := g.newRand()
	g.maybeDelay(ctx, rng)

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []Location{}
	}
	lower := strings.ToLower(keyword)

	out := []Location{}
	for _, a := range g.dir.Airports() {
		if !strings.Contains(strings.ToLower(a.IATA), lower) &&
			!strings.Contains(strings.ToLower(a.Name), lower) &&
			!strings.Contains(strings.ToLower(a.City), lower) {
			continue
		}
		relevance := 50.0 + float64(a.Tier)
		if strings.EqualFold(keyword, a.IATA) {
			relevance = 100.0
		}
		out = append(out, Location{
			IataCode:  a.IATA,
			Name:      strings.ToUpper(a.Name),
			SubType:   "AIRPORT",
			Address:   Address{CityName: strings.ToUpper(a.City)},
			Analytics: Analytics{Travelers: Travelers{Score: a.Tier}},
			Relevance: relevance,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Relevance > out[j].Relevance })
	if len(out) > proximityLimit {
		out = out[:proximityLimit]
	}
	return out
}

// NearestAirports is the proximity half: up to 5 airports within 75 miles of
// the coordinate, nearest first, each carrying its distance and a relevance
// that decays exponentially with distance.
func (g *MockGDS) NearestAirports(ctx context.Context, lat, lng float64) []Location {
	rng := g.newRand()
	g.maybeDelay(ctx, rng)

	type scored struct {
		airport *Airport
		dist    float64
	}
	all := make([]scored, 0, len(g.dir.Airports()))
	for _, a := range g.dir.Airports() {
		all = append(all, scored{a, HaversineMiles(lat, lng, a.Lat, a.Lng)})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].dist < all[j].dist })

	out := []Location{}
	for _, s := range all {
		if len(out) >= proximityLimit || s.dist > proximityCutoffMiles {
			break
		}
		relevance := math.Floor(100 * math.Exp(-s.dist/proximityDecayMiles))
		if relevance < 1 {
			relevance = 1
		}
		out = append(out, Location{
			IataCode:  s.airport.IATA,
			Name:      strings.ToUpper(s.airport.Name),
			SubType:   "AIRPORT",
			Address:   Address{CityName: strings.ToUpper(s.airport.City)},
			Analytics: Analytics{Travelers: Travelers{Score: s.airport.Tier}},
			Relevance: relevance,
			Distance:  &Distance{Value: math.Round(s.dist*10) / 10, Unit: "MI"},
		})
	}
	return out
}
