package services

import (
	"context"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// Routes under this distance are mostly flown nonstop.
	shortRouteMiles    = 1200.0
	shortNonstopChance = 0.8
	longNonstopChance  = 0.4

	// Ground time between connecting legs, minutes.
	minLayoverMinutes = 60
	maxLayoverMinutes = 180

	// Chance the return leg repeats the outbound stop pattern.
	sameStopPatternChance = 0.7

	routeCarrierCount = 3
	defaultMaxResults = 5

	// Bounding-box margin when picking a connection hub between two airports.
	hubBoxLatMargin = 10.0
	hubBoxLngMargin = 15.0
)

// Local-time departure slots offers are spread across.
var departureSlots = []int{6, 8, 10, 13, 16, 19, 21}

// SearchFlights generates internally consistent flight offers for a route.
// Unknown airport codes yield an empty result, never an error; the caller's
// recovery policy is not this subsystem's concern.
func (g *MockGDS) SearchFlights(ctx context.Context, req FlightSearchRequest) FlightSearchResult {
	rng := g.newRand()
	g.maybeDelay(ctx, rng)

	result := FlightSearchResult{
		Offers:       []Offer{},
		Dictionaries: Dictionaries{Carriers: map[string]string{}},
		CabinClass:   normalizeCabin(req.CabinClass),
	}

	origin, okO := g.dir.Airport(req.Origin)
	dest, okD := g.dir.Airport(req.Destination)
	if !okO || !okD {
		g.log.Warn("flight search for unknown airport",
			zap.String("origin", req.Origin), zap.String("destination", req.Destination))
		return result
	}
	if _, err := time.Parse("2006-01-02", req.DepartureDate); err != nil {
		return result
	}
	roundTrip := req.ReturnDate != ""
	if roundTrip {
		if _, err := time.Parse("2006-01-02", req.ReturnDate); err != nil {
			return result
		}
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	distance := HaversineMiles(origin.Lat, origin.Lng, dest.Lat, dest.Lng)
	baseMinutes := FlightMinutes(distance)
	shortRoute := distance < shortRouteMiles

	numOffers := 3 + rng.Intn(3)
	if numOffers > maxResults {
		numOffers = maxResults
	}

	carriers := g.pickAirlinesForRoute(rng, origin, dest, routeCarrierCount)
	for _, code := range carriers {
		result.Dictionaries.Carriers[code] = g.dir.AirlineName(code)
	}

	slots := make([]int, len(departureSlots))
	copy(slots, departureSlots)
	rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })

	for i := 0; i < numOffers; i++ {
		carrier := carriers[i%len(carriers)]
		departHour := slots[i%len(slots)]

		nonstopChance := longNonstopChance
		if shortRoute {
			nonstopChance = shortNonstopChance
		}
		nonstop := rng.Float64() < nonstopChance

		outSegs, outMinutes := g.buildSegments(rng, origin, dest, req.DepartureDate, departHour, baseMinutes, carrier, nonstop)
		itineraries := []Itinerary{{
			Duration: FormatISODuration(outMinutes),
			Segments: outSegs,
		}}

		if roundTrip {
			retHour := pickReturnHour(rng, slots, departHour)
			retNonstop := nonstop
			if rng.Float64() >= sameStopPatternChance {
				retNonstop = !nonstop
			}
			retSegs, retMinutes := g.buildSegments(rng, dest, origin, req.ReturnDate, retHour, baseMinutes, carrier, retNonstop)
			itineraries = append(itineraries, Itinerary{
				Duration: FormatISODuration(retMinutes),
				Segments: retSegs,
			})
		}

		total := computeFare(rng, distance, result.CabinClass, departHour, nonstop, roundTrip)

		result.Offers = append(result.Offers, Offer{
			ID:                     strconv.Itoa(i + 1),
			Source:                 "GDS",
			LastTicketingDate:      req.DepartureDate,
			NumberOfBookableSeats:  3 + rng.Intn(7),
			Itineraries:            itineraries,
			Price:                  newPrice(total),
			ValidatingAirlineCodes: []string{carrier},
		})
	}

	// Cheapest first, then re-number display ids to match the new order.
	sort.SliceStable(result.Offers, func(i, j int) bool {
		return offerTotal(result.Offers[i]) < offerTotal(result.Offers[j])
	})
	for i := range result.Offers {
		result.Offers[i].ID = strconv.Itoa(i + 1)
	}

	g.log.Debug("generated flight offers",
		zap.String("route", origin.IATA+"-"+dest.IATA),
		zap.Int("offers", len(result.Offers)),
		zap.Bool("roundTrip", roundTrip))
	return result
}

// buildSegments builds the segment list for one direction of travel and
// returns it with the total trip minutes including any layover.
//
// Each leg's wall-clock times are derived independently from the same
// absolute instants: the departure formats in the origin's zone and the
// arrival in the destination's, so multi-leg itineraries stay correct across
// timezone and DST boundaries. The second leg departs exactly one drawn
// layover after the first leg arrives.
func (g *MockGDS) buildSegments(rng *rand.Rand, origin, dest *Airport, date string, departHour, baseMinutes int, carrier string, nonstop bool) ([]Segment, int) {
	oLoc := loadLocation(origin.TZ)
	dLoc := loadLocation(dest.TZ)
	dep, _ := departureInstant(date, departHour, oLoc)

	hub, hubOK := (*Airport)(nil), false
	if !nonstop {
		hub, hubOK = g.dir.Airport(g.pickConnectionHub(rng, origin, dest))
	}
	if nonstop || !hubOK {
		arr := dep.Add(time.Duration(baseMinutes) * time.Minute)
		return []Segment{{
			Departure:   Endpoint{IataCode: origin.IATA, At: formatLocal(dep, oLoc)},
			Arrival:     Endpoint{IataCode: dest.IATA, At: formatLocal(arr, dLoc)},
			CarrierCode: carrier,
			Number:      flightNumber(rng),
			Aircraft:    AircraftEquipment{Code: g.pickAircraft(rng)},
			Operating:   OperatingCarrier{CarrierCode: carrier},
		}}, baseMinutes
	}

	hLoc := loadLocation(hub.TZ)
	leg1 := FlightMinutes(HaversineMiles(origin.Lat, origin.Lng, hub.Lat, hub.Lng))
	leg2 := FlightMinutes(HaversineMiles(hub.Lat, hub.Lng, dest.Lat, dest.Lng))
	layover := minLayoverMinutes + rng.Intn(maxLayoverMinutes-minLayoverMinutes+1)

	arr1 := dep.Add(time.Duration(leg1) * time.Minute)
	dep2 := arr1.Add(time.Duration(layover) * time.Minute)
	arr2 := dep2.Add(time.Duration(leg2) * time.Minute)

	return []Segment{
		{
			Departure:   Endpoint{IataCode: origin.IATA, At: formatLocal(dep, oLoc)},
			Arrival:     Endpoint{IataCode: hub.IATA, At: formatLocal(arr1, hLoc)},
			CarrierCode: carrier,
			Number:      flightNumber(rng),
			Aircraft:    AircraftEquipment{Code: g.pickAircraft(rng)},
			Operating:   OperatingCarrier{CarrierCode: carrier},
		},
		{
			Departure:   Endpoint{IataCode: hub.IATA, At: formatLocal(dep2, hLoc)},
			Arrival:     Endpoint{IataCode: dest.IATA, At: formatLocal(arr2, dLoc)},
			CarrierCode: carrier,
			Number:      flightNumber(rng),
			Aircraft:    AircraftEquipment{Code: g.pickAircraft(rng)},
			Operating:   OperatingCarrier{CarrierCode: carrier},
		},
	}, leg1 + layover + leg2
}

// pickConnectionHub picks a geographically reasonable hub between origin and
// destination: any listed hub inside the expanded bounding box spanning the
// route, else the hub nearest the route midpoint.
func (g *MockGDS) pickConnectionHub(rng *rand.Rand, origin, dest *Airport) string {
	latMin := minF(origin.Lat, dest.Lat) - hubBoxLatMargin
	latMax := maxF(origin.Lat, dest.Lat) + hubBoxLatMargin
	lngMin := minF(origin.Lng, dest.Lng) - hubBoxLngMargin
	lngMax := maxF(origin.Lng, dest.Lng) + hubBoxLngMargin

	var candidates []string
	for _, code := range g.dir.Hubs() {
		if code == origin.IATA || code == dest.IATA {
			continue
		}
		h, ok := g.dir.Airport(code)
		if !ok {
			continue
		}
		if h.Lat >= latMin && h.Lat <= latMax && h.Lng >= lngMin && h.Lng <= lngMax {
			candidates = append(candidates, code)
		}
	}
	if len(candidates) > 0 {
		return candidates[rng.Intn(len(candidates))]
	}

	midLat := (origin.Lat + dest.Lat) / 2
	midLng := (origin.Lng + dest.Lng) / 2
	best := ""
	bestDist := -1.0
	for _, code := range g.dir.Hubs() {
		if code == origin.IATA || code == dest.IATA {
			continue
		}
		h, ok := g.dir.Airport(code)
		if !ok {
			continue
		}
		dist := HaversineMiles(midLat, midLng, h.Lat, h.Lng)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = code
		}
	}
	if best == "" {
		best = "ORD"
	}
	return best
}

// pickAirlinesForRoute selects plausible carriers for a route: carriers that
// hub at either endpoint first, then a region-classified pool, then anything.
func (g *MockGDS) pickAirlinesForRoute(rng *rand.Rand, origin, dest *Airport, count int) []string {
	var hubCarriers []string
	for _, code := range g.dir.CarrierCodes() {
		al, _ := g.dir.Airline(code)
		if al.HasHub(origin.IATA) || al.HasHub(dest.IATA) {
			hubCarriers = append(hubCarriers, code)
		}
	}
	rng.Shuffle(len(hubCarriers), func(i, j int) { hubCarriers[i], hubCarriers[j] = hubCarriers[j], hubCarriers[i] })

	result := make([]string, 0, count)
	chosen := map[string]bool{}
	take := func(codes []string) {
		for _, c := range codes {
			if len(result) >= count {
				return
			}
			if chosen[c] {
				continue
			}
			chosen[c] = true
			result = append(result, c)
		}
	}

	take(hubCarriers)

	pool := routeCarrierPool(g.dir, origin.TZ, dest.TZ)
	remaining := make([]string, 0, len(pool))
	for _, c := range pool {
		if !chosen[c] {
			remaining = append(remaining, c)
		}
	}
	rng.Shuffle(len(remaining), func(i, j int) { remaining[i], remaining[j] = remaining[j], remaining[i] })
	take(remaining)

	if len(result) < count {
		extras := make([]string, 0, len(g.dir.CarrierCodes()))
		for _, c := range g.dir.CarrierCodes() {
			if !chosen[c] {
				extras = append(extras, c)
			}
		}
		rng.Shuffle(len(extras), func(i, j int) { extras[i], extras[j] = extras[j], extras[i] })
		take(extras)
	}

	return result
}

// routeCarrierPool classifies each endpoint's timezone into a coarse region
// bucket and returns the carrier pool for that pairing.
func routeCarrierPool(dir *Directory, oTZ, dTZ string) []string {
	oUS, dUS := usZones[oTZ], usZones[dTZ]
	oLatam, dLatam := latamZones[oTZ], latamZones[dTZ]
	oCanada, dCanada := canadaZones[oTZ], canadaZones[dTZ]
	oEurope := tzInRegion(oTZ, "Europe", "Atlantic")
	dEurope := tzInRegion(dTZ, "Europe", "Atlantic")
	oAsia := tzInRegion(oTZ, "Asia")
	dAsia := tzInRegion(dTZ, "Asia")
	oOceania := tzInRegion(oTZ, "Australia", "Pacific")
	dOceania := tzInRegion(dTZ, "Australia", "Pacific")
	gulf := oTZ == "Asia/Dubai" || dTZ == "Asia/Dubai" || oTZ == "Asia/Qatar" || dTZ == "Asia/Qatar"

	switch {
	case oUS && dUS:
		return []string{"UA", "DL", "AA", "WN", "AS", "B6", "NK", "F9"}
	case (oUS || dUS) && (oLatam || dLatam):
		return []string{"AA", "UA", "DL", "AM", "AV", "CM", "LA", "B6", "WN", "Y4"}
	case oLatam && dLatam:
		return []string{"AM", "AV", "LA", "CM", "AR", "G3", "Y4", "AA", "UA"}
	case (oUS || dUS) && (oEurope || dEurope):
		return []string{"UA", "DL", "AA", "BA", "LH", "AF", "KL", "IB", "AC", "TK"}
	case (oUS || dUS) && (oAsia || dAsia):
		return []string{"UA", "DL", "AA", "NH", "JL", "KE", "SQ", "AS", "EK", "QR"}
	case (oUS || dUS) && (oCanada || dCanada):
		return []string{"AC", "UA", "DL", "AA", "WN", "AS"}
	case oEurope && dEurope:
		return []string{"BA", "LH", "AF", "KL", "IB", "TK"}
	case oAsia && dAsia:
		return []string{"NH", "JL", "KE", "SQ", "EK", "QR", "TK"}
	case gulf:
		return []string{"EK", "QR", "TK", "BA", "LH"}
	case oOceania || dOceania:
		return []string{"QF", "UA", "DL", "NH", "SQ"}
	default:
		return dir.CarrierCodes()
	}
}

func tzInRegion(tz string, prefixes ...string) bool {
	for _, p := range prefixes {
		if len(tz) >= len(p) && tz[:len(p)] == p {
			return true
		}
	}
	return false
}

func pickReturnHour(rng *rand.Rand, slots []int, departHour int) int {
	others := make([]int, 0, len(slots))
	for _, h := range slots {
		if h != departHour {
			others = append(others, h)
		}
	}
	if len(others) == 0 {
		return 10
	}
	return others[rng.Intn(len(others))]
}

func (g *MockGDS) pickAircraft(rng *rand.Rand) string {
	return g.dir.aircraft[rng.Intn(len(g.dir.aircraft))]
}

// flightNumber generates a random 3-4 digit flight number.
func flightNumber(rng *rand.Rand) string {
	return strconv.Itoa(100 + rng.Intn(9900))
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
