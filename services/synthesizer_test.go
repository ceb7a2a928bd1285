package services

import (
	"context"
	"math/rand"
	"reflect"
	"strconv"
	"testing"
	"time"
)

func seeded(seed int64) func() *rand.Rand {
	return func() *rand.Rand { return rand.New(rand.NewSource(seed)) }
}

func testGDS(t *testing.T, opts ...Option) *MockGDS {
	t.Helper()
	return NewMockGDS(NewDirectory(), nil, opts...)
}

func searchReq(returnDate string) FlightSearchRequest {
	return FlightSearchRequest{
		Origin:        "LAX",
		Destination:   "JFK",
		DepartureDate: "2026-10-01",
		ReturnDate:    returnDate,
		Adults:        1,
		CabinClass:    "ECONOMY",
	}
}

func TestSearchFlightsOneWay(t *testing.T) {
	g := testGDS(t, WithRandFactory(seeded(7)))
	res := g.SearchFlights(context.Background(), searchReq(""))

	if len(res.Offers) < 3 || len(res.Offers) > 5 {
		t.Fatalf("offer count = %d, want 3-5", len(res.Offers))
	}
	if res.CabinClass != "ECONOMY" {
		t.Errorf("cabin class = %s, want ECONOMY", res.CabinClass)
	}

	prev := 0.0
	for i, offer := range res.Offers {
		if offer.ID != strconv.Itoa(i+1) {
			t.Errorf("offer %d id = %s, want %d", i, offer.ID, i+1)
		}
		if len(offer.Itineraries) != 1 {
			t.Fatalf("one-way offer has %d itineraries", len(offer.Itineraries))
		}
		total := offerTotal(offer)
		if total < minimumFare {
			t.Errorf("offer %s priced %.2f below the fare floor", offer.ID, total)
		}
		if total < prev {
			t.Errorf("offers not sorted by price: %.2f after %.2f", total, prev)
		}
		prev = total

		if offer.NumberOfBookableSeats < 3 || offer.NumberOfBookableSeats > 9 {
			t.Errorf("bookable seats = %d, want 3-9", offer.NumberOfBookableSeats)
		}
		if len(offer.ValidatingAirlineCodes) != 1 {
			t.Fatalf("offer %s has %d validating carriers", offer.ID, len(offer.ValidatingAirlineCodes))
		}
		if _, ok := res.Dictionaries.Carriers[offer.ValidatingAirlineCodes[0]]; !ok {
			t.Errorf("carrier %s missing from dictionaries", offer.ValidatingAirlineCodes[0])
		}
	}
}

func TestSearchFlightsSegmentsChain(t *testing.T) {
	g := testGDS(t, WithRandFactory(seeded(11)))
	res := g.SearchFlights(context.Background(), searchReq(""))

	for _, offer := range res.Offers {
		segs := offer.Itineraries[0].Segments
		switch len(segs) {
		case 1:
			if segs[0].Departure.IataCode != "LAX" || segs[0].Arrival.IataCode != "JFK" {
				t.Errorf("nonstop endpoints %s-%s, want LAX-JFK",
					segs[0].Departure.IataCode, segs[0].Arrival.IataCode)
			}
		case 2:
			if segs[0].Departure.IataCode != "LAX" || segs[1].Arrival.IataCode != "JFK" {
				t.Errorf("connection endpoints wrong: %+v", segs)
			}
			hub := segs[0].Arrival.IataCode
			if segs[1].Departure.IataCode != hub {
				t.Fatalf("second leg departs %s but first leg arrives %s",
					segs[1].Departure.IataCode, hub)
			}
			if hub == "LAX" || hub == "JFK" {
				t.Errorf("connection routed through an endpoint: %s", hub)
			}

			// Both times are local to the hub, so the naive difference is the
			// layover itself.
			arr, err1 := time.Parse(localTimeLayout, segs[0].Arrival.At)
			dep, err2 := time.Parse(localTimeLayout, segs[1].Departure.At)
			if err1 != nil || err2 != nil {
				t.Fatalf("unparseable segment times: %v %v", err1, err2)
			}
			layover := dep.Sub(arr)
			if layover < minLayoverMinutes*time.Minute || layover > maxLayoverMinutes*time.Minute {
				t.Errorf("layover %v outside [%dm, %dm]", layover, minLayoverMinutes, maxLayoverMinutes)
			}
		default:
			t.Fatalf("itinerary has %d segments, want 1 or 2", len(segs))
		}
	}
}

func TestSearchFlightsRoundTrip(t *testing.T) {
	g := testGDS(t, WithRandFactory(seeded(13)))
	res := g.SearchFlights(context.Background(), searchReq("2026-10-08"))

	if len(res.Offers) == 0 {
		t.Fatal("no offers generated")
	}
	for _, offer := range res.Offers {
		if len(offer.Itineraries) != 2 {
			t.Fatalf("round-trip offer has %d itineraries", len(offer.Itineraries))
		}
		out := offer.Itineraries[0].Segments
		ret := offer.Itineraries[1].Segments
		if out[0].Departure.IataCode != "LAX" || ret[0].Departure.IataCode != "JFK" {
			t.Errorf("itinerary directions wrong: out from %s, return from %s",
				out[0].Departure.IataCode, ret[0].Departure.IataCode)
		}
		if ret[len(ret)-1].Arrival.IataCode != "LAX" {
			t.Errorf("return lands at %s, want LAX", ret[len(ret)-1].Arrival.IataCode)
		}
	}
}

func TestSearchFlightsUnknownAirport(t *testing.T) {
	g := testGDS(t)
	req := searchReq("")
	req.Destination = "XXX"
	res := g.SearchFlights(context.Background(), req)
	if len(res.Offers) != 0 {
		t.Fatalf("unknown airport produced %d offers, want 0", len(res.Offers))
	}
	if res.Offers == nil || res.Dictionaries.Carriers == nil {
		t.Error("empty result must still carry initialized collections")
	}
}

func TestSearchFlightsBadDate(t *testing.T) {
	g := testGDS(t)
	req := searchReq("")
	req.DepartureDate = "10/01/2026"
	if res := g.SearchFlights(context.Background(), req); len(res.Offers) != 0 {
		t.Fatalf("bad date produced %d offers, want 0", len(res.Offers))
	}
}

func TestSearchFlightsMaxResults(t *testing.T) {
	g := testGDS(t, WithRandFactory(seeded(3)))
	req := searchReq("")
	req.MaxResults = 3
	res := g.SearchFlights(context.Background(), req)
	if len(res.Offers) > 3 {
		t.Fatalf("offer count = %d, want at most 3", len(res.Offers))
	}
}

func TestSearchFlightsDeterministicWithSeed(t *testing.T) {
	a := testGDS(t, WithRandFactory(seeded(99))).SearchFlights(context.Background(), searchReq("2026-10-08"))
	b := testGDS(t, WithRandFactory(seeded(99))).SearchFlights(context.Background(), searchReq("2026-10-08"))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different results")
	}
}

func TestSearchFlightsUnrecognizedCabinDegrades(t *testing.T) {
	g := testGDS(t, WithRandFactory(seeded(5)))
	req := searchReq("")
	req.CabinClass = "SUITE"
	res := g.SearchFlights(context.Background(), req)
	if res.CabinClass != "ECONOMY" {
		t.Fatalf("cabin class = %s, want degraded ECONOMY", res.CabinClass)
	}
}

func TestShortRouteMostlyNonstop(t *testing.T) {
	g := testGDS(t)
	req := searchReq("")
	req.Destination = "SFO" // ~340 miles

	nonstop, total := 0, 0
	ctx := context.Background()
	for i := 0; i < 300; i++ {
		res := g.SearchFlights(ctx, req)
		for _, offer := range res.Offers {
			total++
			if len(offer.Itineraries[0].Segments) == 1 {
				nonstop++
			}
		}
	}
	frac := float64(nonstop) / float64(total)
	if frac < 0.7 || frac > 0.9 {
		t.Fatalf("nonstop fraction on short route = %.2f, want ~0.8", frac)
	}
}

func TestSimulatedDelayRespectsCancellation(t *testing.T) {
	g := testGDS(t, WithSimulatedDelays(5*time.Second, 6*time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	g.SearchFlights(ctx, searchReq(""))
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("cancelled search took %v, want immediate return", elapsed)
	}
}
