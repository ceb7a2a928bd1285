package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Deterministic pricing model constants. The distance bands approximate
// real fare curves: short hops carry a high fixed cost, long hauls a lower
// per-mile rate.
const (
	minimumFare = 89.00

	redEyeFactor  = 0.85
	peakFactor    = 1.12
	oneStopFactor = 0.80

	roundTripFactor = 1.8

	// Uniform market-variance draw applied to every fare.
	varianceLow  = 0.85
	varianceHigh = 1.15

	// Live repricing bumps the quoted fare by up to this fraction.
	repriceMaxBump = 0.03
)

func baseFare(distanceMiles float64) float64 {
	switch {
	case distanceMiles < 500:
		return distanceMiles*0.25 + 50
	case distanceMiles <= 1500:
		return distanceMiles*0.18 + 30
	default:
		return distanceMiles*0.12 + 80
	}
}

func timeOfDayFactor(departHour int) float64 {
	switch {
	case departHour < 7 || departHour > 20:
		return redEyeFactor
	case (departHour >= 8 && departHour <= 10) || (departHour >= 16 && departHour <= 18):
		return peakFactor
	default:
		return 1.0
	}
}

// computeFare prices one offer. The multipliers apply in a fixed order with
// a single rounding step at the end; intermediate values stay full-precision
// so the floor and the variance draw compose the same way every time.
func computeFare(rng *rand.Rand, distanceMiles float64, cabin string, departHour int, nonstop, roundTrip bool) float64 {
	price := baseFare(distanceMiles)
	price *= cabinMultiplier(cabin)
	price *= timeOfDayFactor(departHour)
	if !nonstop {
		price *= oneStopFactor
	}
	price *= varianceLow + rng.Float64()*(varianceHigh-varianceLow)
	if roundTrip {
		price *= roundTripFactor
	}
	if price < minimumFare {
		price = minimumFare
	}
	return math.Round(price*100) / 100
}

func cabinMultiplier(cabin string) float64 {
	if m, ok := cabinMultipliers[cabin]; ok {
		return m
	}
	return cabinMultipliers["ECONOMY"]
}

// normalizeCabin maps the requested cabin onto a priceable one. Unrecognized
// or empty cabins degrade to ECONOMY; the result is always reported back so
// the caller knows which cabin the prices are based on.
func normalizeCabin(cabin string) string {
	c := strings.ToUpper(strings.TrimSpace(cabin))
	if _, ok := cabinMultipliers[c]; ok {
		return c
	}
	return "ECONOMY"
}

func newPrice(total float64) Price {
	s := fmt.Sprintf("%.2f", total)
	return Price{Currency: "USD", Total: s, GrandTotal: s}
}

func offerTotal(o Offer) float64 {
	v, err := strconv.ParseFloat(o.Price.GrandTotal, 64)
	if err != nil {
		return 0
	}
	return v
}

// PriceOffer confirms an offer's fare the way a live repricing call would:
// the quote drifts up by 0-3% and per-segment fare details are attached.
// The offer itself is echoed back otherwise unchanged.
func (g *MockGDS) PriceOffer(ctx context.Context, offer Offer, cabin string) PricingResponse {
	rng := g.newRand()
	g.maybeDelay(ctx, rng)

	cabin = normalizeCabin(cabin)
	quoted := offerTotal(offer)
	confirmed := math.Round(quoted*(1+rng.Float64()*repriceMaxBump)*100) / 100

	priced := offer
	priced.Price = newPrice(confirmed)
	if offer.Price.Currency != "" {
		priced.Price.Currency = offer.Price.Currency
	}

	var fares []FareSegmentDetail
	segID := 1
	for _, it := range offer.Itineraries {
		for range it.Segments {
			fares = append(fares, FareSegmentDetail{
				SegmentID:           strconv.Itoa(segID),
				Cabin:               cabin,
				Class:               bookingClass(cabin),
				IncludedCheckedBags: CheckedBags{Quantity: bagAllowance(cabin)},
			})
			segID++
		}
	}
	priced.TravelerPricings = []TravelerPricing{{
		TravelerID:           "1",
		FareOption:           "STANDARD",
		TravelerType:         "ADULT",
		FareDetailsBySegment: fares,
	}}

	g.log.Debug("repriced offer",
		zap.String("offer", offer.ID),
		zap.Float64("quoted", quoted),
		zap.Float64("confirmed", confirmed))
	return PricingResponse{FlightOffers: []Offer{priced}}
}

func bookingClass(cabin string) string {
	if c, ok := cabinBookingClass[cabin]; ok {
		return c
	}
	return "Y"
}

func bagAllowance(cabin string) int {
	if n, ok := cabinBags[cabin]; ok {
		return n
	}
	return 0
}
