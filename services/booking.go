package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CreateOrder books an offer. Booking always succeeds: the order exists only
// in the returned confirmation, nothing is persisted, and traveler documents
// are echoed back verbatim.
func (g *MockGDS) CreateOrder(ctx context.Context, offer Offer, travelers []Traveler) Order {
	rng := g.newRand()
	g.maybeDelay(ctx, rng)

	pnr := make([]byte, 6)
	for i := range pnr {
		pnr[i] = pnrAlphabet[rng.Intn(len(pnrAlphabet))]
	}

	orderID := "VO" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])

	g.log.Info("created flight order",
		zap.String("order", orderID),
		zap.String("pnr", string(pnr)))

	return Order{
		ID:   orderID,
		Type: "flight-order",
		AssociatedRecords: []AssociatedRecord{{
			Reference:        string(pnr),
			CreationDate:     time.Now().UTC().Format(time.RFC3339),
			OriginSystemCode: "VOYAGER",
		}},
		FlightOffers: []Offer{offer},
		Travelers:    travelers,
	}
}
