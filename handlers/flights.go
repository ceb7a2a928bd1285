package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyager/services"
)

const (
	maxAdults     = 8
	maxOfferLimit = 50
)

// SearchFlightOffers handles GET /v2/shopping/flight-offers. Query parameter
// names follow the Amadeus flight-offers-search API.
func (h *Handler) SearchFlightOffers(c *gin.Context) {
	origin := strings.ToUpper(strings.TrimSpace(c.Query("originLocationCode")))
	destination := strings.ToUpper(strings.TrimSpace(c.Query("destinationLocationCode")))
	departureDate := c.Query("departureDate")
	returnDate := c.Query("returnDate")

	if len(origin) != 3 || len(destination) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Airport codes must be exactly 3 characters (e.g. LHR, JFK)"})
		return
	}
	if _, err := time.Parse("2006-01-02", departureDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid departureDate format. Use YYYY-MM-DD"})
		return
	}
	if returnDate != "" {
		ret, err := time.Parse("2006-01-02", returnDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid returnDate format. Use YYYY-MM-DD"})
			return
		}
		dep, _ := time.Parse("2006-01-02", departureDate)
		if ret.Before(dep) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "returnDate must not be before departureDate"})
			return
		}
	}

	adults := 1
	if v := c.Query("adults"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxAdults {
			c.JSON(http.StatusBadRequest, gin.H{"error": "adults must be between 1 and 8"})
			return
		}
		adults = n
	}

	max := 0
	if v := c.Query("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxOfferLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max must be between 1 and 50"})
			return
		}
		max = n
	}

	result := h.GDS.SearchFlights(c.Request.Context(), services.FlightSearchRequest{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Adults:        adults,
		CabinClass:    c.Query("travelClass"),
		MaxResults:    max,
	})

	h.Log.Info("flight offers search",
		zap.String("route", origin+"-"+destination),
		zap.Int("offers", len(result.Offers)))

	c.JSON(http.StatusOK, gin.H{
		"meta": gin.H{
			"count":      len(result.Offers),
			"cabinClass": result.CabinClass,
		},
		"data":         result.Offers,
		"dictionaries": result.Dictionaries,
	})
}

type pricingRequest struct {
	Data struct {
		Type         string           `json:"type"`
		FlightOffers []services.Offer `json:"flightOffers" binding:"required,min=1"`
	} `json:"data" binding:"required"`
}

// PriceFlightOffer handles POST /v1/shopping/flight-offers/pricing. The
// confirmed fare may drift slightly above the quote, as live repricing does.
func (h *Handler) PriceFlightOffer(c *gin.Context) {
	var req pricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cabin := c.Query("travelClass")
	if cabin == "" {
		cabin = cabinFromOffer(req.Data.FlightOffers[0])
	}

	priced := h.GDS.PriceOffer(c.Request.Context(), req.Data.FlightOffers[0], cabin)
	c.JSON(http.StatusOK, gin.H{"data": priced})
}

// cabinFromOffer recovers the cabin from an already-priced offer's fare
// details, defaulting to economy for a bare offer.
func cabinFromOffer(offer services.Offer) string {
	for _, tp := range offer.TravelerPricings {
		for _, fd := range tp.FareDetailsBySegment {
			if fd.Cabin != "" {
				return fd.Cabin
			}
		}
	}
	return "ECONOMY"
}

type orderRequest struct {
	Data struct {
		Type         string              `json:"type"`
		FlightOffers []services.Offer    `json:"flightOffers" binding:"required,min=1"`
		Travelers    []services.Traveler `json:"travelers"`
	} `json:"data" binding:"required"`
}

// CreateFlightOrder handles POST /v1/booking/flight-orders. Booking always
// succeeds and nothing is stored; the confirmation in the response is the
// only record of the order.
func (h *Handler) CreateFlightOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	order := h.GDS.CreateOrder(c.Request.Context(), req.Data.FlightOffers[0], req.Data.Travelers)
	c.JSON(http.StatusCreated, gin.H{"data": order})
}
