package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyager/services"
)

// Handler bundles the simulated GDS components behind the HTTP surface.
type Handler struct {
	GDS      *services.MockGDS
	Resolver *services.Resolver
	Log      *zap.Logger
}

func New(gds *services.MockGDS, resolver *services.Resolver, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{GDS: gds, Resolver: resolver, Log: log}
}

// RegisterRoutes wires every endpoint onto the router. Paths mirror the
// Amadeus Self-Service API so clients can switch between this service and
// the real one by changing the base URL.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/health", h.Health)

	v1 := r.Group("/v1")
	{
		v1.GET("/reference-data/locations", h.SearchLocations)
		v1.GET("/reference-data/locations/airports", h.NearestAirports)
		v1.POST("/locations/resolve", h.ResolveLocation)
		v1.POST("/shopping/flight-offers/pricing", h.PriceFlightOffer)
		v1.POST("/booking/flight-orders", h.CreateFlightOrder)
		v1.POST("/documents/confirmation", h.ConfirmationDocument)
	}

	v2 := r.Group("/v2")
	{
		v2.GET("/shopping/flight-offers", h.SearchFlightOffers)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "voyager-mock-gds"})
}
