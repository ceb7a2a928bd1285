package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyager/services"
)

// SearchLocations handles GET /v1/reference-data/locations?keyword=...
func (h *Handler) SearchLocations(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword query parameter is required"})
		return
	}

	data := h.GDS.SearchAirports(c.Request.Context(), keyword)
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// NearestAirports handles GET /v1/reference-data/locations/airports
// with latitude and longitude query parameters.
func (h *Handler) NearestAirports(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("latitude"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("longitude"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be decimal degrees"})
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinate out of range"})
		return
	}

	data := h.GDS.NearestAirports(c.Request.Context(), lat, lng)
	c.JSON(http.StatusOK, gin.H{"data": data})
}

type resolveRequest struct {
	Text       string               `json:"text" binding:"required"`
	Coordinate *services.Coordinate `json:"coordinate"`
}

// ResolveLocation handles POST /v1/locations/resolve: free-text (optionally
// plus a geocoded coordinate) in, a resolution status with ranked airport
// candidates out.
func (h *Handler) ResolveLocation(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res := h.Resolver.Resolve(req.Text, req.Coordinate)
	h.Log.Debug("resolved location",
		zap.String("text", req.Text),
		zap.String("status", string(res.Status)))

	candidates := make([]gin.H, 0, len(res.Candidates))
	for _, cand := range res.Candidates {
		candidates = append(candidates, gin.H{
			"iataCode": cand.IATA,
			"name":     cand.Name,
			"cityName": cand.City,
			"score":    cand.Score,
			"source":   cand.Source,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     res.Status,
		"candidates": candidates,
	})
}
