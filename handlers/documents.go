package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyager/services"
)

type confirmationRequest struct {
	Offer        services.Offer    `json:"offer" binding:"required"`
	Carriers     map[string]string `json:"carriers"`
	TravelerName string            `json:"travelerName"`
	OrderID      string            `json:"orderId"`
	PNR          string            `json:"pnr"`
}

// ConfirmationDocument handles POST /v1/documents/confirmation: it renders
// the posted offer into a printable PDF and streams it back.
func (h *Handler) ConfirmationDocument(c *gin.Context) {
	var req confirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if len(req.Offer.Itineraries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offer has no itineraries"})
		return
	}

	pdfBytes, err := services.RenderConfirmationPDF(services.ConfirmationData{
		Offer:        req.Offer,
		CarrierNames: req.Carriers,
		TravelerName: req.TravelerName,
		OrderID:      req.OrderID,
		PNR:          req.PNR,
	})
	if err != nil {
		h.Log.Error("PDF render failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render document"})
		return
	}

	filename := "voyager-offer.pdf"
	if req.OrderID != "" {
		filename = fmt.Sprintf("voyager-order-%s.pdf", req.OrderID)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
