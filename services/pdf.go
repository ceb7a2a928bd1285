package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ConfirmationData feeds the printable offer-confirmation document. Order
// fields are optional: a document rendered before booking carries only the
// offer.
type ConfirmationData struct {
	Offer        Offer
	CarrierNames map[string]string
	TravelerName string
	OrderID      string
	PNR          string
}

// RenderConfirmationPDF renders an offer (and its booking reference when
// present) into a printable PDF and returns the raw bytes.
func RenderConfirmationPDF(data ConfirmationData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Watermark ────────────────────────────────────────────
	pdf.SetTextColor(230, 230, 230)
	pdf.SetFont("Helvetica", "B", 55)
	pdf.TransformBegin()
	pdf.TransformRotate(42, 60, 200)
	pdf.Text(60, 200, "MOCK")
	pdf.TransformEnd()
	pdf.SetTextColor(0, 0, 0)

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Voyager", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Flight Offer Confirmation", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4,
		"This document was produced by a simulated distribution system. "+
			"It is NOT a real ticket and confers no right to travel.",
		"", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Booking Reference ─────────────────────────────────────
	if data.OrderID != "" {
		sectionHeader("Booking Reference")
		row("Order", data.OrderID)
		row("Record Locator", data.PNR)
		pdf.Ln(4)
	}

	// ── Traveler Info ─────────────────────────────────────────
	sectionHeader("Traveler Information")
	name := data.TravelerName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Name", name)
	row("Generated", time.Now().UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Itineraries ───────────────────────────────────────────
	for i, it := range data.Offer.Itineraries {
		title := "Outbound Itinerary"
		if i == 1 {
			title = "Return Itinerary"
		}
		sectionHeader(fmt.Sprintf("%s (%s)", title, readableDuration(it.Duration)))
		for _, seg := range it.Segments {
			carrier := seg.CarrierCode
			if full, ok := data.CarrierNames[seg.CarrierCode]; ok {
				carrier = full
			}
			row("Flight", fmt.Sprintf("%s %s (%s)", seg.CarrierCode, seg.Number, carrier))
			row("Departs", fmt.Sprintf("%s  %s", seg.Departure.IataCode, readableLocal(seg.Departure.At)))
			row("Arrives", fmt.Sprintf("%s  %s", seg.Arrival.IataCode, readableLocal(seg.Arrival.At)))
			row("Aircraft", seg.Aircraft.Code)
			pdf.Ln(2)
		}
		pdf.Ln(2)
	}

	// ── Fare ──────────────────────────────────────────────────
	sectionHeader("Fare")
	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "GRAND TOTAL", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmt.Sprintf("%s %s", data.Offer.Price.Currency, data.Offer.Price.GrandTotal), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by Voyager Mock GDS · Simulated data · Not valid for travel",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func readableLocal(at string) string {
	t, err := time.Parse(localTimeLayout, at)
	if err != nil {
		return at
	}
	return t.Format("02 Jan 2006 15:04")
}

func readableDuration(iso string) string {
	var h, m int
	if _, err := fmt.Sscanf(iso, "PT%dH%dM", &h, &m); err != nil {
		if _, err := fmt.Sscanf(iso, "PT%dH", &h); err != nil {
			return iso
		}
	}
	if m > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}
