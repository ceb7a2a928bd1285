package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyager/services"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := services.NewDirectory()
	h := New(services.NewMockGDS(dir, zap.NewNop()), services.NewResolver(dir, zap.NewNop()), zap.NewNop())
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\n%s", err, w.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	w := doRequest(t, testRouter(t), http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestSearchLocations(t *testing.T) {
	r := testRouter(t)

	w := doRequest(t, r, http.MethodGet, "/v1/reference-data/locations?keyword=JFK", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	data := decodeBody(t, w)["data"].([]any)
	if len(data) == 0 {
		t.Fatal("no locations returned")
	}
	first := data[0].(map[string]any)
	if first["iataCode"] != "JFK" || first["relevance"].(float64) != 100 {
		t.Errorf("top result = %v, want JFK at relevance 100", first)
	}

	if w := doRequest(t, r, http.MethodGet, "/v1/reference-data/locations", nil); w.Code != http.StatusBadRequest {
		t.Errorf("missing keyword status = %d, want 400", w.Code)
	}
}

func TestNearestAirportsEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doRequest(t, r, http.MethodGet, "/v1/reference-data/locations/airports?latitude=25.7959&longitude=-80.2870", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	data := decodeBody(t, w)["data"].([]any)
	if len(data) == 0 || data[0].(map[string]any)["iataCode"] != "MIA" {
		t.Fatalf("nearest to Miami coordinates should be MIA: %v", data)
	}

	bad := []string{
		"/v1/reference-data/locations/airports?latitude=abc&longitude=1",
		"/v1/reference-data/locations/airports?latitude=91&longitude=0",
		"/v1/reference-data/locations/airports",
	}
	for _, path := range bad {
		if w := doRequest(t, r, http.MethodGet, path, nil); w.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", path, w.Code)
		}
	}
}

func TestResolveLocationEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doRequest(t, r, http.MethodPost, "/v1/locations/resolve", map[string]any{"text": "JFK"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "AUTO_SELECTED" {
		t.Errorf("status = %v, want AUTO_SELECTED", body["status"])
	}
	candidates := body["candidates"].([]any)
	if len(candidates) != 1 || candidates[0].(map[string]any)["iataCode"] != "JFK" {
		t.Errorf("candidates = %v", candidates)
	}

	w = doRequest(t, r, http.MethodPost, "/v1/locations/resolve", map[string]any{"text": "nowhere at all"})
	if body := decodeBody(t, w); body["status"] != "NOT_FOUND" {
		t.Errorf("status = %v, want NOT_FOUND", body["status"])
	}

	if w := doRequest(t, r, http.MethodPost, "/v1/locations/resolve", map[string]any{}); w.Code != http.StatusBadRequest {
		t.Errorf("missing text status = %d, want 400", w.Code)
	}
}

func TestSearchFlightOffersEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doRequest(t, r, http.MethodGet,
		"/v2/shopping/flight-offers?originLocationCode=LAX&destinationLocationCode=JFK&departureDate=2026-10-01&adults=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	data := body["data"].([]any)
	meta := body["meta"].(map[string]any)
	if int(meta["count"].(float64)) != len(data) {
		t.Errorf("meta.count = %v but data has %d offers", meta["count"], len(data))
	}
	if meta["cabinClass"] != "ECONOMY" {
		t.Errorf("meta.cabinClass = %v, want ECONOMY", meta["cabinClass"])
	}
	if len(data) < 3 || len(data) > 5 {
		t.Errorf("offers = %d, want 3-5", len(data))
	}
	dict := body["dictionaries"].(map[string]any)["carriers"].(map[string]any)
	if len(dict) == 0 {
		t.Error("carrier dictionary empty")
	}
}

func TestSearchFlightOffersValidation(t *testing.T) {
	r := testRouter(t)
	bad := []string{
		"/v2/shopping/flight-offers?originLocationCode=LA&destinationLocationCode=JFK&departureDate=2026-10-01",
		"/v2/shopping/flight-offers?originLocationCode=LAX&destinationLocationCode=JFK&departureDate=10/01/2026",
		"/v2/shopping/flight-offers?originLocationCode=LAX&destinationLocationCode=JFK&departureDate=2026-10-01&returnDate=2026-09-01",
		"/v2/shopping/flight-offers?originLocationCode=LAX&destinationLocationCode=JFK&departureDate=2026-10-01&adults=9",
		"/v2/shopping/flight-offers?originLocationCode=LAX&destinationLocationCode=JFK&departureDate=2026-10-01&adults=0",
		"/v2/shopping/flight-offers?originLocationCode=LAX&destinationLocationCode=JFK&departureDate=2026-10-01&max=0",
	}
	for _, path := range bad {
		if w := doRequest(t, r, http.MethodGet, path, nil); w.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", path, w.Code)
		}
	}
}

func TestSearchFlightOffersUnknownAirport(t *testing.T) {
	w := doRequest(t, testRouter(t), http.MethodGet,
		"/v2/shopping/flight-offers?originLocationCode=XXX&destinationLocationCode=JFK&departureDate=2026-10-01", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with empty result", w.Code)
	}
	body := decodeBody(t, w)
	if int(body["meta"].(map[string]any)["count"].(float64)) != 0 {
		t.Errorf("unknown airport should yield zero offers: %v", body)
	}
}

func sampleOffer() services.Offer {
	return services.Offer{
		ID:       "1",
		Source:   "GDS",
		Price:    services.Price{Currency: "USD", Total: "350.00", GrandTotal: "350.00"},
		Itineraries: []services.Itinerary{{
			Duration: "PT5H30M",
			Segments: []services.Segment{{
				Departure:   services.Endpoint{IataCode: "LAX", At: "2026-10-01T08:00:00"},
				Arrival:     services.Endpoint{IataCode: "JFK", At: "2026-10-01T16:30:00"},
				CarrierCode: "DL",
				Number:      "412",
				Aircraft:    services.AircraftEquipment{Code: "77W"},
				Operating:   services.OperatingCarrier{CarrierCode: "DL"},
			}},
		}},
		ValidatingAirlineCodes: []string{"DL"},
	}
}

func TestPriceFlightOfferEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doRequest(t, r, http.MethodPost, "/v1/shopping/flight-offers/pricing?travelClass=BUSINESS", map[string]any{
		"data": map[string]any{
			"type":         "flight-offers-pricing",
			"flightOffers": []services.Offer{sampleOffer()},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	offers := data["flightOffers"].([]any)
	if len(offers) != 1 {
		t.Fatalf("flightOffers = %d, want 1", len(offers))
	}
	tps := offers[0].(map[string]any)["travelerPricings"].([]any)
	fd := tps[0].(map[string]any)["fareDetailsBySegment"].([]any)[0].(map[string]any)
	if fd["cabin"] != "BUSINESS" || fd["class"] != "J" {
		t.Errorf("fare detail = %v, want BUSINESS/J", fd)
	}

	if w := doRequest(t, r, http.MethodPost, "/v1/shopping/flight-offers/pricing",
		map[string]any{"data": map[string]any{"flightOffers": []services.Offer{}}}); w.Code != http.StatusBadRequest {
		t.Errorf("empty flightOffers status = %d, want 400", w.Code)
	}
}

func TestCreateFlightOrderEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doRequest(t, r, http.MethodPost, "/v1/booking/flight-orders", map[string]any{
		"data": map[string]any{
			"type":         "flight-order",
			"flightOffers": []services.Offer{sampleOffer()},
			"travelers": []map[string]any{
				{"id": "1", "name": map[string]string{"firstName": "ADA", "lastName": "LOVELACE"}},
			},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\n%s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	if !strings.HasPrefix(data["id"].(string), "VO") {
		t.Errorf("order id = %v, want VO prefix", data["id"])
	}
	records := data["associatedRecords"].([]any)
	rec := records[0].(map[string]any)
	if len(rec["reference"].(string)) != 6 {
		t.Errorf("PNR = %v, want 6 characters", rec["reference"])
	}
	if rec["originSystemCode"] != "VOYAGER" {
		t.Errorf("originSystemCode = %v", rec["originSystemCode"])
	}
}

func TestConfirmationDocumentEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doRequest(t, r, http.MethodPost, "/v1/documents/confirmation", map[string]any{
		"offer":        sampleOffer(),
		"carriers":     map[string]string{"DL": "Delta Air Lines"},
		"travelerName": "Ada Lovelace",
		"orderId":      "VO1A2B3C4D",
		"pnr":          "X9K2LM",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %s, want application/pdf", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "VO1A2B3C4D") {
		t.Errorf("content disposition = %s, want order id in filename", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("response body is not a PDF")
	}

	w = doRequest(t, r, http.MethodPost, "/v1/documents/confirmation", map[string]any{
		"offer": map[string]any{"id": "1"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("offer without itineraries status = %d, want 400", w.Code)
	}
}
