package services

// ─── Reference data types ─────────────────────────────────────────────────────

// Airport is one immutable directory record. Tier is the traffic-based
// relevance prior used when ranking lookup results.
type Airport struct {
	IATA string
	Name string
	City string
	Lat  float64
	Lng  float64
	TZ   string
	Tier int
}

// Airline is one immutable carrier record with its hub airports.
type Airline struct {
	Code string
	Name string
	Hubs []string
}

// Coordinate is a decimal-degree lat/lng pair.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// ─── Amadeus-shaped wire types ────────────────────────────────────────────────
//
// Field names and nesting match the Amadeus Self-Service JSON API (v1
// locations, v2 flight-offers, v1 pricing, v1 flight-orders). They are a
// compatibility contract with the caller's rendering logic, do not rename.

type Location struct {
	IataCode  string    `json:"iataCode"`
	Name      string    `json:"name"`
	SubType   string    `json:"subType"`
	Address   Address   `json:"address"`
	Analytics Analytics `json:"analytics"`
	Relevance float64   `json:"relevance"`
	Distance  *Distance `json:"distance,omitempty"`
}

type Address struct {
	CityName string `json:"cityName"`
}

type Analytics struct {
	Travelers Travelers `json:"travelers"`
}

type Travelers struct {
	Score int `json:"score"`
}

type Distance struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Endpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type AircraftEquipment struct {
	Code string `json:"code"`
}

type OperatingCarrier struct {
	CarrierCode string `json:"carrierCode"`
}

type Segment struct {
	Departure   Endpoint          `json:"departure"`
	Arrival     Endpoint          `json:"arrival"`
	CarrierCode string            `json:"carrierCode"`
	Number      string            `json:"number"`
	Aircraft    AircraftEquipment `json:"aircraft"`
	Operating   OperatingCarrier  `json:"operating"`
}

// Itinerary is one travel direction: 1-2 segments plus the total ISO-8601
// duration including any layover.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

type Offer struct {
	ID                     string            `json:"id"`
	Source                 string            `json:"source"`
	LastTicketingDate      string            `json:"lastTicketingDate"`
	NumberOfBookableSeats  int               `json:"numberOfBookableSeats"`
	Itineraries            []Itinerary       `json:"itineraries"`
	Price                  Price             `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings,omitempty"`
}

type Dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

type CheckedBags struct {
	Quantity int `json:"quantity"`
}

type FareSegmentDetail struct {
	SegmentID           string      `json:"segmentId"`
	Cabin               string      `json:"cabin"`
	Class               string      `json:"class"`
	IncludedCheckedBags CheckedBags `json:"includedCheckedBags"`
}

type TravelerPricing struct {
	TravelerID           string              `json:"travelerId"`
	FareOption           string              `json:"fareOption"`
	TravelerType         string              `json:"travelerType"`
	FareDetailsBySegment []FareSegmentDetail `json:"fareDetailsBySegment"`
}

type PricingResponse struct {
	FlightOffers []Offer `json:"flightOffers"`
}

type AssociatedRecord struct {
	Reference        string `json:"reference"`
	CreationDate     string `json:"creationDate"`
	OriginSystemCode string `json:"originSystemCode"`
}

// Traveler documents are passed through verbatim from the booking request.
type Traveler map[string]any

type Order struct {
	ID                string             `json:"id"`
	Type              string             `json:"type"`
	AssociatedRecords []AssociatedRecord `json:"associatedRecords"`
	FlightOffers      []Offer            `json:"flightOffers"`
	Travelers         []Traveler         `json:"travelers"`
}

// ─── Search request / result ──────────────────────────────────────────────────

type FlightSearchRequest struct {
	Origin        string
	Destination   string
	DepartureDate string // YYYY-MM-DD
	ReturnDate    string // YYYY-MM-DD, empty for one-way
	Adults        int
	CabinClass    string
	MaxResults    int
}

// FlightSearchResult carries the generated offers, the carrier dictionary for
// the batch, and the cabin class the prices are actually based on. CabinClass
// may differ from the requested one; the caller must surface that instead of
// silently changing the price basis.
type FlightSearchResult struct {
	Offers       []Offer
	Dictionaries Dictionaries
	CabinClass   string
}
