package services

import (
	"sort"
	"strings"
)

// Directory holds the static airport and airline reference tables. It is
// built once at startup and read-only afterwards, so it is safe to share
// across any number of concurrent searches. Pass it explicitly to the
// components that need it.
type Directory struct {
	airports    map[string]*Airport
	airportList []*Airport
	airlines    map[string]*Airline
	carrierIdx  []string // airline codes in stable order
	hubs        []string
	aircraft    []string
}

func NewDirectory() *Directory {
	d := &Directory{
		airports: make(map[string]*Airport, len(airportTable)),
		airlines: make(map[string]*Airline, len(airlineTable)),
		hubs:     connectionHubs,
		aircraft: aircraftCodes,
	}
	for i := range airportTable {
		a := &airportTable[i]
		d.airports[a.IATA] = a
		d.airportList = append(d.airportList, a)
	}
	for i := range airlineTable {
		al := &airlineTable[i]
		d.airlines[al.Code] = al
		d.carrierIdx = append(d.carrierIdx, al.Code)
	}
	// Stable iteration order so seeded randomness stays reproducible.
	sort.Strings(d.carrierIdx)
	return d
}

// Airport looks up a record by IATA code, case-insensitively.
func (d *Directory) Airport(code string) (*Airport, bool) {
	a, ok := d.airports[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Airline looks up a carrier by its 2-letter code, case-insensitively.
func (d *Directory) Airline(code string) (*Airline, bool) {
	al, ok := d.airlines[strings.ToUpper(strings.TrimSpace(code))]
	return al, ok
}

// AirlineName returns the display name for a carrier code, falling back to
// the code itself for unknown carriers.
func (d *Directory) AirlineName(code string) string {
	if al, ok := d.Airline(code); ok {
		return al.Name
	}
	return code
}

// Airports returns all records. Callers must treat the slice as read-only.
func (d *Directory) Airports() []*Airport {
	return d.airportList
}

// CarrierCodes returns all airline codes in sorted order.
func (d *Directory) CarrierCodes() []string {
	return d.carrierIdx
}

// Hubs returns the connection-hub candidate list.
func (d *Directory) Hubs() []string {
	return d.hubs
}

// HasHub reports whether the carrier operates a hub at the given airport.
func (al *Airline) HasHub(iata string) bool {
	for _, h := range al.Hubs {
		if h == iata {
			return true
		}
	}
	return false
}
