package services

import (
	"fmt"
	"math"
	"time"
)

const earthRadiusMiles = 3959

// Amadeus local timestamps carry no UTC offset; the timezone is implied by
// the airport on each side of the segment.
const localTimeLayout = "2006-01-02T15:04:05"

// HaversineMiles returns the great-circle distance in miles between two
// lat/lng points.
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlng := radians(lng2 - lng1)
	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Pow(math.Sin(dlng/2), 2)
	return earthRadiusMiles * 2 * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FlightMinutes estimates flight time: ~500 mph cruise + 30 min taxi/climb/descent.
func FlightMinutes(distanceMiles float64) int {
	return int(distanceMiles/500*60) + 30
}

// FormatISODuration converts minutes to an ISO 8601 duration string.
func FormatISODuration(minutes int) string {
	h, m := minutes/60, minutes%60
	if m != 0 {
		return fmt.Sprintf("PT%dH%dM", h, m)
	}
	return fmt.Sprintf("PT%dH", h)
}

// loadLocation resolves an IANA timezone id, falling back to UTC for the few
// records whose zone might be missing from the host tz database.
func loadLocation(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// departureInstant builds the absolute instant for "date at hour o'clock,
// local to loc". DST gaps resolve the way time.Date does, which matches how
// a published schedule would shift.
func departureInstant(date string, hour int, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc), nil
}

// formatLocal renders an instant as local wall-clock time in loc.
func formatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(localTimeLayout)
}
