package services

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Disambiguation policy. The ratio and floor are heuristics tuned against
// caller transcripts, not hard rules: a top candidate must beat the runner-up
// by autoSelectRatio before we commit without asking the caller.
const (
	autoSelectRatio = 3
	runnerUpFloor   = 1
	maxCandidates   = 3

	// Exact IATA code matches dominate any tier-based score.
	exactCodeScore = 100

	// Proximity search keeps the 5 nearest airports within 75 miles;
	// beyond that the airport serves a different metro area.
	proximityLimit       = 5
	proximityCutoffMiles = 75.0
	proximityDecayMiles  = 50.0
)

// ResolutionStatus distinguishes a clear winner from a list needing caller
// disambiguation and from no match at all.
type ResolutionStatus string

const (
	ResolutionAutoSelected ResolutionStatus = "AUTO_SELECTED"
	ResolutionAmbiguous    ResolutionStatus = "AMBIGUOUS"
	ResolutionNotFound     ResolutionStatus = "NOT_FOUND"
)

// LocationCandidate is one ranked airport candidate. Score aggregates the
// keyword and proximity signals; Source records which contributed.
type LocationCandidate struct {
	IATA   string
	Name   string
	City   string
	Score  int
	Source string // "keyword", "proximity" or "both"
}

type Resolution struct {
	Status     ResolutionStatus
	Candidates []LocationCandidate
}

// Resolver turns a freely-spoken place name into ranked airport candidates
// by merging a keyword match against the directory with an optional
// proximity match around a geocoded coordinate.
type Resolver struct {
	dir *Directory
	log *zap.Logger
}

func NewResolver(dir *Directory, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{dir: dir, log: log}
}

// Resolve ranks directory entries for the given text. A nil coordinate skips
// the proximity pass. It never errors: an unmatchable input yields NotFound.
func (r *Resolver) Resolve(text string, coord *Coordinate) Resolution {
	// Spoken locations often arrive as "Miami, Florida"; keep just the
	// city/airport part before the first comma.
	keyword := strings.TrimSpace(text)
	if i := strings.Index(keyword, ","); i >= 0 {
		keyword = strings.TrimSpace(keyword[:i])
	}
	if keyword == "" {
		return Resolution{Status: ResolutionNotFound}
	}

	byIATA := make(map[string]*LocationCandidate)
	var ordered []*LocationCandidate

	for _, c := range r.keywordMatches(keyword) {
		cand := c
		byIATA[cand.IATA] = &cand
		ordered = append(ordered, &cand)
	}

	if coord != nil {
		for _, c := range r.proximityMatches(coord.Lat, coord.Lng) {
			if existing, ok := byIATA[c.IATA]; ok {
				// Corroboration: both signals agree, sum the scores.
				existing.Score += c.Score
				existing.Source = "both"
				continue
			}
			cand := c
			byIATA[cand.IATA] = &cand
			ordered = append(ordered, &cand)
		}
	}

	if len(ordered) == 0 {
		r.log.Debug("no airport candidates", zap.String("text", text))
		return Resolution{Status: ResolutionNotFound}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	ranked := make([]LocationCandidate, len(ordered))
	for i, c := range ordered {
		ranked[i] = *c
	}

	runnerUp := runnerUpFloor
	if len(ranked) > 1 && ranked[1].Score > runnerUp {
		runnerUp = ranked[1].Score
	}
	if len(ranked) == 1 || ranked[0].Score > autoSelectRatio*runnerUp {
		r.log.Debug("auto-selected airport",
			zap.String("text", text), zap.String("iata", ranked[0].IATA))
		return Resolution{Status: ResolutionAutoSelected, Candidates: ranked[:1]}
	}

	if len(ranked) > maxCandidates {
		ranked = ranked[:maxCandidates]
	}
	r.log.Debug("ambiguous location",
		zap.String("text", text), zap.Int("candidates", len(ranked)))
	return Resolution{Status: ResolutionAmbiguous, Candidates: ranked}
}

// keywordMatches does a case-insensitive substring test against each record's
// code, name and city. Matches score the record's traffic tier; an exact code
// match is forced to a dominant score so "JFK" never needs disambiguation.
func (r *Resolver) keywordMatches(keyword string) []LocationCandidate {
	lower := strings.ToLower(keyword)
	var out []LocationCandidate
	for _, a := range r.dir.Airports() {
		if !strings.Contains(strings.ToLower(a.IATA), lower) &&
			!strings.Contains(strings.ToLower(a.Name), lower) &&
			!strings.Contains(strings.ToLower(a.City), lower) {
			continue
		}
		score := a.Tier
		if strings.EqualFold(keyword, a.IATA) {
			score = exactCodeScore
		}
		out = append(out, LocationCandidate{
			IATA:   a.IATA,
			Name:   a.Name,
			City:   a.City,
			Score:  score,
			Source: "keyword",
		})
	}
	return out
}

// proximityMatches scores the nearest airports to a coordinate with an
// exponential distance decay, nearest first.
func (r *Resolver) proximityMatches(lat, lng float64) []LocationCandidate {
	type scored struct {
		airport *Airport
		dist    float64
	}
	all := make([]scored, 0, len(r.dir.Airports()))
	for _, a := range r.dir.Airports() {
		all = append(all, scored{a, HaversineMiles(lat, lng, a.Lat, a.Lng)})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].dist < all[j].dist })

	var out []LocationCandidate
	for _, s := range all {
		if len(out) >= proximityLimit {
			break
		}
		if s.dist > proximityCutoffMiles {
			break
		}
		score := int(100 * math.Exp(-s.dist/proximityDecayMiles))
		if score < 1 {
			score = 1
		}
		out = append(out, LocationCandidate{
			IATA:   s.airport.IATA,
			Name:   s.airport.Name,
			City:   s.airport.City,
			Score:  score,
			Source: "proximity",
		})
	}
	return out
}
