package trail

import "strings"

// Filter narrows a record list the way the trail finder UI does.
type Filter struct {
	Search     string   `json:"search,omitempty"`
	Difficulty []string `json:"difficulty,omitempty"` // lower-case ADAtrail values
	BikeTrail  bool     `json:"bike,omitempty"`
	Fishing    bool     `json:"fishing,omitempty"`
}

// Match reports whether a record passes every active criterion.
func (f Filter) Match(r Record) bool {
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(r.AccessName), strings.ToLower(f.Search)) {
		return false
	}
	if f.BikeTrail && r.BikeTrail != "Yes" {
		return false
	}
	if f.Fishing && r.Fishing != "Yes" {
		return false
	}
	if len(f.Difficulty) == 0 {
		return true
	}

	level := strings.ToLower(r.ADATrail)
	for _, d := range f.Difficulty {
		if d == level {
			return true
		}
	}
	return false
}

// Apply returns the matching records in their original order.
func (f Filter) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
