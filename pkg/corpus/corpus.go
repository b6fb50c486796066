// Package corpus loads the Billboard song corpus from tabular input and
// assigns each record a stable identifier and a decade bucket.
package corpus

import "fmt"

// Decade is the coarse grouping of a song's chart year.
type Decade int

const (
	DecadeUnknown Decade = iota
	Decade2000s
	Decade2010s
	Decade2020s
)

// decadeNames maps Decade values to their display names.
var decadeNames = map[Decade]string{
	DecadeUnknown: "unknown",
	Decade2000s:   "2000s",
	Decade2010s:   "2010s",
	Decade2020s:   "2020s",
}

// String returns the display name of the decade bucket.
func (d Decade) String() string {
	if name, ok := decadeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Decade(%d)", int(d))
}

// DecadeOf buckets a chart year. Years before 2000 land in DecadeUnknown,
// the same bucket used for missing or unparseable years; downstream code
// treats the two causes identically.
func DecadeOf(year int) Decade {
	switch {
	case year >= 2020:
		return Decade2020s
	case year >= 2010:
		return Decade2010s
	case year >= 2000:
		return Decade2000s
	default:
		return DecadeUnknown
	}
}

// Song is one corpus record. ID is the 1-based position of the record in
// the input file and never changes after loading. Lyrics is rewritten in
// place by the cleaning pass; the other fields are immutable.
type Song struct {
	ID     int
	Year   int
	Decade Decade
	Lyrics string
}
