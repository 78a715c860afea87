// Package zonestats holds the per-zone shooting data model produced by the
// basketball-reference scraper and consumed by the chart composer.
package zonestats

import "fmt"

// Zone is a named region of the court used to bucket shot attempts.
type Zone int

const (
	RestrictedArea Zone = iota
	Paint
	MidRange
	LeftCorner3
	RightCorner3
	AboveBreak3
	FreeThrow
)

// Zones lists every zone in display order.
var Zones = []Zone{
	RestrictedArea,
	Paint,
	MidRange,
	LeftCorner3,
	RightCorner3,
	AboveBreak3,
	FreeThrow,
}

func (z Zone) String() string {
	switch z {
	case RestrictedArea:
		return "Restricted Area"
	case Paint:
		return "In The Paint (Non-RA)"
	case MidRange:
		return "Mid-Range"
	case LeftCorner3:
		return "Left Corner 3"
	case RightCorner3:
		return "Right Corner 3"
	case AboveBreak3:
		return "Above the Break 3"
	case FreeThrow:
		return "Free Throws"
	}
	return fmt.Sprintf("Zone(%d)", int(z))
}

// Abbrev returns the short label used on chart annotations.
func (z Zone) Abbrev() string {
	switch z {
	case RestrictedArea:
		return "RA"
	case Paint:
		return "Paint"
	case MidRange:
		return "Mid"
	case LeftCorner3:
		return "LC3"
	case RightCorner3:
		return "RC3"
	case AboveBreak3:
		return "ATB3"
	case FreeThrow:
		return "FT"
	}
	return z.String()
}

// ZoneStats records makes and attempts for one zone of one player-season.
// A zone with zero attempts is never stored as a ZoneStats value, it is
// left out of the profile map entirely. Zero percent is a real statistic
// and must stay distinguishable from "never shot from here".
type ZoneStats struct {
	Attempts int
	Makes    int
}

// Pct returns makes/attempts as a fraction in [0, 1].
// ok is false when the zone has no attempts.
func (s ZoneStats) Pct() (pct float64, ok bool) {
	if s.Attempts <= 0 {
		return 0, false
	}
	return float64(s.Makes) / float64(s.Attempts), true
}

// ShotCategory groups zones into the three chart families.
type ShotCategory int

const (
	ThreePoint ShotCategory = iota
	TwoPoint
	FreeThrows
)

var Categories = []ShotCategory{ThreePoint, TwoPoint, FreeThrows}

func (c ShotCategory) String() string {
	switch c {
	case ThreePoint:
		return "3PT"
	case TwoPoint:
		return "2PT"
	case FreeThrows:
		return "FT"
	}
	return fmt.Sprintf("ShotCategory(%d)", int(c))
}

// CategoryZones returns the zones that belong to a shot category,
// in display order.
func CategoryZones(c ShotCategory) []Zone {
	switch c {
	case ThreePoint:
		return []Zone{LeftCorner3, RightCorner3, AboveBreak3}
	case TwoPoint:
		return []Zone{RestrictedArea, Paint, MidRange}
	case FreeThrows:
		return []Zone{FreeThrow}
	}
	return nil
}

// PlayerShootingProfile is the complete per-zone shooting record for one
// player in one season. It is built once by the scraper and read-only
// afterwards.
type PlayerShootingProfile struct {
	Name   string
	Season string
	Zones  map[Zone]ZoneStats
}

// CategoryTotals sums attempts and makes over the zones of a category.
// Absent zones contribute nothing.
func (p *PlayerShootingProfile) CategoryTotals(c ShotCategory) ZoneStats {
	var total ZoneStats
	for _, z := range CategoryZones(c) {
		s, ok := p.Zones[z]
		if !ok {
			continue
		}
		total.Attempts += s.Attempts
		total.Makes += s.Makes
	}
	return total
}

// FieldGoalTotals sums attempts and makes over every field-goal zone,
// free throws excluded.
func (p *PlayerShootingProfile) FieldGoalTotals() ZoneStats {
	three := p.CategoryTotals(ThreePoint)
	two := p.CategoryTotals(TwoPoint)
	return ZoneStats{
		Attempts: three.Attempts + two.Attempts,
		Makes:    three.Makes + two.Makes,
	}
}
