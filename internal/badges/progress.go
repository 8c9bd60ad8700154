package badges

import "math"

// Progress estimates how close a user is to unlocking a badge, as an integer
// percentage. Each requirement contributes min(100, 100*current/target) and
// the result is the rounded mean across requirements. This is a blended
// display estimate: a two-requirement badge with one requirement maxed and
// the other untouched reads 50% while remaining locked, since unlocking
// still needs every requirement met.
func Progress(b Badge, stats Stats) int {
	if len(b.Requirements) == 0 {
		return 0
	}

	total := 0.0
	for _, req := range b.Requirements {
		if req.Target <= 0 {
			continue
		}
		pct := float64(StatValue(stats, req.Type)) / float64(req.Target) * 100
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
		total += pct
	}
	return int(math.Round(total / float64(len(b.Requirements))))
}
