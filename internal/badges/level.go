package badges

const pointsPerLevel = 100

// Level maps cumulative points to a 1-based level: one level per 100 points.
func Level(totalPoints int) int {
	if totalPoints < 0 {
		return 1
	}
	return totalPoints/pointsPerLevel + 1
}
