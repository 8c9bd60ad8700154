package utility

import (
	"fmt"
	"math/rand"
)

// RandomColorHex returns a #rrggbb color with each component between 4 and
// 251, avoiding near-black and near-white extremes so names stay readable.
func RandomColorHex() string {
	r := rand.Intn(248) + 4
	g := rand.Intn(248) + 4
	b := rand.Intn(248) + 4
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
