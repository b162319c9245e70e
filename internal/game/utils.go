package game

import (
	"fmt"
	"math"
)

// formatPhase formats an animation time as the fraction of one period it
// covers, e.g. "0.50π".
func formatPhase(t float64) string {
	return fmt.Sprintf("%.2fπ", t/math.Pi)
}
