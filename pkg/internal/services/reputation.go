package services

import (
	"math"
	"strconv"
)

// FormatReputation converts a raw account reputation into the familiar
// 25-based score, derived from the digit count and the leading four digits.
func FormatReputation(raw int64) int {
	if raw == 0 {
		return 25
	}

	digits := strconv.FormatInt(raw, 10)
	negative := digits[0] == '-'
	if negative {
		digits = digits[1:]
	}

	leading, _ := strconv.Atoi(digits[:min(4, len(digits))])
	lg := math.Log(float64(leading)) / math.Log(10)
	score := float64(len(digits)-1) + (lg - math.Trunc(lg))
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
	}
	score = math.Max(score-9, 0)
	if negative {
		score = -score
	}

	return int(math.Trunc(score*9 + 25))
}
