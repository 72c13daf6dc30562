package brand

import "math"

// dataQualityScore deducts 30% of each fallback's confidence gap from a
// perfect 100, floored at zero. A profile with no inferred fields scores 100.
func dataQualityScore(fallbacks []FallbackRecord) int {
	var deduction float64
	for _, f := range fallbacks {
		deduction += float64(100-f.Confidence) * 0.3
	}
	score := 100 - int(math.Round(deduction))
	if score < 0 {
		return 0
	}
	return score
}

// confidenceLevel grades overall trust from the mean fallback confidence and
// how many of the critical identity fields had to be inferred.
func confidenceLevel(fallbacks []FallbackRecord) ConfidenceLevel {
	if len(fallbacks) == 0 {
		return ConfidenceHigh
	}
	sum, critical := 0, 0
	for _, f := range fallbacks {
		sum += f.Confidence
		if IsCritical(f.Field) {
			critical++
		}
	}
	mean := float64(sum) / float64(len(fallbacks))
	switch {
	case mean >= 70 && critical <= 1:
		return ConfidenceHigh
	case mean >= 50 && critical <= 3:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
