package analytics

// AnalyzeWind summarizes daily wind speed, classifying both the mean and the
// recorded peak.
func AnalyzeWind(values []float64) (*WindSummary, error) {
	if len(values) == 0 {
		return nil, ErrInsufficientData
	}

	avg := mean(values)
	max := maxOf(values)

	return &WindSummary{
		AverageSpeed:      round1(avg),
		MaxSpeed:          round1(max),
		MedianSpeed:       round1(median(values)),
		Classification:    ClassifyWindSpeed(avg),
		MaxClassification: ClassifyWindSpeed(max),
		Recommendation:    windRecommendation(avg, max),
	}, nil
}

// windRecommendation keys off the recorded peak first, then the mean.
func windRecommendation(avg, max float64) string {
	switch {
	case max > 15:
		return "Very strong winds recorded. Use caution outdoors."
	case max > 10:
		return "Strong winds possible. Consider sheltered activities."
	case avg < 5:
		return "Generally calm winds. Good conditions."
	default:
		return "Moderate winds. Acceptable conditions."
	}
}
