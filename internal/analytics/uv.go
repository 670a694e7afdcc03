package analytics

// AnalyzeUV summarizes the daily UV index, classifying both the mean and the
// recorded peak. Protection advice keys off the peak.
func AnalyzeUV(values []float64) (*UVSummary, error) {
	if len(values) == 0 {
		return nil, ErrInsufficientData
	}

	avg := mean(values)
	max := maxOf(values)

	return &UVSummary{
		AverageIndex:   round1(avg),
		MaxIndex:       round1(max),
		MedianIndex:    round1(median(values)),
		RiskLevel:      ClassifyUVRisk(avg),
		MaxRiskLevel:   ClassifyUVRisk(max),
		Recommendation: uvRecommendation(max),
	}, nil
}

// uvRecommendation uses the same band boundaries as ClassifyUVRisk.
func uvRecommendation(max float64) string {
	switch {
	case max < 3:
		return "Minimal UV protection required."
	case max < 6:
		return "Use sunscreen. Seek shade around midday."
	case max < 8:
		return "Protection needed: sunscreen, hat and sunglasses."
	case max < 11:
		return "Extra protection needed. Avoid prolonged exposure."
	default:
		return "Extreme UV. Stay out of the sun during midday hours."
	}
}
