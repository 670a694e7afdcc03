package analytics

// RainThresholdMM is the minimum daily precipitation counted as a rain day.
// Amounts at or below it are trace and ignored.
const RainThresholdMM = 0.1

// AnalyzePrecipitation summarizes daily precipitation and derives the
// historical rain probability for the queried calendar day.
func AnalyzePrecipitation(values []float64) (*PrecipitationSummary, error) {
	if len(values) == 0 {
		return nil, ErrInsufficientData
	}

	var rainy []float64
	for _, v := range values {
		if v > RainThresholdMM {
			rainy = append(rainy, v)
		}
	}

	totalDays := len(values)
	probability := round1(float64(len(rainy)) / float64(totalDays) * 100)

	avgWhenRained := 0.0
	if len(rainy) > 0 {
		avgWhenRained = mean(rainy)
	}

	return &PrecipitationSummary{
		ProbabilityOfRain:   probability,
		RainyDays:           len(rainy),
		TotalDaysAnalyzed:   totalDays,
		AverageWhenRained:   round1(avgWhenRained),
		MaxRecorded:         round1(maxOf(values)),
		MedianPrecipitation: round1(median(values)),
		Intensity:           classifyIntensity(rainy),
		Recommendation:      rainRecommendation(probability, avgWhenRained),
	}, nil
}

// rainRecommendation tiers advice by rain probability, escalating when high
// probability coincides with heavy average amounts on rain days.
func rainRecommendation(probability, avgMM float64) string {
	switch {
	case probability < 20:
		return "Very low chance of rain. Ideal conditions."
	case probability < 40:
		return "Low chance of rain. Likely safe."
	case probability < 60:
		return "Moderate chance of rain. Consider bringing protection."
	case probability < 80:
		return "High chance of rain. Plan with caution."
	case avgMM > 20:
		return "Very high chance of heavy rain. Not recommended."
	default:
		return "Very high chance of rain. Bring waterproof gear."
	}
}
