package analytics

// AnalyzeClouds summarizes daily cloud coverage and counts the clearly sunny
// (< 25% coverage) and clearly overcast (> 75%) days in the sample.
func AnalyzeClouds(values []float64) (*CloudSummary, error) {
	if len(values) == 0 {
		return nil, ErrInsufficientData
	}

	var sunny, cloudy int
	for _, v := range values {
		if v < 25 {
			sunny++
		}
		if v > 75 {
			cloudy++
		}
	}

	avg := mean(values)

	return &CloudSummary{
		AverageCoverage: round1(avg),
		MedianCoverage:  round1(median(values)),
		MinCoverage:     round1(minOf(values)),
		MaxCoverage:     round1(maxOf(values)),
		Classification:  ClassifyCloudCoverage(avg),
		SunnyDays:       sunny,
		CloudyDays:      cloudy,
	}, nil
}
