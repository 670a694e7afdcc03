package analytics

import "fmt"

// AnalyzeTemperature summarizes daily minimum and maximum temperatures
// independently. Both sequences must be non-empty; a partially observed
// temperature record is not reported.
func AnalyzeTemperature(minValues, maxValues []float64) (*TemperatureSummary, error) {
	if len(minValues) == 0 || len(maxValues) == 0 {
		return nil, ErrInsufficientData
	}

	summarize := func(values []float64) Stats {
		return Stats{
			Average: round1(mean(values)),
			Median:  round1(median(values)),
			Lowest:  round1(minOf(values)),
			Highest: round1(maxOf(values)),
			StdDev:  round1(stdDev(values)),
		}
	}

	return &TemperatureSummary{
		Min: summarize(minValues),
		Max: summarize(maxValues),
		Range: fmt.Sprintf("%.1f°C - %.1f°C",
			round1(minOf(minValues)), round1(maxOf(maxValues))),
		TypicalRange: fmt.Sprintf("%.1f°C - %.1f°C",
			round1(mean(minValues)), round1(mean(maxValues))),
	}, nil
}
