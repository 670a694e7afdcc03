package analytics

// Classifiers map a single scalar to a human-meaningful band. All bands are
// inclusive on the lower bound and exclusive on the upper bound, except the
// final unbounded band.

// WindClass is a categorical wind speed band.
type WindClass string

const (
	WindCalm        WindClass = "calm"
	WindLightBreeze WindClass = "light breeze"
	WindModerate    WindClass = "moderate"
	WindStrong      WindClass = "strong"
	WindVeryStrong  WindClass = "very strong"
)

// ClassifyWindSpeed classifies a wind speed in m/s.
func ClassifyWindSpeed(speed float64) WindClass {
	switch {
	case speed < 2:
		return WindCalm
	case speed < 5:
		return WindLightBreeze
	case speed < 10:
		return WindModerate
	case speed < 15:
		return WindStrong
	default:
		return WindVeryStrong
	}
}

// CloudClass is a categorical cloud coverage band.
type CloudClass string

const (
	CloudClear        CloudClass = "clear"
	CloudPartlyCloudy CloudClass = "partly cloudy"
	CloudCloudy       CloudClass = "cloudy"
	CloudOvercast     CloudClass = "overcast"
)

// ClassifyCloudCoverage classifies a cloud coverage percentage.
func ClassifyCloudCoverage(coverage float64) CloudClass {
	switch {
	case coverage < 25:
		return CloudClear
	case coverage < 50:
		return CloudPartlyCloudy
	case coverage < 75:
		return CloudCloudy
	default:
		return CloudOvercast
	}
}

// UVRisk is a categorical UV exposure risk band.
type UVRisk string

const (
	UVLow      UVRisk = "low"
	UVModerate UVRisk = "moderate"
	UVHigh     UVRisk = "high"
	UVVeryHigh UVRisk = "very high"
	UVExtreme  UVRisk = "extreme"
)

// ClassifyUVRisk classifies a UV index value.
func ClassifyUVRisk(index float64) UVRisk {
	switch {
	case index < 3:
		return UVLow
	case index < 6:
		return UVModerate
	case index < 8:
		return UVHigh
	case index < 11:
		return UVVeryHigh
	default:
		return UVExtreme
	}
}

// classifyIntensity buckets rainy-day precipitation amounts (mm) and reports
// each bucket's share of rainy days. Returns nil when there are no rainy days.
func classifyIntensity(rainyDays []float64) *IntensityDistribution {
	if len(rainyDays) == 0 {
		return nil
	}

	var drizzle, light, moderate, heavy int
	for _, v := range rainyDays {
		switch {
		case v < 2:
			drizzle++
		case v < 10:
			light++
		case v < 30:
			moderate++
		default:
			heavy++
		}
	}

	total := float64(len(rainyDays))
	bucket := func(count int) IntensityBucket {
		return IntensityBucket{
			Count:      count,
			Percentage: round1(float64(count) / total * 100),
		}
	}

	return &IntensityDistribution{
		Drizzle:  bucket(drizzle),
		Light:    bucket(light),
		Moderate: bucket(moderate),
		Heavy:    bucket(heavy),
	}
}
