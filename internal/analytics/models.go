package analytics

import "errors"

var (
	// ErrNoData is returned when the raw multi-year sample set is empty.
	ErrNoData = errors.New("no weather data to analyze")

	// ErrInsufficientData is returned by a per-metric analyzer when its
	// sample sequence is empty.
	ErrInsufficientData = errors.New("insufficient data")
)

// YearData holds one lookback year's raw observations as returned by the
// historical provider: parameter code -> date key ("YYYYMMDD") -> value.
// A nil value means the provider reported the observation as missing.
type YearData map[string]map[string]*float64

// Channels names the parameter codes used to extract each metric's sample
// sequence from a YearData map. Defaults match the NASA POWER daily API.
type Channels struct {
	TempMin string
	TempMax string
	Wind    string
	Precip  string
	Cloud   string
	UV      string
}

// DefaultChannels returns the NASA POWER parameter codes.
func DefaultChannels() Channels {
	return Channels{
		TempMin: "T2M_MIN",
		TempMax: "T2M_MAX",
		Wind:    "WS2M",
		Precip:  "PRECTOTCORR",
		Cloud:   "CLOUD_AMT",
		UV:      "ALLSKY_SFC_UV_INDEX",
	}
}

// Stats is the distributional summary for one scalar sample sequence.
type Stats struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Lowest  float64 `json:"lowest"`
	Highest float64 `json:"highest"`
	StdDev  float64 `json:"stdDev"`
}

// TemperatureSummary summarizes daily min and max temperatures (°C).
type TemperatureSummary struct {
	Min          Stats  `json:"min"`
	Max          Stats  `json:"max"`
	Range        string `json:"range"`        // lowest min .. highest max
	TypicalRange string `json:"typicalRange"` // mean min .. mean max
}

// IntensityBucket counts rainy days falling into one intensity band.
// Percentage is relative to rainy days, not to all days analyzed.
type IntensityBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// IntensityDistribution breaks rainy days down by precipitation amount.
type IntensityDistribution struct {
	Drizzle  IntensityBucket `json:"drizzle"`  // [0.1, 2) mm
	Light    IntensityBucket `json:"light"`    // [2, 10) mm
	Moderate IntensityBucket `json:"moderate"` // [10, 30) mm
	Heavy    IntensityBucket `json:"heavy"`    // >= 30 mm
}

// PrecipitationSummary summarizes daily precipitation (mm).
type PrecipitationSummary struct {
	ProbabilityOfRain   float64                `json:"probabilityOfRain"` // percent
	RainyDays           int                    `json:"rainyDays"`
	TotalDaysAnalyzed   int                    `json:"totalDaysAnalyzed"`
	AverageWhenRained   float64                `json:"averageWhenRained"` // mm, 0 if never rained
	MaxRecorded         float64                `json:"maxRecorded"`
	MedianPrecipitation float64                `json:"medianPrecipitation"`
	Intensity           *IntensityDistribution `json:"intensityDistribution,omitempty"`
	Recommendation      string                 `json:"recommendation"`
}

// WindSummary summarizes daily wind speed (m/s).
type WindSummary struct {
	AverageSpeed      float64   `json:"averageSpeed"`
	MaxSpeed          float64   `json:"maxSpeed"`
	MedianSpeed       float64   `json:"medianSpeed"`
	Classification    WindClass `json:"classification"`
	MaxClassification WindClass `json:"maxClassification"`
	Recommendation    string    `json:"recommendation"`
}

// CloudSummary summarizes daily cloud coverage (percent).
type CloudSummary struct {
	AverageCoverage float64    `json:"averageCoverage"`
	MedianCoverage  float64    `json:"medianCoverage"`
	MinCoverage     float64    `json:"minCoverage"`
	MaxCoverage     float64    `json:"maxCoverage"`
	Classification  CloudClass `json:"classification"`
	SunnyDays       int        `json:"sunnyDays"`  // coverage < 25%
	CloudyDays      int        `json:"cloudyDays"` // coverage > 75%
}

// UVSummary summarizes the daily UV index.
type UVSummary struct {
	AverageIndex   float64 `json:"averageIndex"`
	MaxIndex       float64 `json:"maxIndex"`
	MedianIndex    float64 `json:"medianIndex"`
	RiskLevel      UVRisk  `json:"riskLevel"`
	MaxRiskLevel   UVRisk  `json:"maxRiskLevel"`
	Recommendation string  `json:"recommendation"`
}

// Report groups the per-metric summaries for one analytics request.
// A nil summary means that metric's sample sequence was empty; the metric
// is then also listed in Missing. Metrics fail independently.
type Report struct {
	Temperature   *TemperatureSummary   `json:"temperature,omitempty"`
	Precipitation *PrecipitationSummary `json:"precipitation,omitempty"`
	Wind          *WindSummary          `json:"wind,omitempty"`
	Clouds        *CloudSummary         `json:"clouds,omitempty"`
	UV            *UVSummary            `json:"uv,omitempty"`
	Missing       []string              `json:"missing,omitempty"`
	YearsAnalyzed int                   `json:"yearsAnalyzed"`
}
