package recommend

// Dimension is one decision axis an activity profile constrains.
type Dimension string

const (
	DimTemperature     Dimension = "temperature"      // midpoint of mean min/max, °C
	DimWind            Dimension = "wind"             // mean speed, m/s
	DimUV              Dimension = "uv"               // mean index
	DimRainProbability Dimension = "rain_probability" // percent
	DimClouds          Dimension = "clouds"           // mean coverage, percent
)

// Rule is an inclusive acceptable range on one dimension.
type Rule struct {
	Dimension Dimension `json:"dimension"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
}

// Profile is the configured acceptable-range table for one activity.
// Rules are ordered; violations are reported in rule order.
type Profile struct {
	Name  string `json:"name"`
	Rules []Rule `json:"rules"`
}

// DefaultProfiles returns the built-in activity table. Order matters: the
// first recommended activity in a multi-activity evaluation is suggested as
// the best option.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Name: "running",
			Rules: []Rule{
				{DimTemperature, 10, 22},
				{DimWind, 0, 5},
				{DimUV, 0, 6},
				{DimRainProbability, 0, 30},
				{DimClouds, 0, 70},
			},
		},
		{
			Name: "cycling",
			Rules: []Rule{
				{DimTemperature, 12, 26},
				{DimWind, 0, 7},
				{DimUV, 0, 7},
				{DimRainProbability, 0, 40},
				{DimClouds, 0, 80},
			},
		},
		{
			Name: "hiking",
			Rules: []Rule{
				{DimTemperature, 8, 24},
				{DimWind, 0, 6},
				{DimUV, 0, 6},
				{DimRainProbability, 0, 30},
				{DimClouds, 0, 80},
			},
		},
		{
			Name: "camping",
			Rules: []Rule{
				{DimTemperature, 10, 22},
				{DimWind, 0, 4},
				{DimUV, 0, 7},
				{DimRainProbability, 0, 20},
				{DimClouds, 0, 90},
			},
		},
		{
			Name: "picnic",
			Rules: []Rule{
				{DimTemperature, 15, 28},
				{DimWind, 0, 4},
				{DimUV, 0, 6},
				{DimRainProbability, 0, 10},
				{DimClouds, 10, 70},
			},
		},
		{
			Name: "beach",
			Rules: []Rule{
				{DimTemperature, 20, 32},
				{DimWind, 0, 6},
				{DimUV, 3, 8}, // wants some sun, but not extreme
				{DimRainProbability, 0, 10},
				{DimClouds, 10, 50},
			},
		},
	}
}
