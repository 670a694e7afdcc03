package analytics

import "errors"

// metric channel extraction order; also the reporting order in Missing.
const (
	metricTemperature   = "temperature"
	metricPrecipitation = "precipitation"
	metricWind          = "wind"
	metricClouds        = "clouds"
	metricUV            = "uv"
)

// Analyze flattens the multi-year raw sample set into per-metric sequences
// and dispatches each per-metric analyzer. Date keys are driven by the
// temperature-min sub-map; a channel missing a date, or holding a nil value,
// is skipped without affecting the other channels.
//
// An empty input yields ErrNoData. An individual metric with no samples
// degrades to a nil summary recorded in Report.Missing; its siblings are
// still computed.
func Analyze(years []YearData, ch Channels) (*Report, error) {
	if len(years) == 0 {
		return nil, ErrNoData
	}

	var tempMin, tempMax, wind, precip, cloud, uv []float64

	collect := func(year YearData, channel, dateKey string, dst *[]float64) {
		sub, ok := year[channel]
		if !ok {
			return
		}
		if v, ok := sub[dateKey]; ok && v != nil {
			*dst = append(*dst, *v)
		}
	}

	for _, year := range years {
		for dateKey := range year[ch.TempMin] {
			collect(year, ch.TempMin, dateKey, &tempMin)
			collect(year, ch.TempMax, dateKey, &tempMax)
			collect(year, ch.Wind, dateKey, &wind)
			collect(year, ch.Precip, dateKey, &precip)
			collect(year, ch.Cloud, dateKey, &cloud)
			collect(year, ch.UV, dateKey, &uv)
		}
	}

	report := &Report{YearsAnalyzed: len(years)}

	record := func(metric string, err error) {
		if errors.Is(err, ErrInsufficientData) {
			report.Missing = append(report.Missing, metric)
		}
	}

	var err error
	report.Temperature, err = AnalyzeTemperature(tempMin, tempMax)
	record(metricTemperature, err)

	report.Precipitation, err = AnalyzePrecipitation(precip)
	record(metricPrecipitation, err)

	report.Wind, err = AnalyzeWind(wind)
	record(metricWind, err)

	report.Clouds, err = AnalyzeClouds(cloud)
	record(metricClouds, err)

	report.UV, err = AnalyzeUV(uv)
	record(metricUV, err)

	return report, nil
}
