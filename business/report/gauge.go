package report

import (
	"math"

	"insureai/domain"
)

// Gauge bands are deliberately not aligned with the risk thresholds.
const (
	GaugeMin = 2000.0
	GaugeMax = 60000.0

	cautionFrom = 15000.0
	dangerFrom  = 35000.0
)

var gaugeBands = []domain.GaugeBand{
	{From: GaugeMin, To: cautionFrom, Color: "#00b894", Name: "safe"},
	{From: cautionFrom, To: dangerFrom, Color: "#fdcb6e", Name: "caution"},
	{From: dangerFrom, To: GaugeMax, Color: "#ff7675", Name: "danger"},
}

// NewGauge describes the gauge with its marker at value.
func NewGauge(value float64) domain.Gauge {
	bands := make([]domain.GaugeBand, len(gaugeBands))
	copy(bands, gaugeBands)

	zone := ""
	if b, ok := BandFor(value); ok {
		zone = b.Name
	}

	return domain.Gauge{
		Min:    GaugeMin,
		Max:    GaugeMax,
		Prefix: "$ ",
		Value:  value,
		Zone:   zone,
		Bands:  bands,
		Threshold: domain.GaugeThreshold{
			Value:     value,
			Color:     "black",
			Width:     4,
			Thickness: 0.75,
		},
	}
}

// BandFor returns the band containing v. The last band is closed on the
// right; values outside the domain have no band.
func BandFor(v float64) (domain.GaugeBand, bool) {
	for i, b := range gaugeBands {
		last := i == len(gaugeBands)-1
		if v >= b.From && (v < b.To || (last && v <= b.To)) {
			return b, true
		}
	}
	return domain.GaugeBand{}, false
}

// Fraction maps v onto [0, 1] across the gauge domain, clamping outside values.
func Fraction(g domain.Gauge, v float64) float64 {
	if g.Max <= g.Min || math.IsNaN(v) {
		return 0
	}
	f := (v - g.Min) / (g.Max - g.Min)
	return math.Max(0, math.Min(1, f))
}
