package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// 1 when the artifact was loaded, 0 otherwise
	ArtifactAvailable = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "premium_artifact_available",
		Help: "Whether the model and scaler artifacts are loaded",
	}, []string{"artifact"})

	// Predictions by outcome (ok, unavailable, error)
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "premium_predictions_total",
		Help: "Total number of premium predictions by outcome",
	}, []string{"outcome"})

	// Rendered reports by risk level
	RiskLevelTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "premium_risk_level_total",
		Help: "Total number of rendered premium reports by risk level",
	}, []string{"risk"})

	// Predicted premium distribution
	PredictedPremium = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "premium_predicted_value_dollars",
		Help:    "Distribution of predicted annual premiums",
		Buckets: []float64{2000, 5000, 10000, 15000, 20000, 30000, 35000, 45000, 60000},
	})
)

func Init() {
	prometheus.MustRegister(
		ArtifactAvailable,
		PredictionsTotal,
		RiskLevelTotal,
		PredictedPremium,
	)
}

func SetArtifactStatus(model, scaler bool) {
	ArtifactAvailable.WithLabelValues("model").Set(boolToFloat(model))
	ArtifactAvailable.WithLabelValues("scaler").Set(boolToFloat(scaler))
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
