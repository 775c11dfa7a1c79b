package premium

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EncodedRegionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "premium_encoded_inputs_total",
			Help: "Count of encoded submissions by region and smoker tier.",
		},
		[]string{"region", "cluster"},
	)
)

func init() {
	prometheus.MustRegister(EncodedRegionsTotal)
}
