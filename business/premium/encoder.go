package premium

import (
	"fmt"

	"insureai/domain"
)

// Scaler normalizes the [age, bmi, children, cluster] quad.
type Scaler interface {
	Width() int
	Transform(x []float64) ([]float64, error)
}

func sexBit(s domain.Sex) float64 {
	if s == domain.SexMale {
		return 0
	}
	return 1
}

func smokerBit(smoker bool) float64 {
	if smoker {
		return 1
	}
	return 0
}

// regionBits one-hot encodes the region. Northeast is the all-zero baseline.
func regionBits(r domain.Region) (nw, se, sw float64) {
	switch r {
	case domain.RegionNorthwest:
		nw = 1
	case domain.RegionSoutheast:
		se = 1
	case domain.RegionSouthwest:
		sw = 1
	}
	return nw, se, sw
}

// riskCluster stands in for the upstream clustering step: smokers land in
// tier 2, everybody else in tier 1.
func riskCluster(smoker bool) float64 {
	if smoker {
		return 2
	}
	return 1
}

func scaleQuad(in domain.RawInput, scaler Scaler) (domain.ScaledQuad, error) {
	raw := []float64{
		float64(in.Age),
		in.BMI,
		float64(in.Children),
		riskCluster(in.Smoker),
	}

	out, err := scaler.Transform(raw)
	if err != nil {
		return domain.ScaledQuad{}, fmt.Errorf("scale features: %w", err)
	}
	if len(out) != domain.ScalerWidth {
		return domain.ScaledQuad{}, fmt.Errorf("%w: scaler returned %d values, want %d",
			ErrSchemaMismatch, len(out), domain.ScalerWidth)
	}

	return domain.ScaledQuad{
		Age:      out[0],
		BMI:      out[1],
		Children: out[2],
		Cluster:  out[3],
	}, nil
}

// Encode maps a form submission to the model input, in domain.FeatureSchema order:
// [age_s, sex, bmi_s, children_s, smoker, region_nw, region_se, region_sw, cluster_s].
// Bounds are the caller's responsibility.
func Encode(in domain.RawInput, scaler Scaler) (domain.FeatureVector, error) {
	if scaler == nil {
		return domain.FeatureVector{}, ErrScalerUnavailable
	}

	q, err := scaleQuad(in, scaler)
	if err != nil {
		return domain.FeatureVector{}, err
	}

	nw, se, sw := regionBits(in.Region)

	return domain.FeatureVector{
		q.Age,
		sexBit(in.Sex),
		q.BMI,
		q.Children,
		smokerBit(in.Smoker),
		nw,
		se,
		sw,
		q.Cluster,
	}, nil
}
