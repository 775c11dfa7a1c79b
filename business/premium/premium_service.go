package premium

import (
	"context"
	"fmt"
	"strconv"

	"insureai/domain"
	"insureai/pkg/logger"
	"insureai/pkg/metrics"
)

// ArtifactProvider hands out the process-wide artifacts.
type ArtifactProvider interface {
	Load(ctx context.Context) *Artifacts
}

type Service struct {
	artifacts ArtifactProvider
}

func NewService(artifacts ArtifactProvider) *Service {
	return &Service{artifacts: artifacts}
}

// Status reports which artifacts are loaded.
func (s *Service) Status(ctx context.Context) domain.ArtifactStatus {
	return s.artifacts.Load(ctx).Status
}

// Predict runs encode -> infer for one submission. It never invents a
// number: when inference cannot run the result is tagged unavailable.
func (s *Service) Predict(ctx context.Context, in domain.RawInput) domain.Prediction {
	tid := TraceIDFromContext(ctx)

	if err := ctx.Err(); err != nil {
		return s.unavailable(tid, fmt.Errorf("context error: %w", err))
	}

	a := s.artifacts.Load(ctx)
	if !a.Ready() {
		reason := a.Status.Reason
		if reason == "" {
			reason = ErrModelUnavailable.Error()
		}
		metrics.PredictionsTotal.WithLabelValues("unavailable").Inc()
		logger.Debug("premium_unavailable", "trace_id", tid, "reason", reason)
		return domain.Prediction{Status: domain.PredictionUnavailable, Reason: reason}
	}

	x, err := Encode(in, a.Scaler)
	if err != nil {
		return s.unavailable(tid, err)
	}
	EncodedRegionsTotal.WithLabelValues(string(in.Region), strconv.Itoa(int(riskCluster(in.Smoker)))).Inc()

	value, err := a.Model.Predict(x.Slice())
	if err != nil {
		return s.unavailable(tid, fmt.Errorf("inference: %w", err))
	}
	if value < 0 {
		value = 0
	}

	metrics.PredictionsTotal.WithLabelValues("ok").Inc()
	metrics.PredictedPremium.Observe(value)
	logger.Debug("premium_predicted",
		"trace_id", tid,
		"age", in.Age,
		"bmi", in.BMI,
		"sex", in.Sex,
		"children", in.Children,
		"smoker", in.Smoker,
		"region", in.Region,
		"value", value,
	)

	return domain.Prediction{Status: domain.PredictionOK, Value: value}
}

func (s *Service) unavailable(tid string, err error) domain.Prediction {
	metrics.PredictionsTotal.WithLabelValues("error").Inc()
	logger.Error("Failed to predict premium", "trace_id", tid, "error", err)
	return domain.Prediction{Status: domain.PredictionUnavailable, Reason: err.Error()}
}
