package premium

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"insureai/domain"
	"insureai/pkg/logger"
	"insureai/pkg/metrics"
)

// Model is the trained regressor.
type Model interface {
	Width() int
	Predict(x []float64) (float64, error)
}

// ArtifactRepository reads the exported model and scaler. A missing artifact
// is reported with found=false and a nil error.
type ArtifactRepository interface {
	LoadModel(ctx context.Context) (model Model, found bool, err error)
	LoadScaler(ctx context.Context) (scaler Scaler, found bool, err error)
}

// Artifacts is shared read-only by every prediction once loaded.
type Artifacts struct {
	Model  Model
	Scaler Scaler
	Status domain.ArtifactStatus
}

// Ready reports whether both model and scaler are present.
func (a *Artifacts) Ready() bool {
	return a != nil && a.Model != nil && a.Scaler != nil
}

// ArtifactCache loads the artifacts on first use and hands out the same value
// for the life of the process.
type ArtifactCache struct {
	repo      ArtifactRepository
	once      sync.Once
	artifacts *Artifacts
}

func NewArtifactCache(repo ArtifactRepository) *ArtifactCache {
	return &ArtifactCache{repo: repo}
}

// Load ignores cancellation of ctx: the first call's result is kept for the
// life of the process and must not depend on one caller's deadline.
func (c *ArtifactCache) Load(ctx context.Context) *Artifacts {
	c.once.Do(func() {
		c.artifacts = loadArtifacts(context.WithoutCancel(ctx), c.repo)
		metrics.SetArtifactStatus(c.artifacts.Status.Model, c.artifacts.Status.Scaler)
	})
	return c.artifacts
}

func loadArtifacts(ctx context.Context, repo ArtifactRepository) *Artifacts {
	a, err := readArtifacts(ctx, repo)
	if err != nil {
		// one bad artifact poisons the pair
		logger.Error("Failed to load artifacts", "error", err)
		return &Artifacts{Status: domain.ArtifactStatus{Reason: err.Error()}}
	}

	var missing []string
	if a.Model == nil {
		missing = append(missing, "model")
	}
	if a.Scaler == nil {
		missing = append(missing, "scaler")
	}
	if len(missing) > 0 {
		noun := "artifact"
		if len(missing) > 1 {
			noun = "artifacts"
		}
		a.Status.Reason = fmt.Sprintf("%s %s not found", strings.Join(missing, " and "), noun)
		logger.Warn("Artifacts missing", "missing", missing)
	} else {
		logger.Info("Artifacts loaded", "model_width", a.Model.Width(), "scaler_width", a.Scaler.Width())
	}

	a.Status.Model = a.Model != nil
	a.Status.Scaler = a.Scaler != nil
	return a
}

func readArtifacts(ctx context.Context, repo ArtifactRepository) (*Artifacts, error) {
	if repo == nil {
		return &Artifacts{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	a := &Artifacts{}

	model, found, err := repo.LoadModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if found {
		if model.Width() != domain.FeatureWidth {
			return nil, fmt.Errorf("%w: model expects %d features, encoder produces %d",
				ErrSchemaMismatch, model.Width(), domain.FeatureWidth)
		}
		a.Model = model
	}

	scaler, found, err := repo.LoadScaler(ctx)
	if err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	if found {
		if scaler.Width() != domain.ScalerWidth {
			return nil, fmt.Errorf("%w: scaler expects %d features, encoder produces %d",
				ErrSchemaMismatch, scaler.Width(), domain.ScalerWidth)
		}
		a.Scaler = scaler
	}

	return a, nil
}
