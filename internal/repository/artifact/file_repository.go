package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"insureai/business/premium"
	"insureai/domain"
	"insureai/pkg/mlmodel"
)

type FileRepository struct {
	ModelPath  string
	ScalerPath string
}

var _ premium.ArtifactRepository = (*FileRepository)(nil)

func NewFileRepository(modelPath, scalerPath string) *FileRepository {
	return &FileRepository{ModelPath: modelPath, ScalerPath: scalerPath}
}

func (r *FileRepository) LoadModel(ctx context.Context) (premium.Model, bool, error) {
	var art domain.ForestArtifact
	found, err := readJSON(ctx, r.ModelPath, &art)
	if err != nil || !found {
		return nil, found, err
	}

	forest, err := buildForest(art)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", r.ModelPath, err)
	}
	return forest, true, nil
}

func (r *FileRepository) LoadScaler(ctx context.Context) (premium.Scaler, bool, error) {
	var art domain.ScalerArtifact
	found, err := readJSON(ctx, r.ScalerPath, &art)
	if err != nil || !found {
		return nil, found, err
	}

	scaler, err := buildScaler(art)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", r.ScalerPath, err)
	}
	return scaler, true, nil
}

// readJSON decodes path into v. A path that does not exist is reported as
// not found rather than as an error.
func readJSON(ctx context.Context, path string, v any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, errors.Join(mlmodel.ErrInvalidArtifact, err))
	}
	return true, nil
}

func buildScaler(art domain.ScalerArtifact) (*mlmodel.StandardScaler, error) {
	if art.Kind != domain.ArtifactKindScaler {
		return nil, fmt.Errorf("%w: kind %q, want %q", mlmodel.ErrInvalidArtifact, art.Kind, domain.ArtifactKindScaler)
	}
	if err := checkSchema(art.NFeaturesIn, art.FeatureNames, domain.ScalerSchema); err != nil {
		return nil, err
	}
	if len(art.Mean) != art.NFeaturesIn {
		return nil, fmt.Errorf("%w: scaler has %d means for %d features", mlmodel.ErrInvalidArtifact, len(art.Mean), art.NFeaturesIn)
	}
	return mlmodel.NewStandardScaler(art.Mean, art.Scale)
}

func buildForest(art domain.ForestArtifact) (*mlmodel.Forest, error) {
	if art.Kind != domain.ArtifactKindForest {
		return nil, fmt.Errorf("%w: kind %q, want %q", mlmodel.ErrInvalidArtifact, art.Kind, domain.ArtifactKindForest)
	}
	if err := checkSchema(art.NFeaturesIn, art.FeatureNames, domain.FeatureSchema); err != nil {
		return nil, err
	}

	trees := make([]*mlmodel.Tree, 0, len(art.Estimators))
	for i, est := range art.Estimators {
		tree, err := mlmodel.NewTree(est.ChildrenLeft, est.ChildrenRight, est.Feature, est.Threshold, est.Value, art.NFeaturesIn)
		if err != nil {
			return nil, fmt.Errorf("estimator %d: %w", i, err)
		}
		trees = append(trees, tree)
	}

	return mlmodel.NewForest(art.NFeaturesIn, trees)
}

// checkSchema compares the exported width and column names with what the
// encoder produces. Names are optional in the export.
func checkSchema(width int, names, want []string) error {
	if width != len(want) {
		return fmt.Errorf("%w: artifact has %d features, want %d", premium.ErrSchemaMismatch, width, len(want))
	}
	if len(names) > 0 && !slices.Equal(names, want) {
		return fmt.Errorf("%w: artifact features %v, want %v", premium.ErrSchemaMismatch, names, want)
	}
	return nil
}
