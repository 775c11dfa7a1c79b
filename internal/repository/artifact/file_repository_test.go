package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"insureai/business/premium"
	"insureai/domain"
	"insureai/pkg/mlmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scalerJSON = `{
  "kind": "standard_scaler",
  "n_features_in": 4,
  "feature_names": ["age", "bmi", "children", "cluster"],
  "mean": [39.2, 30.66, 1.09, 1.2],
  "scale": [14.04, 6.09, 1.2, 0.4]
}`

// one stump on smoker (index 4), one constant tree
const forestJSON = `{
  "kind": "random_forest_regressor",
  "n_features_in": 9,
  "feature_names": ["age", "sex", "bmi", "children", "smoker", "region_northwest", "region_southeast", "region_southwest", "cluster"],
  "estimators": [
    {
      "children_left":  [1, -1, -1],
      "children_right": [2, -1, -1],
      "feature":        [4, -2, -2],
      "threshold":      [0.5, -2, -2],
      "value":          [13270.0, 8434.0, 32050.0]
    },
    {
      "children_left":  [-1],
      "children_right": [-1],
      "feature":        [-2],
      "threshold":      [-2],
      "value":          [10000.0]
    }
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileRepository_Load(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(
		writeFile(t, dir, "model.json", forestJSON),
		writeFile(t, dir, "scaler.json", scalerJSON),
	)

	model, found, err := repo.LoadModel(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.FeatureWidth, model.Width())

	got, err := model.Predict([]float64{0, 0, 0, 0, 1, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, (32050.0+10000.0)/2, got, 1e-9)

	scaler, found, err := repo.LoadScaler(context.Background())
	require.NoError(t, err)
	require.True(t, found)

	out, err := scaler.Transform([]float64{39.2, 30.66, 1.09, 1.2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0}, out, 1e-12)
}

func TestFileRepository_Missing(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(filepath.Join(dir, "nope.json"), filepath.Join(dir, "nope2.json"))

	model, found, err := repo.LoadModel(context.Background())
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, model)

	scaler, found, err := repo.LoadScaler(context.Background())
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, scaler)
}

func TestFileRepository_Corrupt(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(
		writeFile(t, dir, "model.json", "\x80\x04\x95not json"),
		writeFile(t, dir, "scaler.json", `{"kind": "standard_scaler", "n_features_in": 4, "mean": [1, 2, 3, 4], "scale": [1]}`),
	)

	_, _, err := repo.LoadModel(context.Background())
	assert.ErrorIs(t, err, mlmodel.ErrInvalidArtifact)

	_, _, err = repo.LoadScaler(context.Background())
	assert.ErrorIs(t, err, mlmodel.ErrInvalidArtifact)
}

func TestFileRepository_SchemaMismatch(t *testing.T) {
	dir := t.TempDir()

	reordered := `{
  "kind": "random_forest_regressor",
  "n_features_in": 9,
  "feature_names": ["sex", "age", "bmi", "children", "smoker", "region_northwest", "region_southeast", "region_southwest", "cluster"],
  "estimators": [{"children_left": [-1], "children_right": [-1], "feature": [-2], "threshold": [-2], "value": [1]}]
}`
	narrow := `{"kind": "standard_scaler", "n_features_in": 3, "mean": [1, 2, 3], "scale": [1, 1, 1]}`

	repo := NewFileRepository(
		writeFile(t, dir, "model.json", reordered),
		writeFile(t, dir, "scaler.json", narrow),
	)

	_, _, err := repo.LoadModel(context.Background())
	assert.ErrorIs(t, err, premium.ErrSchemaMismatch)

	_, _, err = repo.LoadScaler(context.Background())
	assert.ErrorIs(t, err, premium.ErrSchemaMismatch)
}

func TestFileRepository_WrongKind(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(
		writeFile(t, dir, "model.json", scalerJSON),
		writeFile(t, dir, "scaler.json", forestJSON),
	)

	_, _, err := repo.LoadModel(context.Background())
	assert.ErrorIs(t, err, mlmodel.ErrInvalidArtifact)

	_, _, err = repo.LoadScaler(context.Background())
	assert.ErrorIs(t, err, mlmodel.ErrInvalidArtifact)
}

func TestFileRepository_ThroughCache(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(
		writeFile(t, dir, "model.json", forestJSON),
		writeFile(t, dir, "scaler.json", scalerJSON),
	)
	svc := premium.NewService(premium.NewArtifactCache(repo))

	smoker := domain.RawInput{Age: 35, BMI: 30, Sex: domain.SexMale, Smoker: true, Region: domain.RegionSoutheast}
	p := svc.Predict(context.Background(), smoker)
	require.True(t, p.Available())
	assert.InDelta(t, 21025.0, p.Value, 1e-9)

	nonSmoker := smoker
	nonSmoker.Smoker = false
	p = svc.Predict(context.Background(), nonSmoker)
	require.True(t, p.Available())
	assert.InDelta(t, 9217.0, p.Value, 1e-9)
}

func TestFileRepository_CorruptDiscardsBoth(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(
		writeFile(t, dir, "model.json", forestJSON),
		writeFile(t, dir, "scaler.json", "garbage"),
	)
	svc := premium.NewService(premium.NewArtifactCache(repo))

	status := svc.Status(context.Background())
	assert.False(t, status.Model)
	assert.False(t, status.Scaler)
	assert.NotEmpty(t, status.Reason)
}
