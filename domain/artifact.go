package domain

const (
	ArtifactKindForest = "random_forest_regressor"
	ArtifactKindScaler = "standard_scaler"
)

// ScalerArtifact is the on-disk export of a fitted standard scaler.
type ScalerArtifact struct {
	Kind         string    `json:"kind"`
	NFeaturesIn  int       `json:"n_features_in"`
	FeatureNames []string  `json:"feature_names,omitempty"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// TreeArtifact is one regression tree in parallel-array form.
// A node is a leaf when ChildrenLeft is -1.
type TreeArtifact struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

// ForestArtifact is the on-disk export of a fitted random forest regressor.
type ForestArtifact struct {
	Kind         string         `json:"kind"`
	NFeaturesIn  int            `json:"n_features_in"`
	FeatureNames []string       `json:"feature_names,omitempty"`
	Estimators   []TreeArtifact `json:"estimators"`
}
