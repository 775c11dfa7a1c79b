package domain

type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

type Region string

const (
	RegionSoutheast Region = "Southeast"
	RegionNorthwest Region = "Northwest"
	RegionSouthwest Region = "Southwest"
	RegionNortheast Region = "Northeast"
)

// Regions lists the selectable regions in display order. The first entry is
// the form default.
var Regions = []Region{RegionSoutheast, RegionNorthwest, RegionSouthwest, RegionNortheast}

// RawInput is one form submission.
type RawInput struct {
	Age      int     `json:"age" form:"age" validate:"gte=18,lte=100"`
	BMI      float64 `json:"bmi" form:"bmi" validate:"gte=10,lte=60"`
	Sex      Sex     `json:"sex" form:"sex" validate:"required,oneof=Male Female"`
	Children int     `json:"children" form:"children" validate:"gte=0,lte=5"`
	Smoker   bool    `json:"smoker" form:"smoker"`
	Region   Region  `json:"region" form:"region" validate:"required,oneof=Northeast Northwest Southeast Southwest"`
}

// DefaultInput is the initial state of the form.
func DefaultInput() RawInput {
	return RawInput{
		Age:      35,
		BMI:      30.0,
		Sex:      SexMale,
		Children: 0,
		Smoker:   false,
		Region:   Regions[0],
	}
}

// ScalerSchema is the column order the scaler was fitted on.
var ScalerSchema = []string{"age", "bmi", "children", "cluster"}

// FeatureSchema is the column order the regressor was trained on.
// Reordering it corrupts every prediction.
var FeatureSchema = []string{
	"age",
	"sex",
	"bmi",
	"children",
	"smoker",
	"region_northwest",
	"region_southeast",
	"region_southwest",
	"cluster",
}

const (
	ScalerWidth  = 4
	FeatureWidth = 9
)

// ScaledQuad holds the scaler output for [age, bmi, children, cluster].
type ScaledQuad struct {
	Age      float64 `json:"age"`
	BMI      float64 `json:"bmi"`
	Children float64 `json:"children"`
	Cluster  float64 `json:"cluster"`
}

// FeatureVector is laid out in FeatureSchema order.
type FeatureVector [FeatureWidth]float64

func (v FeatureVector) Slice() []float64 {
	return v[:]
}

type PredictionStatus string

const (
	PredictionOK          PredictionStatus = "ok"
	PredictionUnavailable PredictionStatus = "unavailable"
)

// Prediction is either an estimate (Status ok) or the reason no estimate
// could be produced.
type Prediction struct {
	Status PredictionStatus `json:"status"`
	Value  float64          `json:"value"`
	Reason string           `json:"reason,omitempty"`
}

func (p Prediction) Available() bool {
	return p.Status == PredictionOK
}

// ArtifactStatus describes what the artifact loader produced.
type ArtifactStatus struct {
	Model  bool   `json:"model"`
	Scaler bool   `json:"scaler"`
	Reason string `json:"reason,omitempty"`
}
