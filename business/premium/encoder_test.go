package premium

import (
	"errors"
	"testing"

	"insureai/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityScaler returns its input unchanged.
type identityScaler struct{}

func (identityScaler) Width() int { return domain.ScalerWidth }

func (identityScaler) Transform(x []float64) ([]float64, error) {
	out := make([]float64, len(x))
	copy(out, x)
	return out, nil
}

// offsetScaler subtracts a distinct offset per column so positions are traceable.
type offsetScaler struct{}

func (offsetScaler) Width() int { return domain.ScalerWidth }

func (offsetScaler) Transform(x []float64) ([]float64, error) {
	return []float64{x[0] - 1000, x[1] - 2000, x[2] - 3000, x[3] - 4000}, nil
}

type brokenScaler struct {
	out []float64
	err error
}

func (b brokenScaler) Width() int { return domain.ScalerWidth }

func (b brokenScaler) Transform([]float64) ([]float64, error) { return b.out, b.err }

func TestEncode_Scenario1(t *testing.T) {
	in := domain.RawInput{Age: 35, BMI: 30.0, Sex: domain.SexMale, Children: 0, Smoker: false, Region: domain.RegionSoutheast}

	x, err := Encode(in, identityScaler{})
	require.NoError(t, err)

	assert.Equal(t, domain.FeatureVector{35, 0, 30, 0, 0, 0, 1, 0, 1}, x)
	assert.Len(t, x.Slice(), len(domain.FeatureSchema))
}

func TestEncode_FixedOrder(t *testing.T) {
	in := domain.RawInput{Age: 40, BMI: 22.5, Sex: domain.SexFemale, Children: 3, Smoker: true, Region: domain.RegionNorthwest}

	x, err := Encode(in, offsetScaler{})
	require.NoError(t, err)

	assert.Equal(t, domain.FeatureVector{
		40 - 1000, // age_s
		1,         // sex
		22.5 - 2000,
		3 - 3000,
		1, // smoker
		1, 0, 0,
		2 - 4000, // cluster_s
	}, x)
}

func TestEncode_ClusterFollowsSmoker(t *testing.T) {
	for _, r := range domain.Regions {
		for _, sex := range []domain.Sex{domain.SexMale, domain.SexFemale} {
			for children := 0; children <= 5; children++ {
				for _, smoker := range []bool{false, true} {
					in := domain.RawInput{Age: 60, BMI: 41.2, Sex: sex, Children: children, Smoker: smoker, Region: r}
					x, err := Encode(in, identityScaler{})
					require.NoError(t, err)

					wantCluster := 1.0
					if smoker {
						wantCluster = 2
					}
					assert.Equal(t, wantCluster, x[8])
					assert.Equal(t, smokerBit(smoker), x[4])
				}
			}
		}
	}
}

func TestEncode_RegionOneHot(t *testing.T) {
	tests := []struct {
		region     domain.Region
		nw, se, sw float64
	}{
		{domain.RegionNortheast, 0, 0, 0},
		{domain.RegionNorthwest, 1, 0, 0},
		{domain.RegionSoutheast, 0, 1, 0},
		{domain.RegionSouthwest, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.region), func(t *testing.T) {
			x, err := Encode(domain.RawInput{Age: 18, BMI: 10, Sex: domain.SexMale, Region: tt.region}, identityScaler{})
			require.NoError(t, err)
			assert.Equal(t, tt.nw, x[5])
			assert.Equal(t, tt.se, x[6])
			assert.Equal(t, tt.sw, x[7])
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	in := domain.RawInput{Age: 51, BMI: 33.3, Sex: domain.SexFemale, Children: 2, Smoker: true, Region: domain.RegionSouthwest}

	a, err := Encode(in, offsetScaler{})
	require.NoError(t, err)
	b, err := Encode(in, offsetScaler{})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEncode_ScalerFailures(t *testing.T) {
	in := domain.DefaultInput()

	_, err := Encode(in, nil)
	assert.ErrorIs(t, err, ErrScalerUnavailable)

	_, err = Encode(in, brokenScaler{out: []float64{1, 2}})
	assert.ErrorIs(t, err, ErrSchemaMismatch)

	boom := errors.New("boom")
	_, err = Encode(in, brokenScaler{err: boom})
	assert.ErrorIs(t, err, boom)
}
