package mlmodel

import (
	"fmt"
)

const leaf = -1

// Tree is a binary regression tree stored as parallel arrays, node 0 is the root.
type Tree struct {
	left      []int
	right     []int
	feature   []int
	threshold []float64
	value     []float64
}

// NewTree checks the arrays describe a well formed tree over width features.
func NewTree(left, right, feature []int, threshold, value []float64, width int) (*Tree, error) {
	n := len(left)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty tree", ErrInvalidArtifact)
	}
	if len(right) != n || len(feature) != n || len(threshold) != n || len(value) != n {
		return nil, fmt.Errorf("%w: tree arrays have different lengths", ErrInvalidArtifact)
	}

	for i := 0; i < n; i++ {
		if left[i] == leaf {
			if right[i] != leaf {
				return nil, fmt.Errorf("%w: node %d has only one child", ErrInvalidArtifact, i)
			}
			continue
		}
		// children always come after their parent in an exported tree,
		// which also rules out cycles
		if left[i] <= i || left[i] >= n || right[i] <= i || right[i] >= n {
			return nil, fmt.Errorf("%w: node %d has child out of range", ErrInvalidArtifact, i)
		}
		if feature[i] < 0 || feature[i] >= width {
			return nil, fmt.Errorf("%w: node %d splits on feature %d of %d", ErrInvalidArtifact, i, feature[i], width)
		}
	}

	return &Tree{
		left:      left,
		right:     right,
		feature:   feature,
		threshold: threshold,
		value:     value,
	}, nil
}

// Predict walks from the root, going left when x[feature] <= threshold.
// Inputs are narrowed to float32 first, as they were when the tree was fitted.
func (t *Tree) Predict(x []float64) float64 {
	node := 0
	for t.left[node] != leaf {
		if float64(float32(x[t.feature[node]])) <= t.threshold[node] {
			node = t.left[node]
		} else {
			node = t.right[node]
		}
	}
	return t.value[node]
}

// Forest averages the output of its trees.
type Forest struct {
	width int
	trees []*Tree
}

func NewForest(width int, trees []*Tree) (*Forest, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: forest width %d", ErrInvalidArtifact, width)
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w: forest has no estimators", ErrInvalidArtifact)
	}
	return &Forest{width: width, trees: trees}, nil
}

func (f *Forest) Width() int {
	return f.width
}

func (f *Forest) Predict(x []float64) (float64, error) {
	if len(x) != f.width {
		return 0, fmt.Errorf("%w: forest expects %d values, got %d", ErrWidthMismatch, f.width, len(x))
	}
	sum := 0.0
	for _, t := range f.trees {
		sum += t.Predict(x)
	}
	return sum / float64(len(f.trees)), nil
}
