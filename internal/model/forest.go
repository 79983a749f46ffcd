package model

import (
	"fmt"
	"math"
)

// Tree is a fitted regression tree in the flat array layout scikit-learn uses
// for tree_: node i is a leaf when ChildrenLeft[i] == -1. Features are compared
// as float32, the dtype the tree was fit and split on.
type Tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

const leaf = -1

// validate checks array shapes and that every child index is greater than its
// parent, so evaluation always terminates.
func (t *Tree) validate(nFeatures int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("tree arrays have different lengths")
	}
	for i := 0; i < n; i++ {
		l, r := t.ChildrenLeft[i], t.ChildrenRight[i]
		if l == leaf {
			if r != leaf {
				return fmt.Errorf("node %d: left is a leaf marker but right is %d", i, r)
			}
			if math.IsNaN(t.Value[i]) || math.IsInf(t.Value[i], 0) {
				return fmt.Errorf("node %d: leaf value is not finite", i)
			}
			continue
		}
		if l <= i || l >= n || r <= i || r >= n {
			return fmt.Errorf("node %d: child index out of range (left=%d right=%d)", i, l, r)
		}
		if f := t.Feature[i]; f < 0 || f >= nFeatures {
			return fmt.Errorf("node %d: feature index %d out of range [0,%d)", i, f, nFeatures)
		}
	}
	return nil
}

func (t *Tree) predict(x []float64) float64 {
	i := 0
	for t.ChildrenLeft[i] != leaf {
		if float64(float32(x[t.Feature[i]])) <= t.Threshold[i] {
			i = t.ChildrenLeft[i]
		} else {
			i = t.ChildrenRight[i]
		}
	}
	return t.Value[i]
}

// Forest averages the predictions of its trees.
type Forest struct {
	trees     []Tree
	nFeatures int
}

// NewForest validates trees against nFeatures.
func NewForest(trees []Tree, nFeatures int) (*Forest, error) {
	if nFeatures <= 0 {
		return nil, fmt.Errorf("forest: n_features must be positive")
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("forest: no trees")
	}
	for i := range trees {
		if err := trees[i].validate(nFeatures); err != nil {
			return nil, fmt.Errorf("forest: tree %d: %w", i, err)
		}
	}
	return &Forest{trees: trees, nFeatures: nFeatures}, nil
}

func (f *Forest) Predict(x []float64) (float64, error) {
	if err := checkWidth(x, f.nFeatures); err != nil {
		return 0, err
	}
	var sum float64
	for i := range f.trees {
		sum += f.trees[i].predict(x)
	}
	return sum / float64(len(f.trees)), nil
}

func (f *Forest) NumFeatures() int { return f.nFeatures }
func (f *Forest) Kind() string     { return KindRandomForest }

// NumTrees is the ensemble size.
func (f *Forest) NumTrees() int { return len(f.trees) }
