package ml

import (
	"errors"
	"math"
	"sort"
)

// TreeNode is one node of a flattened decision tree. Children are indices
// into the owning tree's node slice; leaves carry the class counts of the
// training samples that reached them.
type TreeNode struct {
	FeatureIdx  int     `json:"feature_idx"`
	Threshold   float64 `json:"threshold"`
	LeftChild   int     `json:"left_child"`
	RightChild  int     `json:"right_child"`
	ClassCounts []int   `json:"class_counts,omitempty"`
	IsLeaf      bool    `json:"is_leaf"`
}

// DecisionTree is a single CART-style tree over dense float vectors.
type DecisionTree struct {
	Nodes   []TreeNode `json:"nodes"`
	Classes int        `json:"classes"`
}

func (dt *DecisionTree) Train(features [][]float64, labels []int, classes, maxDepth int) error {
	if len(features) == 0 || len(labels) == 0 {
		return errors.New("features or labels empty")
	}
	if len(features) != len(labels) {
		return errors.New("features and labels size mismatch")
	}
	if classes <= 0 {
		return errors.New("classes must be positive")
	}
	if maxDepth <= 0 {
		maxDepth = 3
	}

	dt.Classes = classes
	dt.Nodes = buildNode(features, labels, classes, 0, maxDepth)
	return nil
}

// ClassDistribution walks the tree and returns the normalized class
// distribution of the leaf the vector lands in.
func (dt *DecisionTree) ClassDistribution(features []float64) ([]float64, error) {
	if len(dt.Nodes) == 0 {
		return nil, errors.New("model not trained")
	}
	idx := 0
	for {
		node := dt.Nodes[idx]
		if node.IsLeaf {
			return normalizeCounts(node.ClassCounts, dt.Classes), nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(features) {
			return nil, errors.New("feature index out of range")
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(dt.Nodes) {
			return nil, errors.New("invalid tree state")
		}
	}
}

func buildNode(features [][]float64, labels []int, classes, depth, maxDepth int) []TreeNode {
	leaf := func() []TreeNode {
		return []TreeNode{{
			FeatureIdx:  -1,
			LeftChild:   -1,
			RightChild:  -1,
			ClassCounts: countClasses(labels, classes),
			IsLeaf:      true,
		}}
	}

	if depth >= maxDepth || isPure(labels) {
		return leaf()
	}

	bestFeature, threshold, ok := findBestSplit(features, labels)
	if !ok {
		return leaf()
	}

	leftFeatures, leftLabels, rightFeatures, rightLabels := splitData(features, labels, bestFeature, threshold)
	if len(leftLabels) == 0 || len(rightLabels) == 0 {
		return leaf()
	}

	leftNodes := buildNode(leftFeatures, leftLabels, classes, depth+1, maxDepth)
	rightNodes := buildNode(rightFeatures, rightLabels, classes, depth+1, maxDepth)

	root := TreeNode{
		FeatureIdx: bestFeature,
		Threshold:  threshold,
		LeftChild:  1,
		RightChild: 1 + len(leftNodes),
	}

	nodes := make([]TreeNode, 0, 1+len(leftNodes)+len(rightNodes))
	nodes = append(nodes, root)
	nodes = append(nodes, leftNodes...)
	nodes = append(nodes, rightNodes...)
	return nodes
}

func findBestSplit(features [][]float64, labels []int) (int, float64, bool) {
	featureCount := len(features[0])
	bestFeature := -1
	bestThreshold := 0.0
	bestImpurity := math.MaxFloat64

	for featureIdx := 0; featureIdx < featureCount; featureIdx++ {
		values := make([]float64, len(features))
		for i := range features {
			values[i] = features[i][featureIdx]
		}
		threshold := median(values)
		leftLabels, rightLabels := splitLabels(features, labels, featureIdx, threshold)
		if len(leftLabels) == 0 || len(rightLabels) == 0 {
			continue
		}
		impurity := weightedGini(leftLabels, rightLabels)
		if impurity < bestImpurity {
			bestImpurity = impurity
			bestFeature = featureIdx
			bestThreshold = threshold
		}
	}
	if bestFeature == -1 {
		return -1, 0, false
	}
	return bestFeature, bestThreshold, true
}

func splitData(features [][]float64, labels []int, featureIdx int, threshold float64) ([][]float64, []int, [][]float64, []int) {
	leftFeatures := make([][]float64, 0)
	leftLabels := make([]int, 0)
	rightFeatures := make([][]float64, 0)
	rightLabels := make([]int, 0)
	for i, feature := range features {
		if feature[featureIdx] <= threshold {
			leftFeatures = append(leftFeatures, feature)
			leftLabels = append(leftLabels, labels[i])
		} else {
			rightFeatures = append(rightFeatures, feature)
			rightLabels = append(rightLabels, labels[i])
		}
	}
	return leftFeatures, leftLabels, rightFeatures, rightLabels
}

func splitLabels(features [][]float64, labels []int, featureIdx int, threshold float64) ([]int, []int) {
	leftLabels := make([]int, 0)
	rightLabels := make([]int, 0)
	for i, feature := range features {
		if feature[featureIdx] <= threshold {
			leftLabels = append(leftLabels, labels[i])
		} else {
			rightLabels = append(rightLabels, labels[i])
		}
	}
	return leftLabels, rightLabels
}

func weightedGini(leftLabels, rightLabels []int) float64 {
	leftWeight := float64(len(leftLabels))
	rightWeight := float64(len(rightLabels))
	total := leftWeight + rightWeight
	return (leftWeight/total)*gini(leftLabels) + (rightWeight/total)*gini(rightLabels)
}

func gini(labels []int) float64 {
	if len(labels) == 0 {
		return 0
	}
	counts := make(map[int]int)
	for _, label := range labels {
		counts[label]++
	}
	impurity := 1.0
	for _, count := range counts {
		prob := float64(count) / float64(len(labels))
		impurity -= prob * prob
	}
	return impurity
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func countClasses(labels []int, classes int) []int {
	counts := make([]int, classes)
	for _, label := range labels {
		if label >= 0 && label < classes {
			counts[label]++
		}
	}
	return counts
}

func normalizeCounts(counts []int, classes int) []float64 {
	dist := make([]float64, classes)
	total := 0
	for i, c := range counts {
		if i < classes {
			total += c
		}
	}
	if total == 0 {
		return dist
	}
	for i, c := range counts {
		if i < classes {
			dist[i] = float64(c) / float64(total)
		}
	}
	return dist
}

func isPure(labels []int) bool {
	if len(labels) == 0 {
		return true
	}
	first := labels[0]
	for _, label := range labels[1:] {
		if label != first {
			return false
		}
	}
	return true
}
