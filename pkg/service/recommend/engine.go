package recommend

import (
	"sort"

	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
)

const (
	// NeighborWindow is how many nearest neighbors are consulted per
	// query. It caps item-based results regardless of how many the
	// caller asks for.
	NeighborWindow = 5

	// DefaultResults is the number of recommendations returned when
	// the caller does not specify a count.
	DefaultResults = 3
)

// Engine holds an immutable snapshot of the preference matrix and the
// user/restaurant similarity matrices. Build a new Engine per data
// refresh; a constructed Engine is read-only and safe for concurrent
// queries.
type Engine struct {
	matrix  *PreferenceMatrix
	userSim [][]float64
	itemSim [][]float64
}

// NewEngine builds the preference matrix from records and precomputes
// both similarity matrices.
func NewEngine(records []restaurant.Record) *Engine {
	m := BuildPreferenceMatrix(records)

	cols := make([][]float64, len(m.Restaurants))
	for j := range cols {
		cols[j] = m.Column(j)
	}

	return &Engine{
		matrix:  m,
		userSim: cosineMatrix(m.Weights),
		itemSim: cosineMatrix(cols),
	}
}

func (x *Engine) Matrix() *PreferenceMatrix { return x.matrix }

// neighbors returns up to NeighborWindow indices ranked by descending
// similarity to self. The entity itself and anything with zero (or
// negative) similarity is excluded, which also drops degenerate
// zero-norm vectors from every ranking.
func neighbors(sim [][]float64, self int) []int {
	row := sim[self]
	order := make([]int, 0, len(row))
	for i := range row {
		if i == self || row[i] <= 0 {
			continue
		}
		order = append(order, i)
	}
	sort.SliceStable(order, func(a, b int) bool { return row[order[a]] > row[order[b]] })
	if len(order) > NeighborWindow {
		order = order[:NeighborWindow]
	}
	return order
}

// ForUser recommends up to n restaurants the user has not referred,
// scored by averaging the preference rows of the user's nearest
// neighbors. An unknown user yields an empty result, not an error.
// Ties keep the matrix's column order.
func (x *Engine) ForUser(user types.UserID, n int) []types.RestaurantName {
	if n <= 0 {
		n = DefaultResults
	}

	row, ok := x.matrix.UserIndex(user)
	if !ok {
		return nil
	}

	nb := neighbors(x.userSim, row)
	if len(nb) == 0 {
		return nil
	}

	scores := make([]float64, len(x.matrix.Restaurants))
	for _, i := range nb {
		for j, w := range x.matrix.Weights[i] {
			scores[j] += w
		}
	}
	for j := range scores {
		scores[j] /= float64(len(nb))
	}

	seen := x.matrix.Weights[row]
	cands := make([]int, 0, len(scores))
	for j := range scores {
		if seen[j] > 0 || scores[j] <= 0 {
			continue
		}
		cands = append(cands, j)
	}
	sort.SliceStable(cands, func(a, b int) bool { return scores[cands[a]] > scores[cands[b]] })
	if len(cands) > n {
		cands = cands[:n]
	}

	names := make([]types.RestaurantName, len(cands))
	for i, j := range cands {
		names[i] = x.matrix.Restaurants[j]
	}
	return names
}

// SimilarTo returns up to n restaurants whose referrer overlap with
// the given restaurant is highest. Unlike ForUser there is no
// already-seen filter; the queried restaurant's own referrers are not
// excluded from the neighbor columns. An unknown restaurant yields an
// empty result.
func (x *Engine) SimilarTo(name types.RestaurantName, n int) []types.RestaurantName {
	if n <= 0 {
		n = DefaultResults
	}

	col, ok := x.matrix.RestaurantIndex(name)
	if !ok {
		return nil
	}

	nb := neighbors(x.itemSim, col)
	if len(nb) > n {
		nb = nb[:n]
	}

	names := make([]types.RestaurantName, len(nb))
	for i, j := range nb {
		names[i] = x.matrix.Restaurants[j]
	}
	return names
}
