package recommend_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
	"github.com/pfd-lab/meshirec/pkg/service/recommend"
)

func scenarioRecords() []restaurant.Record {
	return []restaurant.Record{
		{Name: "A", Referrers: []types.UserID{"alice", "bob"}},
		{Name: "B", Referrers: []types.UserID{"alice"}},
		{Name: "C", Referrers: []types.UserID{"bob", "carol"}},
	}
}

func weight(t *testing.T, m *recommend.PreferenceMatrix, user types.UserID, name types.RestaurantName) float64 {
	t.Helper()
	row, ok := m.UserIndex(user)
	gt.True(t, ok)
	col, ok := m.RestaurantIndex(name)
	gt.True(t, ok)
	return m.Weights[row][col]
}

func TestBuildPreferenceMatrix(t *testing.T) {
	t.Run("scenario weights", func(t *testing.T) {
		m := recommend.BuildPreferenceMatrix(scenarioRecords())

		gt.Array(t, m.Users).Equal([]types.UserID{"alice", "bob", "carol"})
		gt.Array(t, m.Restaurants).Equal([]types.RestaurantName{"A", "B", "C"})

		gt.Value(t, weight(t, m, "alice", "A")).Equal(0.5)
		gt.Value(t, weight(t, m, "alice", "B")).Equal(0.5)
		gt.Value(t, weight(t, m, "alice", "C")).Equal(0.0)
		gt.Value(t, weight(t, m, "bob", "A")).Equal(0.5)
		gt.Value(t, weight(t, m, "bob", "C")).Equal(0.5)
		gt.Value(t, weight(t, m, "carol", "C")).Equal(1.0)
	})

	t.Run("rows sum to one", func(t *testing.T) {
		m := recommend.BuildPreferenceMatrix(scenarioRecords())
		for i := range m.Weights {
			var sum float64
			for _, w := range m.Weights[i] {
				sum += w
			}
			gt.Number(t, math.Abs(sum-1)).Less(1e-9)
		}
	})

	t.Run("empty records produce empty matrix", func(t *testing.T) {
		m := recommend.BuildPreferenceMatrix(nil)
		gt.Array(t, m.Users).Length(0)
		gt.Array(t, m.Restaurants).Length(0)
	})

	t.Run("referrer-less record keeps its column", func(t *testing.T) {
		m := recommend.BuildPreferenceMatrix([]restaurant.Record{
			{Name: "A", Referrers: []types.UserID{"alice"}},
			{Name: "D"},
		})
		gt.Array(t, m.Restaurants).Equal([]types.RestaurantName{"A", "D"})
		gt.Array(t, m.Users).Equal([]types.UserID{"alice"})
	})

	t.Run("duplicate names collapse and counts aggregate", func(t *testing.T) {
		m := recommend.BuildPreferenceMatrix([]restaurant.Record{
			{Name: "A", Referrers: []types.UserID{"alice"}},
			{Name: "A", Referrers: []types.UserID{"alice"}},
			{Name: "B", Referrers: []types.UserID{"alice"}},
		})
		gt.Array(t, m.Restaurants).Equal([]types.RestaurantName{"A", "B"})
		// alice referred A twice and B once: 2/3 vs 1/3
		gt.Number(t, math.Abs(weight(t, m, "alice", "A")-2.0/3.0)).Less(1e-9)
		gt.Number(t, math.Abs(weight(t, m, "alice", "B")-1.0/3.0)).Less(1e-9)
	})

	t.Run("empty names and empty users are dropped", func(t *testing.T) {
		m := recommend.BuildPreferenceMatrix([]restaurant.Record{
			{Name: "", Referrers: []types.UserID{"alice"}},
			{Name: "A", Referrers: []types.UserID{""}},
		})
		gt.Array(t, m.Users).Length(0)
		gt.Array(t, m.Restaurants).Equal([]types.RestaurantName{"A"})
	})
}
