package recommend

import (
	"sort"

	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
)

// PreferenceMatrix is a row-normalized user×restaurant weight table.
// Each cell holds the share of a user's referrals that went to a
// restaurant, so every row with at least one referral sums to 1.
// Rows and columns are sorted by name to keep the layout stable
// across rebuilds.
type PreferenceMatrix struct {
	Users       []types.UserID
	Restaurants []types.RestaurantName

	// Weights[i][j] is the normalized weight of Users[i] for
	// Restaurants[j]. Pairs without a referral are 0.
	Weights [][]float64

	userIndex map[types.UserID]int
	restIndex map[types.RestaurantName]int
}

// BuildPreferenceMatrix explodes each record's referrers into
// (user, restaurant) pairs, aggregates raw counts per pair, and
// normalizes each user row by its total. Records with empty names are
// skipped, duplicate names collapse into one column, and referrer-less
// records still contribute a column so item queries can resolve them.
func BuildPreferenceMatrix(records []restaurant.Record) *PreferenceMatrix {
	counts := make(map[types.UserID]map[types.RestaurantName]float64)
	names := make(map[types.RestaurantName]struct{})

	for _, rec := range records {
		if rec.Name == types.EmptyRestaurantName {
			continue
		}
		names[rec.Name] = struct{}{}

		for _, user := range rec.Referrers {
			if user == types.EmptyUserID {
				continue
			}
			row, ok := counts[user]
			if !ok {
				row = make(map[types.RestaurantName]float64)
				counts[user] = row
			}
			row[rec.Name]++
		}
	}

	m := &PreferenceMatrix{
		Users:       make([]types.UserID, 0, len(counts)),
		Restaurants: make([]types.RestaurantName, 0, len(names)),
		userIndex:   make(map[types.UserID]int, len(counts)),
		restIndex:   make(map[types.RestaurantName]int, len(names)),
	}
	for user := range counts {
		m.Users = append(m.Users, user)
	}
	sort.Slice(m.Users, func(i, j int) bool { return m.Users[i] < m.Users[j] })
	for name := range names {
		m.Restaurants = append(m.Restaurants, name)
	}
	sort.Slice(m.Restaurants, func(i, j int) bool { return m.Restaurants[i] < m.Restaurants[j] })

	for i, user := range m.Users {
		m.userIndex[user] = i
	}
	for j, name := range m.Restaurants {
		m.restIndex[name] = j
	}

	m.Weights = make([][]float64, len(m.Users))
	for i, user := range m.Users {
		row := make([]float64, len(m.Restaurants))
		var total float64
		for name, c := range counts[user] {
			row[m.restIndex[name]] = c
			total += c
		}
		// total is always positive here because empty referrers never
		// enter counts, but guard against dividing a zero row anyway.
		if total > 0 {
			for j := range row {
				row[j] /= total
			}
		}
		m.Weights[i] = row
	}

	return m
}

// UserIndex returns the row index of a user, if present.
func (x *PreferenceMatrix) UserIndex(user types.UserID) (int, bool) {
	i, ok := x.userIndex[user]
	return i, ok
}

// RestaurantIndex returns the column index of a restaurant, if present.
func (x *PreferenceMatrix) RestaurantIndex(name types.RestaurantName) (int, bool) {
	j, ok := x.restIndex[name]
	return j, ok
}

// Column copies out the j-th column vector (one weight per user).
func (x *PreferenceMatrix) Column(j int) []float64 {
	col := make([]float64, len(x.Weights))
	for i := range x.Weights {
		col[i] = x.Weights[i][j]
	}
	return col
}
