package restaurant_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
)

func TestSplitReferrers(t *testing.T) {
	t.Run("single referrer", func(t *testing.T) {
		users := restaurant.SplitReferrers("alice")
		gt.Array(t, users).Equal([]types.UserID{"alice"})
	})

	t.Run("multiple referrers with whitespace", func(t *testing.T) {
		users := restaurant.SplitReferrers("alice, bob ,carol")
		gt.Array(t, users).Equal([]types.UserID{"alice", "bob", "carol"})
	})

	t.Run("empty field", func(t *testing.T) {
		gt.Array(t, restaurant.SplitReferrers("")).Length(0)
	})

	t.Run("only delimiters and spaces", func(t *testing.T) {
		gt.Array(t, restaurant.SplitReferrers(" , ,")).Length(0)
	})

	t.Run("full-width names kept intact", func(t *testing.T) {
		users := restaurant.SplitReferrers("田中,佐藤")
		gt.Array(t, users).Equal([]types.UserID{"田中", "佐藤"})
	})
}
