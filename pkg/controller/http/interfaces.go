package http

import (
	"context"
	"time"

	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
)

// UseCase is the surface the HTTP layer needs from pkg/usecase.
type UseCase interface {
	Refresh(ctx context.Context) error
	RecommendForUser(ctx context.Context, user types.UserID, n int) ([]restaurant.Record, error)
	RecommendSimilar(ctx context.Context, name types.RestaurantName, n int) ([]restaurant.Record, error)
	Records(ctx context.Context) ([]restaurant.Record, time.Time, error)
	Users(ctx context.Context) ([]types.UserID, error)
	Restaurants(ctx context.Context) ([]types.RestaurantName, error)
}
