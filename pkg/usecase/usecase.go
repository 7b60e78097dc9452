package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pfd-lab/meshirec/pkg/domain/interfaces"
	"github.com/pfd-lab/meshirec/pkg/domain/model/errs"
	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
	"github.com/pfd-lab/meshirec/pkg/domain/types"
	"github.com/pfd-lab/meshirec/pkg/service/recommend"
	"github.com/pfd-lab/meshirec/pkg/utils/logging"
)

// UseCase owns the record source and the current recommendation
// snapshot. Snapshots are immutable; Refresh builds a complete new one
// and swaps it atomically, so queries never see a half-built matrix
// and need no locking.
type UseCase struct {
	source   interfaces.RecordSource
	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	records   []restaurant.Record
	byName    map[types.RestaurantName]restaurant.Record
	engine    *recommend.Engine
	fetchedAt time.Time
}

func New(source interfaces.RecordSource) *UseCase {
	return &UseCase{source: source}
}

// Refresh fetches the records and rebuilds the whole pipeline. On
// fetch failure the previous snapshot stays in place.
func (uc *UseCase) Refresh(ctx context.Context) error {
	records, err := uc.source.FetchRecords(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch records")
	}

	byName := make(map[types.RestaurantName]restaurant.Record, len(records))
	for _, rec := range records {
		if rec.Name == types.EmptyRestaurantName {
			continue
		}
		if _, ok := byName[rec.Name]; !ok {
			byName[rec.Name] = rec
		}
	}

	engine := recommend.NewEngine(records)
	uc.snapshot.Store(&snapshot{
		records:   records,
		byName:    byName,
		engine:    engine,
		fetchedAt: time.Now(),
	})

	logging.From(ctx).Info("rebuilt recommendation engine",
		"records", len(records),
		"users", len(engine.Matrix().Users),
		"restaurants", len(engine.Matrix().Restaurants),
	)
	return nil
}

func (uc *UseCase) current() (*snapshot, error) {
	s := uc.snapshot.Load()
	if s == nil {
		return nil, goerr.New("records are not loaded yet", goerr.T(errs.TagInvalidState))
	}
	return s, nil
}

// RecommendForUser returns denormalized records for the user-based
// recommendation. An unknown user yields an empty list.
func (uc *UseCase) RecommendForUser(ctx context.Context, user types.UserID, n int) ([]restaurant.Record, error) {
	s, err := uc.current()
	if err != nil {
		return nil, err
	}
	return s.denormalize(s.engine.ForUser(user, n)), nil
}

// RecommendSimilar returns denormalized records for the item-based
// recommendation. An unknown restaurant yields an empty list.
func (uc *UseCase) RecommendSimilar(ctx context.Context, name types.RestaurantName, n int) ([]restaurant.Record, error) {
	s, err := uc.current()
	if err != nil {
		return nil, err
	}
	return s.denormalize(s.engine.SimilarTo(name, n)), nil
}

// Records returns the raw record table and when it was fetched.
func (uc *UseCase) Records(ctx context.Context) ([]restaurant.Record, time.Time, error) {
	s, err := uc.current()
	if err != nil {
		return nil, time.Time{}, err
	}
	return s.records, s.fetchedAt, nil
}

// Users lists the known referrers in matrix row order.
func (uc *UseCase) Users(ctx context.Context) ([]types.UserID, error) {
	s, err := uc.current()
	if err != nil {
		return nil, err
	}
	return s.engine.Matrix().Users, nil
}

// Restaurants lists the known restaurants in matrix column order.
func (uc *UseCase) Restaurants(ctx context.Context) ([]types.RestaurantName, error) {
	s, err := uc.current()
	if err != nil {
		return nil, err
	}
	return s.engine.Matrix().Restaurants, nil
}

func (s *snapshot) denormalize(names []types.RestaurantName) []restaurant.Record {
	records := make([]restaurant.Record, 0, len(names))
	for _, name := range names {
		if rec, ok := s.byName[name]; ok {
			records = append(records, rec)
		}
	}
	return records
}
