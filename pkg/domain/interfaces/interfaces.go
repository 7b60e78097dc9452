package interfaces

import (
	"context"

	"github.com/pfd-lab/meshirec/pkg/domain/model/restaurant"
)

// RecordSource yields the flat restaurant records the recommendation
// pipeline is built from. Implementations own transport concerns
// (pagination, timeouts, retries); callers treat a fetch as a single
// blocking call.
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]restaurant.Record, error)
}
