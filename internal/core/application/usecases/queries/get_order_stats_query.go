package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves order counts per lifecycle status.
// Used by the periodic stats job for operational visibility.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for order statistics.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse holds order counts per status.
type GetOrderStatsQueryResponse struct {
	Processing int64
	Completed  int64
	Canceled   int64
}

// Total returns the number of orders across all statuses.
func (r GetOrderStatsQueryResponse) Total() int64 {
	return r.Processing + r.Completed + r.Canceled
}
