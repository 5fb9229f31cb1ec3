package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler counts orders per lifecycle status.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order statistics.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query and returns counts grouped by status.
// Statuses without orders report zero.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	var response GetOrderStatsQueryResponse
	for rows.Next() {
		var (
			code  string
			count int64
		)
		if err = rows.Scan(&code, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		status, statusErr := order.StatusFromCode(code)
		if statusErr != nil {
			return GetOrderStatsQueryResponse{}, statusErr
		}

		switch status {
		case order.Processing:
			response.Processing = count
		case order.Completed:
			response.Completed = count
		case order.Canceled:
			response.Canceled = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return response, nil
}
