package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Returns a *errs.ObjectNotFoundError when the identifier does not exist.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and rehydrates the order aggregate with its
// address and line items. Totals are recomputed from the stored data.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	header, err := h.readHeader(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	address, err := h.readAddress(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	lines, err := h.readLines(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return header.restore(address, lines)
}

func (h GetOrderQueryHandler) readHeader(ctx context.Context, orderID int64) (orderHeader, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			date,
			status,
			first_name,
			last_name,
			email,
			phone,
			tax,
			shipping
		FROM orders
		WHERE id = ?
	`, orderID).Rows()
	if err != nil {
		return orderHeader{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return orderHeader{}, err
		}
		return orderHeader{}, errs.NewObjectNotFoundError("orderId", orderID)
	}

	var header orderHeader
	err = rows.Scan(
		&header.id,
		&header.date,
		&header.status,
		&header.firstName,
		&header.lastName,
		&header.email,
		&header.phone,
		&header.tax,
		&header.shipping,
	)
	if err != nil {
		return orderHeader{}, err
	}

	return header, nil
}

func (h GetOrderQueryHandler) readAddress(ctx context.Context, orderID int64) (order.Address, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			address1,
			address2,
			city,
			state,
			zip
		FROM addresses
		WHERE order_id = ?
	`, orderID).Rows()
	if err != nil {
		return order.Address{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return order.Address{}, err
		}
		return order.Address{}, errs.NewObjectNotFoundError("orderId", orderID)
	}

	var (
		id                                   int64
		address1, address2, city, state, zip string
	)
	err = rows.Scan(&id, &address1, &address2, &city, &state, &zip)
	if err != nil {
		return order.Address{}, err
	}

	return order.RestoreAddress(id, address1, address2, city, state, zip)
}

func (h GetOrderQueryHandler) readLines(ctx context.Context, orderID int64) ([]order.OrderLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			brand,
			model,
			cost,
			quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]order.OrderLine, 0)
	for rows.Next() {
		var (
			id           int64
			brand, model string
			cost         decimal.Decimal
			quantity     int
		)
		err = rows.Scan(&id, &brand, &model, &cost, &quantity)
		if err != nil {
			return nil, err
		}

		line, restoreErr := order.RestoreOrderLine(id, brand, model, cost, quantity)
		if restoreErr != nil {
			return nil, restoreErr
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
