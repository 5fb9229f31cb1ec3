package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders from the database.
// Aggregates are rehydrated through the domain constructors so the
// subtotal and total are recomputed from the stored lines and charges.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query := NewGetAllOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their addresses
// and line items. Results are sorted by order ID for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	headers, err := readOrderHeaders(ctx, h.db)
	if err != nil {
		return nil, err
	}

	addresses, err := readAddressesByOrder(ctx, h.db)
	if err != nil {
		return nil, err
	}

	lines, err := readLinesByOrder(ctx, h.db)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(headers))
	for _, header := range headers {
		aggregate, restoreErr := header.restore(addresses[header.id], lines[header.id])
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// orderHeader holds the scanned parent row of an order aggregate.
type orderHeader struct {
	id        int64
	date      time.Time
	status    string
	firstName string
	lastName  string
	email     string
	phone     string
	tax       decimal.Decimal
	shipping  decimal.Decimal
}

func (r orderHeader) restore(address order.Address, lines []order.OrderLine) (*order.Order, error) {
	status, err := order.StatusFromCode(r.status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		r.id, r.date, status,
		r.firstName, r.lastName, r.email, r.phone,
		address, lines, r.tax, r.shipping,
	)
}

func readOrderHeaders(ctx context.Context, db *gorm.DB) ([]orderHeader, error) {
	rows, err := db.WithContext(ctx).Raw(`
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
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	headers := make([]orderHeader, 0)
	for rows.Next() {
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
			return nil, err
		}
		headers = append(headers, header)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return headers, nil
}

func readAddressesByOrder(ctx context.Context, db *gorm.DB) (map[int64]order.Address, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			address1,
			address2,
			city,
			state,
			zip
		FROM addresses
		ORDER BY order_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make(map[int64]order.Address)
	for rows.Next() {
		var (
			id, orderID                          int64
			address1, address2, city, state, zip string
		)
		err = rows.Scan(&id, &orderID, &address1, &address2, &city, &state, &zip)
		if err != nil {
			return nil, err
		}

		address, restoreErr := order.RestoreAddress(id, address1, address2, city, state, zip)
		if restoreErr != nil {
			return nil, restoreErr
		}
		addresses[orderID] = address
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}

func readLinesByOrder(ctx context.Context, db *gorm.DB) (map[int64][]order.OrderLine, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			brand,
			model,
			cost,
			quantity
		FROM order_lines
		ORDER BY order_id, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[int64][]order.OrderLine)
	for rows.Next() {
		var (
			id, orderID  int64
			brand, model string
			cost         decimal.Decimal
			quantity     int
		)
		err = rows.Scan(&id, &orderID, &brand, &model, &cost, &quantity)
		if err != nil {
			return nil, err
		}

		line, restoreErr := order.RestoreOrderLine(id, brand, model, cost, quantity)
		if restoreErr != nil {
			return nil, restoreErr
		}
		lines[orderID] = append(lines[orderID], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
