package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository is the storage collaborator for order aggregates. The
// owned Address and OrderLines are part of the aggregate: every write
// cascades to them explicitly, and Delete removes them with the parent so
// no orphaned rows remain.
//
// The repository provides no optimistic or pessimistic concurrency control;
// concurrent writers to the same identifier race and the last write wins.
type OrderRepository interface {
	// GetAll retrieves every order with its address and lines.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Get retrieves an order by identifier. Returns a
	// *errs.ObjectNotFoundError when the identifier does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Add persists a new order aggregate and assigns its identifier
	// (and the identifiers of the owned address and lines) on the
	// aggregate itself.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The address row and
	// the line rows are replaced wholesale: old children are removed and
	// the current ones inserted with fresh identifiers.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order together with its owned address and lines.
	Delete(ctx context.Context, aggregate *order.Order) error
}
