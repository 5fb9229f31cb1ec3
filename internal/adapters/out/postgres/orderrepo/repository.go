package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Writes cascade explicitly across the three aggregate tables so no
// orphaned address or line rows remain.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order aggregate. The storage-assigned identifiers of the
// order, its address and its lines are set back on the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	return r.insertChildren(ctx, aggregate)
}

// Update saves an existing order. The address and line rows are replaced
// wholesale: old children are removed and the current ones inserted with
// fresh identifiers.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"date":       dto.Date,
		"status":     dto.Status,
		"first_name": dto.FirstName,
		"last_name":  dto.LastName,
		"email":      dto.Email,
		"phone":      dto.Phone,
		"tax":        dto.Tax,
		"shipping":   dto.Shipping,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", dto.ID)
	}

	if err := r.deleteChildren(ctx, dto.ID); err != nil {
		return err
	}

	return r.insertChildren(ctx, aggregate)
}

// Get retrieves an order aggregate by identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	var addressDTO AddressDTO
	if err := r.db.WithContext(ctx).First(&addressDTO, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	var lineDTOs []OrderLineDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&lineDTOs, "order_id = ?", id).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, addressDTO, lineDTOs)
}

// GetAll retrieves every order aggregate sorted by identifier.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := r.Get(ctx, dto.ID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// Delete removes the order together with its address and line rows.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.deleteChildren(ctx, aggregate.ID()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", aggregate.ID())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	return nil
}

// insertChildren writes the address and line rows and sets the assigned
// identifiers back on the aggregate through a same-status replace.
func (r *GormOrderRepository) insertChildren(ctx context.Context, aggregate *order.Order) error {
	addressDTO := addressFromDomain(aggregate.ID(), aggregate.Address())
	addressDTO.ID = 0
	if err := r.db.WithContext(ctx).Create(&addressDTO).Error; err != nil {
		return err
	}

	lineDTOs := linesFromDomain(aggregate.ID(), aggregate.OrderLines())
	for i := range lineDTOs {
		lineDTOs[i].ID = 0
		if err := r.db.WithContext(ctx).Create(&lineDTOs[i]).Error; err != nil {
			return err
		}
	}

	address, err := order.RestoreAddress(
		addressDTO.ID,
		addressDTO.Address1, addressDTO.Address2,
		addressDTO.City, addressDTO.State, addressDTO.Zip,
	)
	if err != nil {
		return err
	}

	lines := make([]order.OrderLine, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		line, lineErr := order.RestoreOrderLine(
			lineDTO.ID,
			lineDTO.Brand, lineDTO.Model,
			lineDTO.Cost, lineDTO.Quantity,
		)
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
	}

	return aggregate.Replace(
		aggregate.Status(),
		aggregate.FirstName(), aggregate.LastName(),
		address, lines,
	)
}

func (r *GormOrderRepository) deleteChildren(ctx context.Context, orderID int64) error {
	if err := r.db.WithContext(ctx).Delete(&OrderLineDTO{}, "order_id = ?", orderID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&AddressDTO{}, "order_id = ?", orderID).Error
}
