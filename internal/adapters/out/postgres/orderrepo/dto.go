// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate spans three tables: the parent order
// row, the shipping address row and the order line rows. Subtotal and total
// are never stored; they are recomputed by the domain model on rehydration.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for the order parent row.
// The status is stored as its short persistence code ("PROC", "COMP", "CAN").
type OrderDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Date      time.Time `gorm:"type:date"`
	Status    string    `gorm:"type:varchar(4);index"`
	FirstName string    `gorm:"type:varchar(50)"`
	LastName  string    `gorm:"type:varchar(50)"`
	Email     string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(25)"`
	Tax       decimal.Decimal
	Shipping  decimal.Decimal
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the database structure for the shipping address row.
// Each order owns exactly one address.
type AddressDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	OrderID  int64  `gorm:"index"`
	Address1 string `gorm:"type:varchar(50)"`
	Address2 string `gorm:"type:varchar(25)"`
	City     string `gorm:"type:varchar(25)"`
	State    string `gorm:"type:varchar(2)"`
	Zip      string `gorm:"type:varchar(10)"`
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "addresses"
}

// OrderLineDTO represents the database structure for a single line item.
type OrderLineDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	OrderID  int64  `gorm:"index"`
	Brand    string `gorm:"type:varchar(25)"`
	Model    string `gorm:"type:varchar(25)"`
	Cost     decimal.Decimal
	Quantity int
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its parent row representation.
// The derived subtotal and total are intentionally left out.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID(),
		Date:      aggregate.Date(),
		Status:    aggregate.Status().Code(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		Tax:       aggregate.Tax(),
		Shipping:  aggregate.Shipping(),
	}
}

// addressFromDomain converts the shipping address to its row representation.
func addressFromDomain(orderID int64, address order.Address) AddressDTO {
	return AddressDTO{
		ID:       address.ID(),
		OrderID:  orderID,
		Address1: address.Address1(),
		Address2: address.Address2(),
		City:     address.City(),
		State:    address.State(),
		Zip:      address.Zip(),
	}
}

// linesFromDomain converts the line items to their row representations.
func linesFromDomain(orderID int64, lines []order.OrderLine) []OrderLineDTO {
	dtos := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, OrderLineDTO{
			ID:       line.ID(),
			OrderID:  orderID,
			Brand:    line.Brand(),
			Model:    line.Model(),
			Cost:     line.Cost(),
			Quantity: line.Quantity(),
		})
	}
	return dtos
}

// toDomain converts database rows back to an order aggregate.
// RestoreOrder recomputes the subtotal and total from the restored lines.
func toDomain(dto OrderDTO, addressDTO AddressDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
	status, err := order.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	address, err := order.RestoreAddress(
		addressDTO.ID,
		addressDTO.Address1, addressDTO.Address2,
		addressDTO.City, addressDTO.State, addressDTO.Zip,
	)
	if err != nil {
		return nil, err
	}

	lines := make([]order.OrderLine, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		line, lineErr := order.RestoreOrderLine(
			lineDTO.ID,
			lineDTO.Brand, lineDTO.Model,
			lineDTO.Cost, lineDTO.Quantity,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.ID, dto.Date, status,
		dto.FirstName, dto.LastName, dto.Email, dto.Phone,
		address, lines, dto.Tax, dto.Shipping,
	)
}
