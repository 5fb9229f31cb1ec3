package http

import (
	"fmt"

	"orders/internal/core/domain/model/order"
)

// assembleOrder builds the outward representation of an order against the
// given base URL. The cancel and complete links are attached only while
// the order is PROCESSING, so clients discover the legal next actions
// from the presence of link names alone.
func assembleOrder(aggregate *order.Order, baseURL string) OrderResponse {
	links := Links{
		"self":   Link{Href: fmt.Sprintf("%s/orders/%d", baseURL, aggregate.ID())},
		"orders": Link{Href: fmt.Sprintf("%s/orders", baseURL)},
	}

	if aggregate.Status() == order.Processing {
		links["cancel"] = Link{Href: fmt.Sprintf("%s/orders/%d/cancel", baseURL, aggregate.ID())}
		links["complete"] = Link{Href: fmt.Sprintf("%s/orders/%d/complete", baseURL, aggregate.ID())}
	}

	address := aggregate.Address()
	lines := make([]OrderLineResponse, 0, len(aggregate.OrderLines()))
	for _, line := range aggregate.OrderLines() {
		lines = append(lines, OrderLineResponse{
			ID:       line.ID(),
			Brand:    line.Brand(),
			Model:    line.Model(),
			Cost:     NewAmount(line.Cost()),
			Quantity: line.Quantity(),
		})
	}

	return OrderResponse{
		ID:        aggregate.ID(),
		Date:      aggregate.Date().Format("2006-01-02"),
		Status:    aggregate.Status().String(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		Address: AddressResponse{
			ID:       address.ID(),
			Address1: address.Address1(),
			Address2: address.Address2(),
			City:     address.City(),
			State:    address.State(),
			Zip:      address.Zip(),
		},
		OrderLines: lines,
		Tax:        NewAmount(aggregate.Tax()),
		Shipping:   NewAmount(aggregate.Shipping()),
		Subtotal:   NewAmount(aggregate.Subtotal()),
		Total:      NewAmount(aggregate.Total()),
		Links:      links,
	}
}

// assembleOrders builds the collection representation with its self link.
func assembleOrders(aggregates []*order.Order, baseURL string) OrdersResponse {
	orders := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		orders = append(orders, assembleOrder(aggregate, baseURL))
	}

	return OrdersResponse{
		Orders: orders,
		Links: Links{
			"self": Link{Href: fmt.Sprintf("%s/orders", baseURL)},
		},
	}
}

// selfLink returns the canonical URL of a single order, used for the
// Location header on create and update.
func selfLink(baseURL string, orderID int64) string {
	return fmt.Sprintf("%s/orders/%d", baseURL, orderID)
}
