// Package bootstrap seeds demonstration data on first start. Seeding goes
// through the regular command handlers so the seeded orders took the same
// path as client-created ones: created PROCESSING, then transitioned.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Seeder creates the demo orders when the database is empty.
type Seeder struct {
	create   commands.CreateOrderCommandHandler
	complete commands.CompleteOrderCommandHandler
	cancel   commands.CancelOrderCommandHandler
	stats    queries.GetOrderStatsQueryHandler
	logger   *slog.Logger
}

// NewSeeder creates a demo data seeder.
func NewSeeder(
	create commands.CreateOrderCommandHandler,
	complete commands.CompleteOrderCommandHandler,
	cancel commands.CancelOrderCommandHandler,
	stats queries.GetOrderStatsQueryHandler,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		create:   create,
		complete: complete,
		cancel:   cancel,
		stats:    stats,
		logger:   logger.With("component", "seeder"),
	}
}

type seedLine struct {
	brand    string
	model    string
	cost     string
	quantity int
}

type seedOrder struct {
	firstName string
	lastName  string
	email     string
	phone     string
	address   [5]string // address1, address2, city, state, zip
	lines     []seedLine
	tax       string
	shipping  string
	status    order.Status
}

func demoOrders() []seedOrder {
	return []seedOrder{
		{
			firstName: "Albert", lastName: "Einsten",
			email: "albert.einsten@gmail.com", phone: "(602) 555-0134",
			address: [5]string{"2213 Camelback Rd", "Apt 2", "Phoenix", "AZ", "85017"},
			lines: []seedLine{
				{"Apple", "Phone", "1000", 1},
				{"Apple", "Tablet", "5000", 2},
			},
			tax: "200", shipping: "300",
			status: order.Processing,
		},
		{
			firstName: "Stephen", lastName: "Hawking",
			email: "stephen.hawking@gmail.com", phone: "(310) 555-0167",
			address: [5]string{"4200 Wilshire Blvd", "", "Los Angeles", "CA", "90025"},
			lines: []seedLine{
				{"Samsung", "Watch", "3500", 1},
				{"Emerson", "TV", "8000", 1},
				{"Apple", "Laptop", "2000", 1},
			},
			tax: "300", shipping: "500",
			status: order.Completed,
		},
		{
			firstName: "Nikola", lastName: "Tesla",
			email: "nikola.tesla@gmail.com", phone: "(310) 555-0189",
			address: [5]string{"4545 Wilshire Blvd", "Apt 3", "Los Angeles", "CA", "90025"},
			lines: []seedLine{
				{"LG", "Phone", "1200", 1},
			},
			tax: "100", shipping: "200",
			status: order.Canceled,
		},
	}
}

// Seed creates the demo orders unless orders already exist, so restarting
// the service never duplicates them.
func (s *Seeder) Seed(ctx context.Context) error {
	stats, err := s.stats.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		return fmt.Errorf("seeding precheck failed: %w", err)
	}
	if stats.Total() > 0 {
		s.logger.InfoContext(ctx, "Skipping demo data, orders already present", "count", stats.Total())
		return nil
	}

	for _, seed := range demoOrders() {
		if err = s.seedOne(ctx, seed); err != nil {
			return fmt.Errorf("seeding order for %s %s failed: %w", seed.firstName, seed.lastName, err)
		}
	}

	s.logger.InfoContext(ctx, "Demo data seeded", "count", len(demoOrders()))
	return nil
}

func (s *Seeder) seedOne(ctx context.Context, seed seedOrder) error {
	address, err := order.NewAddress(seed.address[0], seed.address[1], seed.address[2], seed.address[3], seed.address[4])
	if err != nil {
		return err
	}

	lines := make([]order.OrderLine, 0, len(seed.lines))
	for _, raw := range seed.lines {
		cost, costErr := decimal.NewFromString(raw.cost)
		if costErr != nil {
			return costErr
		}

		line, lineErr := order.NewOrderLine(raw.brand, raw.model, cost, raw.quantity)
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
	}

	tax, err := decimal.NewFromString(seed.tax)
	if err != nil {
		return err
	}
	shipping, err := decimal.NewFromString(seed.shipping)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		seed.firstName, seed.lastName, seed.email, seed.phone,
		address, lines, tax, shipping,
	)
	if err != nil {
		return err
	}

	created, err := s.create.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	switch seed.status {
	case order.Completed:
		completeCmd, cmdErr := commands.NewCompleteOrderCommand(created.ID())
		if cmdErr != nil {
			return cmdErr
		}
		_, err = s.complete.Handle(ctx, completeCmd)
	case order.Canceled:
		cancelCmd, cmdErr := commands.NewCancelOrderCommand(created.ID())
		if cmdErr != nil {
			return cmdErr
		}
		_, err = s.cancel.Handle(ctx, cancelCmd)
	}

	return err
}
