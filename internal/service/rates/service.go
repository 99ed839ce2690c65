package rates

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"console-currency/internal"
	"console-currency/internal/clients/nbp"
)

const MaxDays = 10

var ErrInvalidDays = fmt.Errorf("days must be between 1 and %d", MaxDays)

type Service struct {
	provider nbp.RatesProvider
	today    func() internal.Date
}

func New(provider nbp.RatesProvider) *Service {
	return &Service{provider: provider, today: internal.Today}
}

// NewWithClock allows tests to pin the current day.
func NewWithClock(provider nbp.RatesProvider, today func() internal.Date) *Service {
	return &Service{provider: provider, today: today}
}

// FetchRange fetches the tables for today back to today-(days-1), one
// concurrent request per day. Slot i of the result always holds the table
// for today-i regardless of completion order. The first failed request
// fails the whole call and cancels the requests still in flight.
func (s *Service) FetchRange(ctx context.Context, days int) (internal.ResultSet, error) {
	if days < 1 || days > MaxDays {
		return nil, ErrInvalidDays
	}

	today := s.today()
	results := make(internal.ResultSet, days)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < days; i++ {
		i := i
		date := today.AddDays(-i)
		g.Go(func() error {
			table, err := s.provider.TableRates(gctx, date)
			if err != nil {
				return fmt.Errorf("rates for %s: %w", date, err)
			}
			results[i] = table
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
