package nbp

import (
	"context"

	"console-currency/internal"
)

type RatesProvider interface {
	TableRates(ctx context.Context, date internal.Date) (*internal.ExchangeTable, error)
}
