package rates_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"console-currency/internal"
	"console-currency/internal/clients/nbp"
	"console-currency/internal/clients/nbp/mock"
	"console-currency/internal/service/rates"
)

func fixedToday() internal.Date { return internal.NewDate(2026, time.August, 28) }

func tableFor(date internal.Date) *internal.ExchangeTable {
	return &internal.ExchangeTable{
		Table:         "A",
		EffectiveDate: date,
		Rates: []internal.CurrencyRate{
			{Currency: "euro", Code: internal.EUR, Mid: decimal.RequireFromString("4.30")},
			{Currency: "dolar amerykański", Code: internal.USD, Mid: decimal.RequireFromString("4.00")},
		},
	}
}

func TestService_FetchRange_OrderMatchesRequest(t *testing.T) {
	provider := mock.NewMockRatesProvider(t)
	today := fixedToday()

	for i := 0; i < 5; i++ {
		date := today.AddDays(-i)
		provider.EXPECT().
			TableRates(testifymock.Anything, date).
			Return(tableFor(date), nil).
			Once()
	}

	svc := rates.NewWithClock(provider, fixedToday)
	results, err := svc.FetchRange(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, results, 5)
	for i, table := range results {
		require.NotNil(t, table)
		assert.Equal(t, today.AddDays(-i).String(), table.EffectiveDate.String())
	}
}

func TestService_FetchRange_SingleDay(t *testing.T) {
	provider := mock.NewMockRatesProvider(t)
	today := fixedToday()

	provider.EXPECT().
		TableRates(testifymock.Anything, today).
		Return(tableFor(today), nil).
		Once()

	svc := rates.NewWithClock(provider, fixedToday)
	results, err := svc.FetchRange(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestService_FetchRange_MissingDaysKeepSlots(t *testing.T) {
	provider := mock.NewMockRatesProvider(t)
	today := fixedToday()

	provider.EXPECT().TableRates(testifymock.Anything, today).Return(tableFor(today), nil).Once()
	provider.EXPECT().TableRates(testifymock.Anything, today.AddDays(-1)).Return(tableFor(today.AddDays(-1)), nil).Once()
	// weekend: no table published
	provider.EXPECT().TableRates(testifymock.Anything, today.AddDays(-2)).Return(nil, nil).Once()

	svc := rates.NewWithClock(provider, fixedToday)
	results, err := svc.FetchRange(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.NotNil(t, results[0])
	assert.NotNil(t, results[1])
	assert.Nil(t, results[2])
}

func TestService_FetchRange_InvalidDays(t *testing.T) {
	for _, days := range []int{0, -1, 11, 100} {
		provider := mock.NewMockRatesProvider(t)
		svc := rates.NewWithClock(provider, fixedToday)

		results, err := svc.FetchRange(context.Background(), days)

		require.ErrorIs(t, err, rates.ErrInvalidDays)
		assert.Nil(t, results)
		provider.AssertNotCalled(t, "TableRates")
	}
}

func TestService_FetchRange_StatusErrorFailsWholeRun(t *testing.T) {
	provider := mock.NewMockRatesProvider(t)
	today := fixedToday()

	provider.EXPECT().
		TableRates(testifymock.Anything, today).
		Return(nil, &nbp.StatusError{Status: http.StatusBadGateway, Body: "bad gateway"}).
		Once()
	provider.EXPECT().
		TableRates(testifymock.Anything, testifymock.Anything).
		Return(nil, nil).
		Maybe()

	svc := rates.NewWithClock(provider, fixedToday)
	results, err := svc.FetchRange(context.Background(), 3)

	require.Error(t, err)
	assert.Nil(t, results)

	var statusErr *nbp.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Status)
	assert.Contains(t, err.Error(), today.String())
}
