package internal

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CurrencyRate is one row of a published table. Field names follow the
// NBP table A wire format.
type CurrencyRate struct {
	Currency string          `json:"currency"`
	Code     CurrencyCode    `json:"code"`
	Mid      decimal.Decimal `json:"mid"`
}

// ExchangeTable is the rate table NBP publishes for one business day.
// The API returns it wrapped in a single-element JSON array.
type ExchangeTable struct {
	Table         string         `json:"table"`
	No            string         `json:"no"`
	EffectiveDate Date           `json:"effectiveDate"`
	Rates         []CurrencyRate `json:"rates"`
}

func (t *ExchangeTable) Empty() bool {
	return t == nil || len(t.Rates) == 0
}

// Find returns the first row with the given code. Codes are unique within
// one table, so first match is an exact lookup.
func (t *ExchangeTable) Find(code CurrencyCode) (CurrencyRate, bool) {
	if t == nil {
		return CurrencyRate{}, false
	}
	for _, r := range t.Rates {
		if r.Code == code {
			return r, true
		}
	}
	return CurrencyRate{}, false
}

// ResultSet holds one slot per requested day, index i = today minus i days.
// A nil slot means no table was published for that day (weekend, holiday).
type ResultSet []*ExchangeTable

// AvailableCurrencies collects the codes seen across all present tables,
// excluding the always-displayed EUR/USD, sorted for stable prompts.
func (rs ResultSet) AvailableCurrencies() []CurrencyCode {
	seen := make(map[CurrencyCode]struct{})
	for _, t := range rs {
		if t.Empty() {
			continue
		}
		for _, r := range t.Rates {
			if r.Code.IsBase() {
				continue
			}
			seen[r.Code] = struct{}{}
		}
	}

	codes := make([]CurrencyCode, 0, len(seen))
	for c := range seen {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
