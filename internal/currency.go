package internal

import (
	"bytes"
	"fmt"
	"strings"
)

type CurrencyCode string

func NewCurrencyCode(s string) (CurrencyCode, error) {
	ccy := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !ccy.IsValid() {
		return "", fmt.Errorf("invalid currency code %q", s)
	}
	return ccy, nil
}

const (
	EUR CurrencyCode = "EUR"
	USD CurrencyCode = "USD"
)

// IsValid checks the ISO 4217 shape, not membership in a fixed list:
// table A carries a few dozen codes and the set changes over time.
func (c CurrencyCode) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}

// IsBase reports whether the code is always displayed (EUR/USD).
func (c CurrencyCode) IsBase() bool { return c == EUR || c == USD }

func (c CurrencyCode) String() string { return string(c) }

func (c CurrencyCode) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

func (c *CurrencyCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), "\"")
	ccy, err := NewCurrencyCode(s)
	if err != nil {
		return err
	}
	*c = ccy
	return nil
}
