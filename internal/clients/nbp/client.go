package nbp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"console-currency/internal"
)

const maxBodyBytes = 256 << 10

const DefaultBaseURL = "https://api.nbp.pl/api/exchangerates/tables/a"

// StatusError is any response status other than 200 and 404. A 404 is not
// an error: NBP publishes no table on weekends and holidays.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nbp http %d: %s", e.Status, e.Body)
}

type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// TableRates fetches the table A snapshot for one day. Returns (nil, nil)
// when no table is published for that date.
func (c *Client) TableRates(ctx context.Context, date internal.Date) (*internal.ExchangeTable, error) {
	u := fmt.Sprintf("%s/%s?format=json", c.BaseURL, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	default:
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	var tables []internal.ExchangeTable
	if err := json.Unmarshal(body, &tables); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(tables) == 0 {
		return nil, nil
	}
	return &tables[0], nil
}
