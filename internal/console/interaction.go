package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"console-currency/internal"
	"console-currency/internal/service/rates"
)

type Interaction struct {
	in    *bufio.Reader
	out   io.Writer
	rates *rates.Service
	disp  *Displayer

	// Today can be pinned in tests; labels must match the fetch range.
	Today func() internal.Date
}

func NewInteraction(in io.Reader, out io.Writer, svc *rates.Service) *Interaction {
	return &Interaction{
		in:    bufio.NewReader(in),
		out:   out,
		rates: svc,
		disp:  NewDisplayer(out),
		Today: internal.Today,
	}
}

// PromptDays asks for the day count and validates it before any network
// call happens. Zero and negative counts are rejected too.
func (it *Interaction) PromptDays() (int, error) {
	fmt.Fprint(it.out, "Enter the number of days (maximum 10):")

	line, err := it.readLine()
	if err != nil {
		return 0, err
	}

	days, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("the number of days must be a whole number")
	}
	if days > rates.MaxDays {
		return 0, fmt.Errorf("the number of days cannot be more than %d", rates.MaxDays)
	}
	if days < 1 {
		return 0, fmt.Errorf("the number of days must be at least 1")
	}
	return days, nil
}

// Run fetches the requested range once, shows the EUR/USD table, then
// loops offering a per-currency view until the user declines.
func (it *Interaction) Run(ctx context.Context, days int) error {
	today := it.Today()

	results, err := it.rates.FetchRange(ctx, days)
	if err != nil {
		return err
	}

	it.disp.ShowBase(results, today)
	available := results.AvailableCurrencies()

	for {
		fmt.Fprint(it.out, "Do you want to see rates for other currencies? (Y/N):")

		line, err := it.readLine()
		if err != nil {
			// closed stdin ends the session like an N
			return nil
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "Y":
			it.showAdditional(available, results, today)
		case "N":
			return nil
		default:
			fmt.Fprintln(it.out, "Incorrect selection, select 'Y' or 'N'.")
		}
	}
}

func (it *Interaction) showAdditional(available []internal.CurrencyCode, results internal.ResultSet, today internal.Date) {
	if len(available) == 0 {
		fmt.Fprintln(it.out, "No additional currencies available.")
		return
	}

	fmt.Fprintf(it.out, "Enter the currency abbreviation (available: %s): ", joinCodes(available))

	line, err := it.readLine()
	if err != nil {
		return
	}

	choice := internal.CurrencyCode(strings.ToUpper(strings.TrimSpace(line)))
	for _, c := range available {
		if c == choice {
			it.disp.ShowCurrency(choice, results, today)
			return
		}
	}
	fmt.Fprintln(it.out, "There is no such currency on the list.")
}

func (it *Interaction) readLine() (string, error) {
	line, err := it.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func joinCodes(codes []internal.CurrencyCode) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
