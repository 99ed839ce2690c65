package console

import (
	"fmt"
	"io"

	"console-currency/internal"
)

const (
	nameWidth = 36
	codeWidth = 4
)

type Displayer struct {
	out io.Writer
}

func NewDisplayer(out io.Writer) *Displayer { return &Displayer{out: out} }

// ShowBase prints the EUR/USD rows for every fetched day. Slot i of the
// result set is labeled today-i; rows keep the order of the source table.
func (d *Displayer) ShowBase(results internal.ResultSet, today internal.Date) {
	if len(results) == 0 {
		fmt.Fprintln(d.out, "No data available.")
		return
	}

	for i, table := range results {
		fmt.Fprintf(d.out, "Data as of day %s:\n", today.AddDays(-i))
		if table.Empty() {
			fmt.Fprintln(d.out, "No data.")
		} else {
			for _, r := range table.Rates {
				if r.Code.IsBase() {
					d.printRate(r)
				}
			}
		}
		fmt.Fprintln(d.out)
	}
}

// ShowCurrency prints the row for one chosen currency for every fetched
// day, with the same framing as ShowBase.
func (d *Displayer) ShowCurrency(code internal.CurrencyCode, results internal.ResultSet, today internal.Date) {
	for i, table := range results {
		fmt.Fprintf(d.out, "Data as of day %s:\n", today.AddDays(-i))
		if table.Empty() {
			fmt.Fprintln(d.out, "No data.")
		} else if r, ok := table.Find(code); ok {
			d.printRate(r)
		}
		fmt.Fprintln(d.out)
	}
}

func (d *Displayer) printRate(r internal.CurrencyRate) {
	fmt.Fprintf(d.out, "%-*s %-*s %s\n", nameWidth, r.Currency, codeWidth, r.Code, r.Mid)
}
