// export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"tradelog/ledger"
)

var header = []string{"date", "pnl", "notes"}

// WriteCSV writes the ledger as CSV, one row per day, sorted by date
// ascending.
func WriteCSV(w io.Writer, trades map[string]ledger.Trade) error {
	keys := make([]string, 0, len(trades))
	for k := range trades {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, k := range keys {
		t := trades[k]
		if err := cw.Write([]string{t.Date, t.Pnl.String(), t.Notes}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses trades from CSV. A leading "date,pnl,notes" header row is
// skipped when present. Rows whose pnl does not parse are an error, not a
// silent zero.
func ReadCSV(r io.Reader) ([]ledger.Trade, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var out []ledger.Trade
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		if first {
			first = false
			if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "date") {
				continue
			}
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("row for %q: want at least date,pnl", strings.Join(row, ","))
		}

		pnl, err := decimal.NewFromString(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("row %q: parse pnl: %w", row[0], err)
		}

		t := ledger.Trade{Date: strings.TrimSpace(row[0]), Pnl: pnl}
		if len(row) > 2 {
			t.Notes = row[2]
		}
		out = append(out, t)
	}
}
