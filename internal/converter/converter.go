package converter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/koinvert-dev/koinvert/internal/config"
	"github.com/koinvert-dev/koinvert/internal/koinly"
	"github.com/koinvert-dev/koinvert/internal/novadax"
)

// Stats summarizes one conversion run. Totals are per currency code and
// only cover amounts that parse as decimals; in permissive mode anything
// else still reaches the output file untouched.
type Stats struct {
	Rows        int
	Invalid     int
	Passthrough int
	Sent        map[string]decimal.Decimal
	Received    map[string]decimal.Decimal
	Fees        map[string]decimal.Decimal
}

func newStats() Stats {
	return Stats{
		Sent:     make(map[string]decimal.Decimal),
		Received: make(map[string]decimal.Decimal),
		Fees:     make(map[string]decimal.Decimal),
	}
}

// Service converts NovaDAX statement CSVs into Koinly import CSVs.
type Service struct {
	fiat   string
	strict bool
}

// New creates a converter Service from config.
func New(cfg config.ConverterConfig) *Service {
	fiat := cfg.FiatCurrency
	if fiat == "" {
		fiat = novadax.DefaultFiat
	}
	return &Service{fiat: fiat, strict: cfg.Strict}
}

// Convert reads a NovaDAX statement from r and writes the Koinly CSV to w.
// The first input line is the statement header and is skipped; every data
// line produces exactly one output line, in input order. Short rows become
// sentinel rows and unrecognized types pass through, so the only failures
// are CSV framing, I/O, and strict-mode amount errors.
func (s *Service) Convert(r io.Reader, w io.Writer) (Stats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Stats{}, fmt.Errorf("reading statement CSV: %w", err)
	}

	stats := newStats()
	var out [][]string

	if len(records) > 0 {
		for i, rec := range records[1:] {
			row, ok := novadax.ConvertRow(rec, s.fiat)
			if !ok {
				stats.Invalid++
				out = append(out, koinly.InvalidRow())
				continue
			}
			if err := s.observe(&stats, row); err != nil {
				return Stats{}, fmt.Errorf("row %d: %w", i+2, err)
			}
			out = append(out, koinly.MarshalRow(row))
		}
	}
	stats.Rows = len(out)

	if err := koinly.WriteRecords(w, out); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// ConvertFile converts inPath and writes the result to outPath.
func (s *Service) ConvertFile(inPath, outPath string) (Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, fmt.Errorf("opening statement: %w", err)
	}
	defer in.Close()

	outFile, err := os.Create(outPath)
	if err != nil {
		return Stats{}, fmt.Errorf("creating output: %w", err)
	}
	defer outFile.Close()

	stats, err := s.Convert(in, outFile)
	if err != nil {
		return Stats{}, err
	}
	if err := outFile.Close(); err != nil {
		return Stats{}, fmt.Errorf("closing output: %w", err)
	}
	return stats, nil
}

func (s *Service) observe(stats *Stats, row koinly.Row) error {
	if row.SentAmount == "" && row.ReceivedAmount == "" && row.FeeAmount == "" {
		stats.Passthrough++
		return nil
	}
	if err := s.tally(stats.Sent, row.SentCurrency, row.SentAmount); err != nil {
		return err
	}
	if err := s.tally(stats.Received, row.ReceivedCurrency, row.ReceivedAmount); err != nil {
		return err
	}
	return s.tally(stats.Fees, row.FeeCurrency, row.FeeAmount)
}

func (s *Service) tally(totals map[string]decimal.Decimal, currency, amount string) error {
	if amount == "" {
		return nil
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		if s.strict {
			return fmt.Errorf("invalid amount %q: %w", amount, err)
		}
		return nil
	}
	totals[currency] = totals[currency].Add(d)
	return nil
}
