package koinly

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Header is the CSV header for the Koinly universal import format.
const Header = "Date,Sent Amount,Sent Currency,Received Amount,Received Currency,Fee Amount,Fee Currency,Net Worth Amount,Net Worth Currency,Label,Description,TxHash"

const (
	// NumFields is the fixed column count of a Koinly row.
	NumFields = 12

	colDate        = 0
	colSentAmt     = 1
	colSentCur     = 2
	colRecvAmt     = 3
	colRecvCur     = 4
	colFeeAmt      = 5
	colFeeCur      = 6
	colNetWorthAmt = 7
	colNetWorthCur = 8
	colLabel       = 9
	colDescription = 10
	colTxHash      = 11
)

// invalidMarker fills every column of a sentinel row emitted for
// statement lines that are too short to classify.
const invalidMarker = "Invalid Row"

// Row is a single Koinly transaction. Amounts are decimal-formatted
// strings, never floats, so the source digits survive untouched.
// NetWorth columns and TxHash are always emitted empty.
type Row struct {
	Date             string
	SentAmount       string
	SentCurrency     string
	ReceivedAmount   string
	ReceivedCurrency string
	FeeAmount        string
	FeeCurrency      string
	Label            string
	Description      string
}

// MarshalRow converts a Row to a CSV record.
func MarshalRow(r Row) []string {
	rec := make([]string, NumFields)
	rec[colDate] = r.Date
	rec[colSentAmt] = r.SentAmount
	rec[colSentCur] = r.SentCurrency
	rec[colRecvAmt] = r.ReceivedAmount
	rec[colRecvCur] = r.ReceivedCurrency
	rec[colFeeAmt] = r.FeeAmount
	rec[colFeeCur] = r.FeeCurrency
	rec[colLabel] = r.Label
	rec[colDescription] = r.Description
	return rec
}

// InvalidRow returns the sentinel record for an unparseable statement line.
func InvalidRow() []string {
	rec := make([]string, NumFields)
	for i := range rec {
		rec[i] = invalidMarker
	}
	return rec
}

// WriteRecords writes the Koinly header followed by the given records.
func WriteRecords(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
