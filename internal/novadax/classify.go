package novadax

import (
	"strings"

	"github.com/koinvert-dev/koinvert/internal/koinly"
	"github.com/koinvert-dev/koinvert/internal/normalize"
)

// DefaultFiat is the currency code NovaDAX settles fiat legs in.
const DefaultFiat = "BRL"

// LabelReward marks bonus credits in the Koinly label column.
const LabelReward = "reward"

// Statement column positions. Exports may carry extra trailing columns;
// only the first minFields are consumed.
const (
	minFields = 5

	colTimestamp = 0
	colType      = 1
	colCurrency  = 2
	colValue     = 3
	colStatus    = 4
)

// effect carries the movement a matched rule distributes onto the row.
type effect struct {
	amount   string
	currency string
	fiat     string
}

func (e effect) isFiat() bool {
	return strings.EqualFold(e.currency, e.fiat)
}

type rule struct {
	keyword string
	apply   func(e effect, r *koinly.Row)
}

// rules is evaluated top to bottom and the first keyword hit wins.
// The order is load-bearing: "taxa de saque de criptomoedas" must be
// tested before the bare "saque de criptomoedas", and both fee rules
// before the compra/venda rules.
var rules = []rule{
	{"taxa de transacao", asFee},
	{"taxa de saque de criptomoedas", asFee},
	{"deposito em reais", asReceived},
	{"redeemed bonus", asReward},
	{"compra", asPurchase},
	{"venda", asSale},
	{"saque de criptomoedas", asSent},
}

func asFee(e effect, r *koinly.Row) {
	r.FeeAmount = e.amount
	if e.amount != "" {
		r.FeeCurrency = e.currency
	}
}

func asReceived(e effect, r *koinly.Row) {
	r.ReceivedAmount = e.amount
	if e.amount != "" {
		r.ReceivedCurrency = e.currency
	}
}

func asSent(e effect, r *koinly.Row) {
	r.SentAmount = e.amount
	if e.amount != "" {
		r.SentCurrency = e.currency
	}
}

func asReward(e effect, r *koinly.Row) {
	asReceived(e, r)
	r.Label = LabelReward
}

// asPurchase: a fiat-denominated purchase is money leaving the account,
// a crypto-denominated one is the asset arriving.
func asPurchase(e effect, r *koinly.Row) {
	if e.isFiat() {
		asSent(effect{amount: e.amount, currency: strings.ToUpper(e.fiat)}, r)
		return
	}
	asReceived(e, r)
}

// asSale mirrors asPurchase.
func asSale(e effect, r *koinly.Row) {
	if e.isFiat() {
		asReceived(effect{amount: e.amount, currency: strings.ToUpper(e.fiat)}, r)
		return
	}
	asSent(e, r)
}

// Classify builds a Koinly row (minus the date) from one statement line's
// type text, currency code and extracted amount. Keyword matching is
// case- and accent-insensitive; the Description keeps the original text.
// A type matching no rule yields a passthrough row with every financial
// column empty.
func Classify(typeText, currency, amount, fiat string) koinly.Row {
	row := koinly.Row{Description: typeText}
	folded := normalize.Fold(typeText)

	for _, rl := range rules {
		if strings.Contains(folded, rl.keyword) {
			rl.apply(effect{amount: amount, currency: currency, fiat: fiat}, &row)
			break
		}
	}
	return row
}

// ConvertRow maps one raw statement record onto a typed Koinly row.
// The second return is false when the record has fewer than minFields
// columns and cannot be classified at all.
func ConvertRow(rec []string, fiat string) (koinly.Row, bool) {
	if len(rec) < minFields {
		return koinly.Row{}, false
	}

	row := Classify(rec[colType], rec[colCurrency], ExtractAmount(rec[colValue]), fiat)
	row.Date = ConvertDate(rec[colTimestamp])
	return row, true
}

// ConvertRecord maps one raw statement record onto a Koinly CSV record.
// Records with fewer than minFields columns yield the sentinel row;
// nothing here ever fails the batch.
func ConvertRecord(rec []string, fiat string) []string {
	row, ok := ConvertRow(rec, fiat)
	if !ok {
		return koinly.InvalidRow()
	}
	return koinly.MarshalRow(row)
}
