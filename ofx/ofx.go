// Package ofx converts bank and credit card statements in the OFX format into cashlog ledgers.
package ofx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/etnz/cashlog"
)

// DescSource selects the statement fields used as the entry description.
type DescSource int

const (
	DescName DescSource = iota
	DescMemo
	// DescNameMemo joins the name and the memo, some banks split the payee across both.
	DescNameMemo
)

// ParseDescSource parses "name", "memo" or "both".
func ParseDescSource(s string) (DescSource, error) {
	switch s {
	case "name":
		return DescName, nil
	case "memo":
		return DescMemo, nil
	case "both":
		return DescNameMemo, nil
	}
	return DescName, fmt.Errorf("unknown description source %q, want name, memo or both", s)
}

var errNoStatement = errors.New("no bank or credit card statement")

// Decode reads an OFX response and returns its transactions as a ledger, in the order of the
// file: bank statements first, then credit card statements.
//
// The ledger delimiter is the default one.
func Decode(r io.Reader, src DescSource) (*cashlog.Ledger, error) {
	resp, err := ofxgo.ParseResponse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse OFX response: %w", err)
	}
	if len(resp.Bank) == 0 && len(resp.CreditCard) == 0 {
		return nil, errNoStatement
	}

	ledger := cashlog.NewLedger(cashlog.DefaultDelimiter)
	for _, msg := range append(resp.Bank, resp.CreditCard...) {
		var trns []ofxgo.Transaction
		switch stmt := msg.(type) {
		case *ofxgo.StatementResponse:
			if stmt.BankTranList != nil {
				trns = stmt.BankTranList.Transactions
			}
		case *ofxgo.CCStatementResponse:
			if stmt.BankTranList != nil {
				trns = stmt.BankTranList.Transactions
			}
		default:
			return nil, fmt.Errorf("unexpected OFX message %T", msg)
		}

		for _, trn := range trns {
			amount, err := cashlog.ParseAmount(trn.TrnAmt.String())
			if err != nil {
				return nil, fmt.Errorf("transaction %s: %w", trn.FiTID, err)
			}
			ledger.Append(cashlog.NewEntry(trn.DtPosted.Time, amount, description(trn, src)))
		}
	}
	return ledger, nil
}

func description(trn ofxgo.Transaction, src DescSource) string {
	name := strings.TrimSpace(string(trn.Name))
	memo := strings.TrimSpace(string(trn.Memo))
	switch src {
	case DescMemo:
		return memo
	case DescNameMemo:
		return strings.TrimSpace(name + " " + memo)
	}
	return name
}
