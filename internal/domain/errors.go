package domain

import "errors"

var (
	// ErrInvalidTradeData indicates a malformed trade ledger entry,
	// e.g. a negative price or quantity.
	ErrInvalidTradeData = errors.New("invalid trade data")

	// ErrQuoteUnavailable indicates the remote stock data service could
	// not supply a usable quote for a stock code.
	ErrQuoteUnavailable = errors.New("quote unavailable")

	ErrNotFound = errors.New("not found")
)
