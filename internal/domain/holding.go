package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeType string

const (
	TradeTypeBuy TradeType = "BUY"
	// reserved - sells are recorded but never produced yet
	TradeTypeSell TradeType = "SELL"
)

// Holding is one stock position inside a portfolio. The stock code is
// fixed at creation; quantity and cost are always derived from the
// trade logs, never stored on the holding itself.
type Holding struct {
	HoldingID   uuid.UUID
	PortfolioID uuid.UUID
	StockCode   string
	CreatedAt   time.Time
}

// TradeLog is one executed trade against a holding. Immutable once
// recorded. MarketPrice is the quoted price at execution time and is
// informational only - it never feeds cost basis.
type TradeLog struct {
	TradeLogID  uuid.UUID
	HoldingID   uuid.UUID
	Type        TradeType
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	MarketPrice decimal.Decimal
	TradeDate   time.Time
}
