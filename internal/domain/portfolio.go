package domain

import (
	"time"

	"github.com/google/uuid"
)

type Currency string

const (
	CurrencyKRW Currency = "KRW"
	CurrencyUSD Currency = "USD"
)

type PortfolioType string

const (
	PortfolioTypeReal PortfolioType = "REAL"
	PortfolioTypeFake PortfolioType = "FAKE"
	PortfolioTypeLink PortfolioType = "LINK"
)

type Portfolio struct {
	PortfolioID uuid.UUID
	MemberID    uuid.UUID
	Name        string
	Description string
	Currency    Currency
	Type        PortfolioType
	// IncludeInTotal controls whether the portfolio counts toward the
	// member-wide summary.
	IncludeInTotal bool
	CreatedAt      time.Time
}
