package repository

import (
	"database/sql"
	"fmt"
	"time"

	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeLogRepository interface {
	// ListByHolding returns every trade recorded against the holding,
	// in no particular order. Never returns nil.
	ListByHolding(holdingID uuid.UUID) ([]model.TradeLog, error)
	Add(tx *sql.Tx, t model.TradeLog) (*model.TradeLog, error)
	DeleteByHolding(tx *sql.Tx, holdingID uuid.UUID) error
}

type tradeLogRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeLogRepository(db *sql.DB) TradeLogRepository {
	return tradeLogRepositoryHandler{Db: db}
}

func (h tradeLogRepositoryHandler) ListByHolding(holdingID uuid.UUID) ([]model.TradeLog, error) {
	query := table.TradeLog.
		SELECT(table.TradeLog.AllColumns).
		WHERE(table.TradeLog.HoldingID.EQ(postgres.UUID(holdingID)))

	result := []model.TradeLog{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list trade logs: %w", err)
	}

	return result, nil
}

func (h tradeLogRepositoryHandler) Add(tx *sql.Tx, t model.TradeLog) (*model.TradeLog, error) {
	if t.Quantity.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("failed to insert trade log: quantity must be >= 0, got %s", t.Quantity.String())
	}
	if t.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("failed to insert trade log: price must be >= 0, got %s", t.Price.String())
	}

	t.CreatedAt = time.Now().UTC()
	query := table.TradeLog.
		INSERT(table.TradeLog.MutableColumns).
		MODEL(t).
		RETURNING(table.TradeLog.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.TradeLog{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trade log: %w", err)
	}

	return &out, nil
}

func (h tradeLogRepositoryHandler) DeleteByHolding(tx *sql.Tx, holdingID uuid.UUID) error {
	query := table.TradeLog.
		DELETE().
		WHERE(table.TradeLog.HoldingID.EQ(postgres.UUID(holdingID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete trade logs: %w", err)
	}

	return nil
}
