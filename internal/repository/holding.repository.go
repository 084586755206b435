package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/db/models/postgres/public/table"
	"stockfolio/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type HoldingRepository interface {
	Get(holdingID uuid.UUID) (*model.Holding, error)
	ListByPortfolio(portfolioID uuid.UUID) ([]model.Holding, error)
	Add(tx *sql.Tx, h model.Holding) (*model.Holding, error)
	Delete(tx *sql.Tx, holdingID uuid.UUID) error
}

type holdingRepositoryHandler struct {
	Db *sql.DB
}

func NewHoldingRepository(db *sql.DB) HoldingRepository {
	return holdingRepositoryHandler{Db: db}
}

func (h holdingRepositoryHandler) Get(holdingID uuid.UUID) (*model.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		WHERE(table.Holding.HoldingID.EQ(postgres.UUID(holdingID)))

	result := model.Holding{}
	err := query.Query(h.Db, &result)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, fmt.Errorf("holding %s: %w", holdingID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}

	return &result, nil
}

func (h holdingRepositoryHandler) ListByPortfolio(portfolioID uuid.UUID) ([]model.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		WHERE(table.Holding.PortfolioID.EQ(postgres.UUID(portfolioID)))

	result := []model.Holding{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	return result, nil
}

func (h holdingRepositoryHandler) Add(tx *sql.Tx, holding model.Holding) (*model.Holding, error) {
	if holding.StockCode == "" {
		return nil, fmt.Errorf("failed to insert holding: stock code must not be empty")
	}

	holding.CreatedAt = time.Now().UTC()
	query := table.Holding.
		INSERT(table.Holding.MutableColumns).
		MODEL(holding).
		RETURNING(table.Holding.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Holding{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert holding: %w", err)
	}

	return &out, nil
}

// Delete removes the holding row only. Trade logs are owned by the
// holding and must be removed in the same transaction, see
// TradeLogRepository.DeleteByHolding.
func (h holdingRepositoryHandler) Delete(tx *sql.Tx, holdingID uuid.UUID) error {
	query := table.Holding.
		DELETE().
		WHERE(table.Holding.HoldingID.EQ(postgres.UUID(holdingID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	return nil
}
