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

type PortfolioRepository interface {
	Get(portfolioID uuid.UUID) (*model.Portfolio, error)
	ListByMember(memberID uuid.UUID) ([]model.Portfolio, error)
	Add(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error)
	Delete(tx *sql.Tx, portfolioID uuid.UUID) error
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) Get(portfolioID uuid.UUID) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID)))

	result := model.Portfolio{}
	err := query.Query(h.Db, &result)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, fmt.Errorf("portfolio %s: %w", portfolioID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	return &result, nil
}

func (h portfolioRepositoryHandler) ListByMember(memberID uuid.UUID) ([]model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.MemberID.EQ(postgres.UUID(memberID)))

	result := []model.Portfolio{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}

	return result, nil
}

func (h portfolioRepositoryHandler) Add(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error) {
	p.CreatedAt = time.Now().UTC()
	query := table.Portfolio.
		INSERT(table.Portfolio.MutableColumns).
		MODEL(p).
		RETURNING(table.Portfolio.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) Delete(tx *sql.Tx, portfolioID uuid.UUID) error {
	query := table.Portfolio.
		DELETE().
		WHERE(table.Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}

	return nil
}
