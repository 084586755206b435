package service

import (
	"context"
	"database/sql"
	"fmt"

	"stockfolio/internal/calculator"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/domain"
	"stockfolio/internal/repository"

	"github.com/google/uuid"
)

type PortfolioService interface {
	Create(ctx context.Context, input CreatePortfolioInput) (*domain.Portfolio, error)
	// List returns the member's portfolios with each one's current
	// gain and gain rate, for the portfolio list view.
	List(ctx context.Context, memberID uuid.UUID) ([]PortfolioListItem, error)
	Summary(ctx context.Context, portfolioID uuid.UUID) (*domain.PortfolioSummary, error)
	// TotalSummary combines the summaries of every portfolio the
	// member flagged as include-in-total.
	TotalSummary(ctx context.Context, memberID uuid.UUID) (*domain.PortfolioSummary, error)
}

type portfolioServiceHandler struct {
	Db                  *sql.DB
	PortfolioRepository repository.PortfolioRepository
	HoldingService      HoldingService
}

func NewPortfolioService(db *sql.DB, portfolioRepository repository.PortfolioRepository, holdingService HoldingService) PortfolioService {
	return portfolioServiceHandler{
		Db:                  db,
		PortfolioRepository: portfolioRepository,
		HoldingService:      holdingService,
	}
}

type CreatePortfolioInput struct {
	MemberID       uuid.UUID
	Name           string
	Description    string
	Currency       domain.Currency
	Type           domain.PortfolioType
	IncludeInTotal bool
}

type PortfolioListItem struct {
	Portfolio domain.Portfolio
	Summary   domain.PortfolioSummary
}

func (h portfolioServiceHandler) Create(ctx context.Context, input CreatePortfolioInput) (*domain.Portfolio, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("portfolio name must not be empty")
	}

	var description *string
	if input.Description != "" {
		description = &input.Description
	}

	inserted, err := h.PortfolioRepository.Add(nil, model.Portfolio{
		MemberID:       input.MemberID,
		Name:           input.Name,
		Description:    description,
		Currency:       string(input.Currency),
		Type:           string(input.Type),
		IncludeInTotal: input.IncludeInTotal,
	})
	if err != nil {
		return nil, err
	}

	portfolio := portfolioFromModel(*inserted)
	return &portfolio, nil
}

func (h portfolioServiceHandler) List(ctx context.Context, memberID uuid.UUID) ([]PortfolioListItem, error) {
	portfolios, err := h.PortfolioRepository.ListByMember(memberID)
	if err != nil {
		return nil, err
	}

	items := []PortfolioListItem{}
	for _, p := range portfolios {
		summary, err := h.summarize(ctx, p.PortfolioID)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize portfolio %s: %w", p.PortfolioID, err)
		}
		items = append(items, PortfolioListItem{
			Portfolio: portfolioFromModel(p),
			Summary:   *summary,
		})
	}

	return items, nil
}

func (h portfolioServiceHandler) Summary(ctx context.Context, portfolioID uuid.UUID) (*domain.PortfolioSummary, error) {
	if _, err := h.PortfolioRepository.Get(portfolioID); err != nil {
		return nil, err
	}

	return h.summarize(ctx, portfolioID)
}

func (h portfolioServiceHandler) TotalSummary(ctx context.Context, memberID uuid.UUID) (*domain.PortfolioSummary, error) {
	portfolios, err := h.PortfolioRepository.ListByMember(memberID)
	if err != nil {
		return nil, err
	}

	summaries := []domain.PortfolioSummary{}
	for _, p := range portfolios {
		if !p.IncludeInTotal {
			continue
		}
		summary, err := h.summarize(ctx, p.PortfolioID)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize portfolio %s: %w", p.PortfolioID, err)
		}
		summaries = append(summaries, *summary)
	}

	combined := calculator.CombineSummaries(summaries)
	return &combined, nil
}

func (h portfolioServiceHandler) summarize(ctx context.Context, portfolioID uuid.UUID) (*domain.PortfolioSummary, error) {
	holdingValuations, err := h.HoldingService.ListValuations(ctx, portfolioID, nil)
	if err != nil {
		return nil, err
	}

	valuations := make([]domain.Valuation, 0, len(holdingValuations))
	for _, hv := range holdingValuations {
		valuations = append(valuations, hv.Valuation)
	}

	summary := calculator.Summarize(valuations)
	return &summary, nil
}

func portfolioFromModel(m model.Portfolio) domain.Portfolio {
	description := ""
	if m.Description != nil {
		description = *m.Description
	}
	return domain.Portfolio{
		PortfolioID:    m.PortfolioID,
		MemberID:       m.MemberID,
		Name:           m.Name,
		Description:    description,
		Currency:       domain.Currency(m.Currency),
		Type:           domain.PortfolioType(m.Type),
		IncludeInTotal: m.IncludeInTotal,
		CreatedAt:      m.CreatedAt,
	}
}
