package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Irex777/bolt-popcorn-pos/models"
	"github.com/Irex777/bolt-popcorn-pos/repository"
)

// HistoryResult is the outcome of a period query: the sales inside the
// window newest first, their aggregate total, and the resolved range.
type HistoryResult struct {
	Sales  []models.Sale      `json:"sales"`
	Total  decimal.Decimal    `json:"total"`
	Range  models.PeriodRange `json:"range"`
	Period models.Period      `json:"period"`
}

// HistoryService aggregates persisted sales over daily/weekly/monthly
// windows. The clock is injected so range boundaries are testable; the
// default is UTC, which keeps boundaries identical across deployments.
type HistoryService struct {
	sales  repository.SaleRepository
	now    func() time.Time
	logger *zap.Logger
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(sales repository.SaleRepository, logger *zap.Logger) *HistoryService {
	return &HistoryService{
		sales:  sales,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// WithClock overrides the clock, for tests.
func (s *HistoryService) WithClock(now func() time.Time) *HistoryService {
	s.now = now
	return s
}

// Query resolves the period against the current instant, fetches the sales
// in that window and sums their totals. The range is recomputed on every
// call, never cached. An empty window is a valid result with total zero; a
// persistence failure surfaces as HistoryLoadError and nothing is shown in
// its place.
func (s *HistoryService) Query(ctx context.Context, period models.Period) (*HistoryResult, error) {
	rng := period.Range(s.now())

	sales, err := s.sales.FindByCreatedAtRange(ctx, rng.Start, rng.End)
	if err != nil {
		s.logger.Error("Sales range query failed",
			zap.String("period", string(period)),
			zap.Time("start", rng.Start),
			zap.Time("end", rng.End),
			zap.Error(err),
		)
		return nil, &HistoryLoadError{Cause: err}
	}

	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Total)
	}

	if sales == nil {
		sales = []models.Sale{}
	}

	return &HistoryResult{
		Sales:  sales,
		Total:  total,
		Range:  rng,
		Period: period,
	}, nil
}
