package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Irex777/bolt-popcorn-pos/models"
	"github.com/Irex777/bolt-popcorn-pos/repository"
)

// CheckoutService turns a cart into an immutable sale record.
type CheckoutService struct {
	sales  repository.SaleRepository
	logger *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(sales repository.SaleRepository, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{sales: sales, logger: logger}
}

// Commit persists the cart as a sale and clears it on success.
//
// The total is always recomputed from the cart's lines, never taken from a
// caller. Every line is frozen into a snapshot carrying the product id,
// name, unit price and quantity as they are right now, so later catalog
// edits cannot alter the recorded sale. The insert is a single atomic
// create; on failure the cart is left exactly as it was and the operator
// may retry. The service itself never retries a financial transaction.
func (s *CheckoutService) Commit(ctx context.Context, cart *models.Cart, operatorID string) (uuid.UUID, error) {
	if cart.Empty() {
		return uuid.Nil, ErrEmptyCart
	}

	lines := cart.Lines()
	total := cart.Total()

	sale := &models.Sale{
		ID:         uuid.New(),
		Total:      total,
		OperatorID: operatorID,
		Lines:      make([]models.SaleLine, 0, len(lines)),
	}
	for i, l := range lines {
		sale.Lines = append(sale.Lines, models.SaleLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Position:  i,
		})
	}

	if err := s.sales.Create(ctx, sale); err != nil {
		s.logger.Error("Failed to persist sale",
			zap.String("operator_id", operatorID),
			zap.Error(err),
		)
		return uuid.Nil, &CheckoutFailedError{Cause: err}
	}

	cart.Clear()

	s.logger.Info("Sale committed",
		zap.String("sale_id", sale.ID.String()),
		zap.String("operator_id", operatorID),
		zap.String("total", total.StringFixed(2)),
		zap.Int("lines", len(sale.Lines)),
	)

	return sale.ID, nil
}
