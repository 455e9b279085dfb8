package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Irex777/bolt-popcorn-pos/models"
)

// SaleRepository is the persistence boundary for completed sales. Sales are
// append-only: there is deliberately no update or delete.
type SaleRepository interface {
	// Create inserts a sale together with its lines as a single atomic write.
	Create(ctx context.Context, sale *models.Sale) error
	// FindByCreatedAtRange returns sales whose timestamp falls inside
	// [start, end] inclusive, most recent first.
	FindByCreatedAtRange(ctx context.Context, start, end time.Time) ([]models.Sale, error)
}

// ProductRepository is the read-only catalog boundary.
type ProductRepository interface {
	// FindAll returns the catalog ordered by category, then name.
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}
