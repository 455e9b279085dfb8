package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Irex777/bolt-popcorn-pos/models"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new instance of GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) SaleRepository {
	return &GormSaleRepository{db: db}
}

// Create inserts the sale and its lines. GORM writes the association in the
// same transaction as the parent row, so a failure leaves nothing behind.
func (r *GormSaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// FindByCreatedAtRange retrieves sales inside the inclusive window, newest
// first. The descending order is part of the history contract, not a
// presentation concern.
func (r *GormSaleRepository) FindByCreatedAtRange(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	var sales []models.Sale

	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}

	return sales, nil
}
