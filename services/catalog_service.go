package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Irex777/bolt-popcorn-pos/models"
	"github.com/Irex777/bolt-popcorn-pos/repository"
)

const catalogCacheKey = "catalog:products"

// CatalogService is the terminal's read-only view of the product catalog,
// with a Redis read-through cache in front of the database. Cache failures
// degrade to plain DB reads; they never fail a request.
type CatalogService struct {
	products repository.ProductRepository
	cache    *redis.Client
	ttl      time.Duration
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService. cache may be nil, in which
// case every read goes to the database.
func NewCatalogService(products repository.ProductRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// ListProducts returns the catalog ordered by category.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if cached, ok := s.cachedProducts(ctx); ok {
		return cached, nil
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheProducts(ctx, products)
	return products, nil
}

// GetProduct resolves one product by id, going through the cached list
// before falling back to a direct lookup.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if cached, ok := s.cachedProducts(ctx); ok {
		for i := range cached {
			if cached[i].ID == id {
				return &cached[i], nil
			}
		}
	}
	return s.products.FindByID(ctx, id)
}

// FilterByCategory returns the products matching the category label, in the
// order received. An empty or "all" category returns everything. This is a
// pure read; cart state is never involved.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "" || category == "all" {
		return products
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Categories returns the unique category labels in first-seen order.
func Categories(products []models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (s *CatalogService) cachedProducts(ctx context.Context) ([]models.Product, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, catalogCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("Catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		s.logger.Warn("Failed to unmarshal cached catalog", zap.Error(err))
		return nil, false
	}
	return products, true
}

func (s *CatalogService) cacheProducts(ctx context.Context, products []models.Product) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		s.logger.Warn("Failed to marshal catalog for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, catalogCacheKey, data, s.ttl).Err(); err != nil {
		s.logger.Warn("Catalog cache write failed", zap.Error(err))
	}
}
