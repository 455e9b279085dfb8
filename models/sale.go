package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a completed checkout. Once written it is never updated or
// deleted; the terminal only appends sales.
type Sale struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	OperatorID string          `gorm:"type:varchar(128);not null;index" json:"operator_id"`
	CreatedAt  time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	Lines      []SaleLine      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"lines"`
}

// SaleLine is a frozen copy of a cart line taken at checkout time. Name and
// unit price are stored as they were at the moment of sale, so later catalog
// edits never change a recorded sale. Position preserves cart order.
type SaleLine struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Position  int             `gorm:"not null" json:"position"`
}
