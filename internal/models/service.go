package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CompanyID uint           `gorm:"index;not null" json:"company_id"`
	Company   CompanyProfile `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Name         string          `gorm:"size:100;not null" json:"name"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Field        string          `gorm:"size:70;index;not null" json:"field"`
	PricePerHour decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"price_per_hour"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
