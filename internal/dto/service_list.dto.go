package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceListDTO struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Field        string          `json:"field"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	CreatedAt    time.Time       `json:"created_at"`
}

type ServiceDetailDTO struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Field        string          `json:"field"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	Company      string          `json:"company"`
	CreatedAt    time.Time       `json:"created_at"`
}
