package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestListDTO struct {
	ID          uint            `json:"id"`
	Reference   string          `json:"reference"`
	ServiceID   uint            `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Address     string          `json:"address"`
	Hours       int             `json:"hours"`
	Cost        decimal.Decimal `json:"cost"`
	RequestedAt time.Time       `json:"requested_at"`
}
