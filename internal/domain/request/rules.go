package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
)

// ===============================
// Service request rules
// ===============================

const maxAddressLen = 255

func ValidateOrder(address string, hours int) error {
	address = strings.TrimSpace(address)
	if address == "" || len(address) > maxAddressLen {
		return httperr.ErrValidation("address")
	}
	if hours < 1 {
		return httperr.ErrValidation("hours")
	}
	return nil
}

// Cost is hours times the service's current hourly price. Always computed
// fresh, never persisted.
func Cost(req *models.ServiceRequest, svc *models.Service) decimal.Decimal {
	return svc.PricePerHour.Mul(decimal.NewFromInt(int64(req.Hours)))
}
