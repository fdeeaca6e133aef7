package models

import "time"

// A customer's order against a service. Cost is never stored: it is
// hours times the service's current price, computed on read.
type ServiceRequest struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	ServiceID uint    `gorm:"index;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CustomerID uint            `gorm:"index;not null" json:"customer_id"`
	Customer   CustomerProfile `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Address string `gorm:"size:255;not null" json:"address"`
	Hours   int    `gorm:"not null" json:"hours"`

	RequestedAt time.Time `gorm:"autoCreateTime" json:"requested_at"`
}
