package models

import "time"

// One per account with role "customer". BirthDate is a date-only value
// stored at midnight UTC.
type CustomerProfile struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	BirthDate time.Time `gorm:"type:date;not null" json:"birth_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
