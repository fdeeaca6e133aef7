package models

import "time"

// One per account with role "company". Field is one of the fixed category
// names, "All in One" meaning the company may list in any category.
// Rating is reserved for a future reviews feature; nothing mutates it yet.
type CompanyProfile struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Field  string `gorm:"size:70;not null" json:"field"`
	Rating int    `gorm:"default:0;check:rating >= 0 AND rating <= 5" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
