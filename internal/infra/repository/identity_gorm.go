package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/homehands/marketplace-api/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

// --------------------------------------------------
// Uniqueness predicates
// --------------------------------------------------

func (r *IdentityGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *IdentityGormRepository) UsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Account
// --------------------------------------------------

func (r *IdentityGormRepository) GetAccountByEmail(
	ctx context.Context,
	email string,
) (*models.Account, error) {

	var account models.Account
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *IdentityGormRepository) GetAccountByUsername(
	ctx context.Context,
	username string,
) (*models.Account, error) {

	var account models.Account
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *IdentityGormRepository) GetAccountByID(
	ctx context.Context,
	id uint,
) (*models.Account, error) {

	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// --------------------------------------------------
// Registration
// --------------------------------------------------

// CreateCustomerAccount persists the account and its customer profile in a
// single transaction so a failed profile insert rolls the account back.
func (r *IdentityGormRepository) CreateCustomerAccount(
	ctx context.Context,
	account *models.Account,
	profile *models.CustomerProfile,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		profile.AccountID = account.ID
		return tx.Create(profile).Error
	})
}

func (r *IdentityGormRepository) CreateCompanyAccount(
	ctx context.Context,
	account *models.Account,
	profile *models.CompanyProfile,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		profile.AccountID = account.ID
		return tx.Create(profile).Error
	})
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *IdentityGormRepository) GetCustomerByAccountID(
	ctx context.Context,
	accountID uint,
) (*models.CustomerProfile, error) {

	var profile models.CustomerProfile
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *IdentityGormRepository) GetCompanyByAccountID(
	ctx context.Context,
	accountID uint,
) (*models.CompanyProfile, error) {

	var profile models.CompanyProfile
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
