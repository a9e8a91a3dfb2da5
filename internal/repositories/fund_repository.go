package repositories

import (
	"errors"
	"fmt"

	"parish-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFundNotFound = errors.New("fund not found")
)

// fundRepository implements FundRepositoryInterface
type fundRepository struct {
	db *gorm.DB
}

// NewFundRepository creates a new fund repository
func NewFundRepository(db *gorm.DB) FundRepositoryInterface {
	return &fundRepository{
		db: db,
	}
}

// Create creates a new fund
func (r *fundRepository) Create(fund *models.Fund) error {
	if err := r.db.Create(fund).Error; err != nil {
		return fmt.Errorf("failed to create fund: %w", err)
	}
	return nil
}

// GetByID retrieves a fund by ID
func (r *fundRepository) GetByID(id uuid.UUID) (*models.Fund, error) {
	fund := &models.Fund{ID: id}
	if err := r.db.First(fund).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFundNotFound
		}
		return nil, fmt.Errorf("failed to get fund: %w", err)
	}
	return fund, nil
}

// GetByCode retrieves a fund by its code
func (r *fundRepository) GetByCode(code string) (*models.Fund, error) {
	var fund models.Fund
	if err := r.db.Where("code = ?", code).First(&fund).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFundNotFound
		}
		return nil, fmt.Errorf("failed to get fund by code: %w", err)
	}
	return &fund, nil
}

// GetAll retrieves funds with pagination
func (r *fundRepository) GetAll(offset, limit int) ([]models.Fund, int64, error) {
	var funds []models.Fund
	var total int64

	if err := r.db.Model(&models.Fund{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count funds: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("code ASC").
		Find(&funds).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get funds: %w", err)
	}

	return funds, total, nil
}

// Update updates an existing fund
func (r *fundRepository) Update(fund *models.Fund) error {
	result := r.db.Save(fund)
	if result.Error != nil {
		return fmt.Errorf("failed to update fund: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFundNotFound
	}
	return nil
}

// CheckCodeExists checks whether a fund with the given code already exists
func (r *fundRepository) CheckCodeExists(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Fund{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check fund code: %w", err)
	}
	return count > 0, nil
}
