package repository

import (
	"github.com/ranjeetgautam/SubStack/app/models"
	"gorm.io/gorm"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// Create persists a new plan document
func (r *planRepository) Create(plan *models.Plan) error {
	return r.db.Create(plan).Error
}

// GetByUUID retrieves a plan by its public identifier
func (r *planRepository) GetByUUID(uuid string) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.Where("uuid = ?", uuid).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetAll retrieves all plans in creation order
func (r *planRepository) GetAll() ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Order("id ASC").Find(&plans).Error
	return plans, err
}

// GetByProductID retrieves plans whose products array contains the given id
func (r *planRepository) GetByProductID(productID string) ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Where("JSON_CONTAINS(products, JSON_QUOTE(?))", productID).
		Order("id ASC").Find(&plans).Error
	return plans, err
}

// Update saves the full plan row (last writer wins)
func (r *planRepository) Update(plan *models.Plan) error {
	return r.db.Save(plan).Error
}

// Delete removes a plan permanently by its public identifier
func (r *planRepository) Delete(uuid string) error {
	result := r.db.Where("uuid = ?", uuid).Delete(&models.Plan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of plans
func (r *planRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Plan{}).Count(&count).Error
	return count, err
}
