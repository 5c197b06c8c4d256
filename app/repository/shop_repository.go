package repository

import (
	"time"

	"github.com/ranjeetgautam/SubStack/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shopRepository implements the ShopRepository interface
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository instance
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

// Upsert creates or refreshes the record for an installed shop
func (r *shopRepository) Upsert(shop *models.Shop) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "domain"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "scopes", "uninstalled_at"}),
	}).Create(shop).Error
}

// GetByDomain retrieves a shop by its myshopify domain
func (r *shopRepository) GetByDomain(domain string) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.Where("domain = ?", domain).First(&shop).Error
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// GetAll retrieves all shop records
func (r *shopRepository) GetAll() ([]models.Shop, error) {
	var shops []models.Shop
	err := r.db.Order("id ASC").Find(&shops).Error
	return shops, err
}

// MarkUninstalled flags a shop as uninstalled without deleting its row
func (r *shopRepository) MarkUninstalled(domain string) error {
	now := time.Now()
	result := r.db.Model(&models.Shop{}).Where("domain = ?", domain).
		Updates(map[string]any{"uninstalled_at": now, "access_token": ""})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
