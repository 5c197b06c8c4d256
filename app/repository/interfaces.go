package repository

import (
	"github.com/ranjeetgautam/SubStack/app/models"
	"gorm.io/gorm"
)

// PlanRepository defines the interface for plan-related database operations
type PlanRepository interface {
	Create(plan *models.Plan) error
	GetByUUID(uuid string) (*models.Plan, error)
	GetAll() ([]models.Plan, error)
	GetByProductID(productID string) ([]models.Plan, error)
	Update(plan *models.Plan) error
	Delete(uuid string) error
	Count() (int64, error)
}

// SettingRepository defines the interface for application settings
type SettingRepository interface {
	Get() (*models.AppSettings, error)
	Save(settings *models.AppSettings) error
	GetValue(key string) (string, error)
	SetValue(key, value string) error
	SaveMerchantSettings(settings *models.MerchantSettings) error
}

// ShopRepository defines the interface for installed-shop records
type ShopRepository interface {
	Upsert(shop *models.Shop) error
	GetByDomain(domain string) (*models.Shop, error)
	GetAll() ([]models.Shop, error)
	MarkUninstalled(domain string) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Plan    PlanRepository
	Setting SettingRepository
	Shop    ShopRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Plan:    NewPlanRepository(db),
		Setting: NewSettingRepository(db),
		Shop:    NewShopRepository(db),
	}
}
