package models

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Setting represents a system setting
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key" validate:"required,min=1,max=255"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:50;not null" json:"type" validate:"required"` // string, boolean, integer, float
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppSettings represents the application settings structure
type AppSettings struct {
	AppTitle              string `json:"app_title" validate:"required,min=1,max=255"`
	WidgetEnabled         bool   `json:"widget_enabled"`
	ProductCacheTTLSecs   int    `json:"product_cache_ttl_seconds" validate:"gte=0"`
	UnknownProductLabel   string `json:"unknown_product_label" validate:"required"`
	StorefrontProxyPrefix string `json:"storefront_proxy_prefix" validate:"required"`
	mu                    sync.RWMutex
}

// Global settings instance
var (
	appSettings *AppSettings
	settingsMu  sync.RWMutex
)

// GetAppSettings returns the current application settings
func GetAppSettings() *AppSettings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return appSettings
}

// LoadSettings loads settings from database into memory
func LoadSettings(db *gorm.DB) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	// Initialize with defaults
	appSettings = &AppSettings{
		AppTitle:              "SubStack",
		WidgetEnabled:         true,
		ProductCacheTTLSecs:   60,
		UnknownProductLabel:   "Unknown Product",
		StorefrontProxyPrefix: "/proxy",
	}

	// Load settings from database
	var settings []Setting
	if err := db.Find(&settings).Error; err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Apply loaded settings
	for _, setting := range settings {
		switch setting.Key {
		case "app_title":
			appSettings.AppTitle = setting.Value
		case "widget_enabled":
			appSettings.WidgetEnabled = setting.Value == "true"
		case "product_cache_ttl_seconds":
			var ttl int
			if _, err := fmt.Sscanf(setting.Value, "%d", &ttl); err == nil && ttl >= 0 {
				appSettings.ProductCacheTTLSecs = ttl
			}
		case "unknown_product_label":
			if setting.Value != "" {
				appSettings.UnknownProductLabel = setting.Value
			}
		case "storefront_proxy_prefix":
			if setting.Value != "" {
				appSettings.StorefrontProxyPrefix = setting.Value
			}
		}
	}

	return nil
}

// SaveSettings saves current settings to database
func SaveSettings(db *gorm.DB, settings *AppSettings) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	// Validate settings
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Convert settings to database format
	settingsMap := map[string]interface{}{
		"app_title":                 settings.AppTitle,
		"widget_enabled":            fmt.Sprintf("%t", settings.WidgetEnabled),
		"product_cache_ttl_seconds": fmt.Sprintf("%d", settings.ProductCacheTTLSecs),
		"unknown_product_label":     settings.UnknownProductLabel,
		"storefront_proxy_prefix":   settings.StorefrontProxyPrefix,
	}

	// Save each setting
	for key, value := range settingsMap {
		var setting Setting
		result := db.Where("setting_key = ?", key).First(&setting)

		if result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				// Create new setting
				setting = Setting{
					Key:   key,
					Value: fmt.Sprintf("%v", value),
					Type:  getSettingType(key),
				}
				if err := db.Create(&setting).Error; err != nil {
					return fmt.Errorf("failed to create setting %s: %w", key, err)
				}
			} else {
				return fmt.Errorf("failed to query setting %s: %w", key, result.Error)
			}
		} else {
			// Update existing setting
			setting.Value = fmt.Sprintf("%v", value)
			if err := db.Save(&setting).Error; err != nil {
				return fmt.Errorf("failed to update setting %s: %w", key, err)
			}
		}
	}

	// Update global settings
	appSettings = settings
	return nil
}

// getSettingType returns the type of a setting based on its key
func getSettingType(key string) string {
	switch key {
	case "widget_enabled":
		return "boolean"
	case "product_cache_ttl_seconds":
		return "integer"
	default:
		return "string"
	}
}

// Validate validates the settings
func (s *AppSettings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// ToJSON converts settings to JSON
func (s *AppSettings) ToJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s)
}

// FromJSON loads settings from JSON
func (s *AppSettings) FromJSON(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Unmarshal(data, s)
}

// IsWidgetEnabled returns whether the storefront widget endpoints are served
func (s *AppSettings) IsWidgetEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.WidgetEnabled
}

// GetUnknownProductLabel returns the sentinel name used when a product lookup fails
func (s *AppSettings) GetUnknownProductLabel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.UnknownProductLabel
}

// GetProductCacheTTL returns the TTL for cached product resolutions
func (s *AppSettings) GetProductCacheTTL() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Duration(s.ProductCacheTTLSecs) * time.Second
}
