package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// MerchantSettings holds the contact details a merchant submits from the
// admin settings page.
type MerchantSettings struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150)" json:"name" validate:"required,min=1,max=150"`
	Email     string    `gorm:"type:varchar(200)" json:"email" validate:"required,email,max=200"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the MerchantSettings model
func (MerchantSettings) TableName() string {
	return "merchant_settings"
}

func (m *MerchantSettings) Validate() error {
	v := validator.New()

	return v.Struct(m)
}
