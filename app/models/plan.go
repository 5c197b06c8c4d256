package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ADJUSTMENT_PERCENTAGE = "percentage"
	ADJUSTMENT_AMOUNT     = "amount"
	ADJUSTMENT_FLAT       = "flat"
)

// PriceAdjustment is a discount rule attached to a selling plan.
type PriceAdjustment struct {
	AdjustmentType string  `json:"adjustment_type" validate:"required,oneof=percentage amount flat"`
	Value          float64 `json:"value"`
}

// DeliveryPolicy is the recurrence rule for a selling plan.
type DeliveryPolicy struct {
	Interval      string `json:"interval" validate:"required"`
	IntervalCount int    `json:"interval_count" validate:"required,gt=0"`
}

// SellingPlan is one purchasable cadence/discount combination within a Plan.
// Order is significant: the first entry drives the derived summary fields.
type SellingPlan struct {
	Name             string            `json:"name" validate:"required"`
	PriceAdjustments []PriceAdjustment `json:"price_adjustments" validate:"required,min=1,dive"`
	DeliveryPolicy   DeliveryPolicy    `json:"delivery_policy" validate:"required"`
}

// SellingPlans is stored as a JSON column so a Plan stays one atomic row
type SellingPlans []SellingPlan

// Value implements the driver.Valuer interface
func (s SellingPlans) Value() (driver.Value, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (s *SellingPlans) Scan(value interface{}) error {
	if value == nil {
		*s = SellingPlans{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("invalid scan source")
	}
	return json.Unmarshal(bytes, s)
}

// ProductIDs holds opaque product identifier strings from the shop catalog.
// References are not enforced; a product may be deleted upstream at any time.
type ProductIDs []string

// Value implements the driver.Valuer interface
func (p ProductIDs) Value() (driver.Value, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (p *ProductIDs) Scan(value interface{}) error {
	if value == nil {
		*p = ProductIDs{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("invalid scan source")
	}
	return json.Unmarshal(bytes, p)
}

// Plan is a persisted selling plan group: one subscription offer covering a
// set of products with one or more selling plans.
type Plan struct {
	ID           uint64       `gorm:"primaryKey" json:"-"`
	UUID         string       `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	SellingPlans SellingPlans `gorm:"type:json" json:"selling_plans" validate:"required,min=1,dive"`
	Products     ProductIDs   `gorm:"type:json" json:"products"`
	ViewCount    uint64       `gorm:"default:0" json:"view_count"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Plan model
func (Plan) TableName() string {
	return "plans"
}

// BeforeCreate assigns the public identifier
func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

func (p *Plan) Validate() error {
	v := validator.New()

	return v.Struct(p)
}
