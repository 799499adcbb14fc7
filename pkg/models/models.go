package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is the base model for all persisted entities
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty" swaggerignore:"true"`
}

// BeforeCreate hook to generate UUID if not set
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// SaleStatusCompleted is the only status counted by the analytics queries
const SaleStatusCompleted = "COMPLETED"

// Sale represents a single restaurant order
type Sale struct {
	BaseModel
	TotalAmount    string `gorm:"type:numeric;not null" json:"total_amount" validate:"required"`
	SaleStatusDesc string `gorm:"index;not null" json:"sale_status_desc"`
	ChannelDesc    string `json:"channel_desc"` // delivery, counter, table
}

// Product represents a menu item
type Product struct {
	BaseModel
	Name        string `gorm:"not null" json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `gorm:"type:numeric;not null" json:"price"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

// ProductSale is a line item linking a product to a sale
type ProductSale struct {
	BaseModel
	SaleID     uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"sale_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:RESTRICT" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	TotalPrice string    `gorm:"type:numeric;not null" json:"total_price"`
}

// GetAllModels returns all models for AutoMigrate
func GetAllModels() []interface{} {
	return []interface{}{
		&Product{},
		&Sale{},
		&ProductSale{},
	}
}
