package app

import (
	"nola/internal/repo"

	"gorm.io/gorm"
)

// Services holds all application services
type Services struct {
	DB            *gorm.DB
	AnalyticsRepo *repo.AnalyticsRepository
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) *Services {
	return &Services{
		DB:            db,
		AnalyticsRepo: repo.NewAnalyticsRepository(db),
	}
}
