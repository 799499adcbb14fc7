package db

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"nola/pkg/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase creates a new database connection
func NewDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		os.Getenv("DB_TIMEZONE"),
	)

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate runs database migrations using GORM
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running GORM AutoMigrate...")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Printf("Warning: Could not create uuid-ossp extension: %v", err)
	}

	if err := db.AutoMigrate(models.GetAllModels()...); err != nil {
		return fmt.Errorf("failed to run GORM AutoMigrate: %w", err)
	}

	if err := createCustomIndexes(db); err != nil {
		log.Printf("Warning: Failed to create some custom indexes: %v", err)
	}

	return nil
}

// createCustomIndexes creates any custom indexes that GORM might not handle
func createCustomIndexes(db *gorm.DB) error {
	indexes := []string{
		// The analytics queries filter on status and window on created_at
		`CREATE INDEX IF NOT EXISTS idx_sales_status_created ON sales(sale_status_desc, created_at)`,

		// Line-item joins group by product
		`CREATE INDEX IF NOT EXISTS idx_product_sales_product ON product_sales(product_id)`,
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s - %v", idx, err)
		}
	}

	return nil
}

var demoMenu = []struct {
	name  string
	price float64
}{
	{"X-Burger Clássico", 28.90},
	{"X-Bacon Duplo", 36.50},
	{"Batata Frita Grande", 18.00},
	{"Milkshake de Chocolate", 16.90},
	{"Combo Família", 89.90},
	{"Refrigerante Lata", 6.50},
	{"Salada Caesar", 24.00},
	{"Pastel de Queijo", 9.90},
}

// SeedDemoData populates an empty database with six months of generated
// sales so the dashboard has something to show. Fixed seed, so amounts and
// volumes repeat across fresh databases; timestamps are relative to now.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Sale{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check sales count: %w", err)
	}

	if count > 0 {
		log.Printf("Sales table already has %d records, skipping demo seed", count)
		return nil
	}

	log.Println("Seeding demo sales data...")

	rng := rand.New(rand.NewSource(42))

	products := make([]models.Product, 0, len(demoMenu))
	for _, item := range demoMenu {
		products = append(products, models.Product{
			Name:     item.name,
			Price:    decimal.NewFromFloat(item.price).StringFixed(2),
			IsActive: true,
		})
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	statuses := []string{
		models.SaleStatusCompleted,
		models.SaleStatusCompleted,
		models.SaleStatusCompleted,
		models.SaleStatusCompleted,
		"CANCELLED",
	}
	channels := []string{"delivery", "counter", "table"}

	now := time.Now()
	for day := 0; day < 180; day++ {
		salesToday := 3 + rng.Intn(12)
		for i := 0; i < salesToday; i++ {
			// Orders cluster around lunch and dinner
			hour := 11 + rng.Intn(4)
			if rng.Intn(2) == 1 {
				hour = 18 + rng.Intn(5)
			}
			createdAt := now.AddDate(0, 0, -day).Truncate(24 * time.Hour).
				Add(time.Duration(hour)*time.Hour + time.Duration(rng.Intn(60))*time.Minute)

			sale := models.Sale{
				SaleStatusDesc: statuses[rng.Intn(len(statuses))],
				ChannelDesc:    channels[rng.Intn(len(channels))],
			}
			sale.CreatedAt = createdAt
			sale.UpdatedAt = createdAt

			total := decimal.Zero
			itemCount := 1 + rng.Intn(3)
			items := make([]models.ProductSale, 0, itemCount)
			for j := 0; j < itemCount; j++ {
				product := products[rng.Intn(len(products))]
				quantity := 1 + rng.Intn(3)
				price, err := decimal.NewFromString(product.Price)
				if err != nil {
					return fmt.Errorf("invalid seeded price %q: %w", product.Price, err)
				}
				lineTotal := price.Mul(decimal.NewFromInt(int64(quantity)))
				total = total.Add(lineTotal)
				items = append(items, models.ProductSale{
					ProductID:  product.ID,
					Quantity:   quantity,
					TotalPrice: lineTotal.StringFixed(2),
				})
			}
			sale.TotalAmount = total.StringFixed(2)

			if err := db.Create(&sale).Error; err != nil {
				return fmt.Errorf("failed to seed sale: %w", err)
			}
			for k := range items {
				items[k].SaleID = sale.ID
				items[k].CreatedAt = createdAt
				items[k].UpdatedAt = createdAt
			}
			if err := db.Create(&items).Error; err != nil {
				return fmt.Errorf("failed to seed sale items: %w", err)
			}
		}
	}

	log.Println("Demo sales data seeded successfully")
	return nil
}

// RunMigrations is the main migration function called from main.go
func RunMigrations(db *gorm.DB) error {
	log.Println("Starting database migrations...")

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := SeedDemoData(db); err != nil {
			return fmt.Errorf("demo data seeding failed: %w", err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}
