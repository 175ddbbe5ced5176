package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"warehouse-service/internal/inventory"
	"warehouse-service/internal/logger"
	"warehouse-service/internal/metrics"
	"warehouse-service/internal/model"
	"warehouse-service/internal/store"
)

const seedCategoryCapacity = 500

type seedItem struct {
	name     string
	quantity int
}

var seedItems = map[string][]seedItem{
	"Electronics": {
		{"Laptop", 45},
		{"Smartphone", 75},
		{"Tablet", 30},
		{"Headphones", 50},
		{"Smartwatch", 40},
	},
	"Appliances": {
		{"Refrigerator", 15},
		{"Microwave", 25},
		{"Washing Machine", 10},
		{"Air Conditioner", 20},
		{"Vacuum Cleaner", 30},
	},
	"Furniture": {
		{"Office Chair", 20},
		{"Desk", 15},
		{"Bookshelf", 10},
		{"Sofa", 12},
		{"Coffee Table", 18},
	},
	"Clothing": {
		{"T-Shirts", 60},
		{"Jeans", 40},
		{"Jackets", 25},
		{"Dresses", 35},
		{"Sweaters", 45},
	},
	"Books": {
		{"Fiction", 80},
		{"Non-Fiction", 65},
		{"Technical", 50},
		{"Children", 70},
		{"Educational", 55},
	},
}

// Seed populates an empty database with the initial compartments and stock.
// Items are stocked through the engine so the initial quantities are
// mirrored on compartment capacities and recorded as RECEIVE transactions.
// A database that already has compartments is left untouched.
func Seed(ctx context.Context, s *store.GormStore, engine *inventory.Engine) error {
	defer metrics.TrackDBOperation("seed")(time.Now())
	log := logger.GetLogger()

	existing, err := s.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing categories: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Database already seeded, skipping", zap.Int("categories", len(existing)))
		return nil
	}

	log.Info("Seeding database")

	for name, items := range seedItems {
		category := model.Category{Name: name, MaxCapacity: seedCategoryCapacity}
		if err := s.CreateCategory(ctx, &category); err != nil {
			return fmt.Errorf("seeding category %q: %w", name, err)
		}

		for _, item := range items {
			if _, err := engine.CreateItem(ctx, item.name, category.ID,
				model.DefaultItemMaxQuantity, item.quantity); err != nil {
				return fmt.Errorf("seeding item %q: %w", item.name, err)
			}
		}
	}

	log.Info("Database seeded successfully", zap.Int("categories", len(seedItems)))
	return nil
}
