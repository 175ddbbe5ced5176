package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"warehouse-service/internal/model"
)

// GormStore implements Store on top of a GORM database handle. The same type
// serves both the root connection and transaction scopes: WithinTx hands fn a
// GormStore bound to the transaction handle.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the schema for all inventory models.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&model.Category{}, &model.Item{}, &model.Transaction{}); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func (s *GormStore) WithinTx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// CreateCategory inserts a compartment. Compartments are only created at
// setup/seed time; all capacity changes afterwards go through the engine.
// Not part of the Store interface for that reason.
func (s *GormStore) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("inserting category %q: %w", category.Name, err)
	}
	return nil
}

func (s *GormStore) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category %d: %w", id, err)
	}
	return &category, nil
}

func (s *GormStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

func (s *GormStore) UpdateCategoryCapacity(ctx context.Context, id uint, delta int) error {
	result := s.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ? AND current_capacity + ? >= 0 AND current_capacity + ? <= max_capacity", id, delta, delta).
		Update("current_capacity", gorm.Expr("current_capacity + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("updating category %d capacity: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

func (s *GormStore) GetItem(ctx context.Context, id uint) (*model.Item, error) {
	var item model.Item
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item %d: %w", id, err)
	}
	return &item, nil
}

func (s *GormStore) ListItems(ctx context.Context) ([]model.ItemWithCategory, error) {
	var items []model.ItemWithCategory
	err := s.db.WithContext(ctx).Model(&model.Item{}).
		Select("items.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = items.category_id").
		Order("items.name").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

func (s *GormStore) InsertItem(ctx context.Context, item *model.Item) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("inserting item %q: %w", item.Name, err)
	}
	return nil
}

func (s *GormStore) UpdateItemQuantity(ctx context.Context, id uint, delta int) error {
	result := s.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ? AND current_quantity + ? >= 0 AND current_quantity + ? <= max_quantity", id, delta, delta).
		Update("current_quantity", gorm.Expr("current_quantity + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("updating item %d quantity: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

func (s *GormStore) ZeroItemQuantity(ctx context.Context, id uint, expected int) error {
	result := s.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ? AND current_quantity = ?", id, expected).
		Update("current_quantity", 0)
	if result.Error != nil {
		return fmt.Errorf("zeroing item %d quantity: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

func (s *GormStore) DeleteItem(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Item{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting item %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) InsertTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := s.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("inserting %s transaction for item %d: %w", txn.Type, txn.ItemID, err)
	}
	return nil
}

func (s *GormStore) ListTransactions(ctx context.Context) ([]model.TransactionWithNames, error) {
	var transactions []model.TransactionWithNames
	err := s.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("transactions.*, COALESCE(items.name, '') AS item_name, COALESCE(categories.name, '') AS category_name").
		Joins("LEFT JOIN items ON items.id = transactions.item_id").
		Joins("LEFT JOIN categories ON categories.id = items.category_id").
		Order("transactions.created_at DESC, transactions.id DESC").
		Scan(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return transactions, nil
}
