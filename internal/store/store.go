package store

import (
	"context"
	"errors"

	"warehouse-service/internal/model"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a guarded counter update matched no rows,
	// meaning a concurrent writer changed the counter or the adjustment would
	// break the counter's bounds.
	ErrConflict = errors.New("conflicting concurrent update")
)

// Store is the persistence capability set the inventory engine depends on.
// Implementations must make WithinTx provide all-or-nothing semantics for
// every write issued through the store it passes to fn.
type Store interface {
	// WithinTx runs fn inside a single storage transaction. If fn returns an
	// error the transaction is rolled back and the error is returned.
	WithinTx(ctx context.Context, fn func(Store) error) error

	GetCategory(ctx context.Context, id uint) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)

	// UpdateCategoryCapacity adjusts current_capacity by delta. The update is
	// conditional: it applies only while the result stays within
	// [0, max_capacity], and returns ErrConflict otherwise.
	UpdateCategoryCapacity(ctx context.Context, id uint, delta int) error

	GetItem(ctx context.Context, id uint) (*model.Item, error)
	ListItems(ctx context.Context) ([]model.ItemWithCategory, error)
	InsertItem(ctx context.Context, item *model.Item) error

	// UpdateItemQuantity adjusts current_quantity by delta with the same
	// conditional guard discipline as UpdateCategoryCapacity.
	UpdateItemQuantity(ctx context.Context, id uint, delta int) error

	// ZeroItemQuantity sets current_quantity to zero, conditional on the
	// current value matching expected. Returns ErrConflict when it does not.
	// The write locks the row, so the quantity cannot change again before
	// the enclosing transaction commits.
	ZeroItemQuantity(ctx context.Context, id uint, expected int) error
	DeleteItem(ctx context.Context, id uint) error

	InsertTransaction(ctx context.Context, txn *model.Transaction) error
	ListTransactions(ctx context.Context) ([]model.TransactionWithNames, error)
}
