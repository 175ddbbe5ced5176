package inventory

import (
	"context"
	"errors"
	"fmt"

	"warehouse-service/internal/model"
	"warehouse-service/internal/store"
)

// Engine is the single authority through which every quantity change flows.
// Each mutating operation applies its item update, category update and
// transaction record inside one storage transaction, so a failure at any
// step leaves no partial state.
type Engine struct {
	store store.Store
}

// NewEngine creates an engine on top of the given store.
func NewEngine(s store.Store) *Engine {
	return &Engine{store: s}
}

// ReceiveRequest describes a receive movement. Exactly one mode must be
// used: ItemID for restocking an existing item, or CategoryID plus ItemName
// for creating a new item in a compartment.
type ReceiveRequest struct {
	ItemID     uint   `json:"item_id"`
	CategoryID uint   `json:"category_id"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
}

// SendItems removes quantity units from an item's stock, mirrors the change
// on the owning compartment and records a SEND transaction.
func (e *Engine) SendItems(ctx context.Context, itemID uint, quantity int) (*MovementResult, error) {
	var result *MovementResult

	err := e.store.WithinTx(ctx, func(tx store.Store) error {
		item, err := tx.GetItem(ctx, itemID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemNotFound
		}
		if err != nil {
			return storageFailure("sending items", err)
		}

		if quantity <= 0 {
			return fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidInput)
		}
		if item.CurrentQuantity < quantity {
			return &InsufficientStockError{Available: item.CurrentQuantity}
		}

		category, err := tx.GetCategory(ctx, item.CategoryID)
		if err != nil {
			return storageFailure("sending items", err)
		}

		txn := &model.Transaction{ItemID: item.ID, Quantity: quantity, Type: model.MovementSend}
		if err := e.applyMovement(ctx, tx, item, -quantity, txn); err != nil {
			return err
		}

		result = &MovementResult{Item: newItemView(item, category.Name), Transaction: *txn}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReceiveItems adds stock to an existing item or creates and stocks a new
// item, mirrors the change on the compartment and records a RECEIVE
// transaction.
func (e *Engine) ReceiveItems(ctx context.Context, req ReceiveRequest) (*MovementResult, error) {
	var result *MovementResult

	err := e.store.WithinTx(ctx, func(tx store.Store) error {
		if req.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidInput)
		}

		item, categoryName, err := e.resolveReceiveTarget(ctx, tx, req)
		if err != nil {
			return err
		}

		txn := &model.Transaction{ItemID: item.ID, Quantity: req.Quantity, Type: model.MovementReceive}
		if err := e.applyMovement(ctx, tx, item, req.Quantity, txn); err != nil {
			return err
		}

		result = &MovementResult{Item: newItemView(item, categoryName), Transaction: *txn}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveReceiveTarget validates the receive request and returns the item
// the movement applies to, creating it first in new-item mode.
func (e *Engine) resolveReceiveTarget(ctx context.Context, tx store.Store, req ReceiveRequest) (*model.Item, string, error) {
	switch {
	case req.ItemID != 0:
		item, err := tx.GetItem(ctx, req.ItemID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrItemNotFound
		}
		if err != nil {
			return nil, "", storageFailure("receiving items", err)
		}

		if item.AvailableSpace() < req.Quantity {
			return nil, "", &CapacityExceededError{Scope: CapacityScopeItem, Available: item.AvailableSpace()}
		}

		category, err := tx.GetCategory(ctx, item.CategoryID)
		if err != nil {
			return nil, "", storageFailure("receiving items", err)
		}
		if category.AvailableSpace() < req.Quantity {
			return nil, "", &CapacityExceededError{Scope: CapacityScopeCompartment, Available: category.AvailableSpace()}
		}
		return item, category.Name, nil

	case req.CategoryID != 0 && req.ItemName != "":
		category, err := tx.GetCategory(ctx, req.CategoryID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrCategoryNotFound
		}
		if err != nil {
			return nil, "", storageFailure("receiving items", err)
		}

		if category.AvailableSpace() < req.Quantity {
			return nil, "", &CapacityExceededError{Scope: CapacityScopeCompartment, Available: category.AvailableSpace()}
		}
		if req.Quantity > model.DefaultItemMaxQuantity {
			return nil, "", fmt.Errorf("%w: cannot receive more than %d units for a new item",
				ErrInvalidInput, model.DefaultItemMaxQuantity)
		}

		item := &model.Item{
			Name:        req.ItemName,
			CategoryID:  category.ID,
			MaxQuantity: model.DefaultItemMaxQuantity,
		}
		if err := tx.InsertItem(ctx, item); err != nil {
			return nil, "", storageFailure("creating item", err)
		}
		return item, category.Name, nil

	default:
		return nil, "", fmt.Errorf("%w: either item_id or both category_id and item_name are required",
			ErrInvalidInput)
	}
}

// applyMovement performs the three-way write for a movement: the item
// quantity change, the mirrored compartment capacity change and the
// transaction record. Must be called inside a store transaction. The item's
// in-memory quantity is updated to the post-state on success.
func (e *Engine) applyMovement(ctx context.Context, tx store.Store, item *model.Item, delta int, txn *model.Transaction) error {
	if err := tx.UpdateItemQuantity(ctx, item.ID, delta); err != nil {
		return storageFailure("updating item quantity", err)
	}
	if err := tx.UpdateCategoryCapacity(ctx, item.CategoryID, delta); err != nil {
		return storageFailure("updating compartment capacity", err)
	}
	if err := tx.InsertTransaction(ctx, txn); err != nil {
		return storageFailure("recording transaction", err)
	}
	item.CurrentQuantity += delta
	return nil
}

// CreateItem creates an item in a compartment. When initialQuantity is
// positive the compartment capacity is raised by the same amount and the
// initial stock is recorded as a RECEIVE transaction. A maxQuantity of zero
// selects the default ceiling.
func (e *Engine) CreateItem(ctx context.Context, name string, categoryID uint, maxQuantity, initialQuantity int) (*ItemView, error) {
	if name == "" || categoryID == 0 {
		return nil, fmt.Errorf("%w: name and category_id are required", ErrInvalidInput)
	}
	if maxQuantity == 0 {
		maxQuantity = model.DefaultItemMaxQuantity
	}
	if maxQuantity < 0 {
		return nil, fmt.Errorf("%w: max_quantity must be a positive integer", ErrInvalidInput)
	}
	if initialQuantity < 0 {
		return nil, fmt.Errorf("%w: initial_quantity cannot be negative", ErrInvalidInput)
	}
	if initialQuantity > maxQuantity {
		return nil, fmt.Errorf("%w: initial_quantity %d exceeds max_quantity %d",
			ErrInvalidInput, initialQuantity, maxQuantity)
	}

	var result *ItemView

	err := e.store.WithinTx(ctx, func(tx store.Store) error {
		category, err := tx.GetCategory(ctx, categoryID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		if err != nil {
			return storageFailure("creating item", err)
		}
		if initialQuantity > 0 && category.AvailableSpace() < initialQuantity {
			return &CapacityExceededError{Scope: CapacityScopeCompartment, Available: category.AvailableSpace()}
		}

		item := &model.Item{
			Name:            name,
			CategoryID:      category.ID,
			MaxQuantity:     maxQuantity,
			CurrentQuantity: initialQuantity,
		}
		if err := tx.InsertItem(ctx, item); err != nil {
			return storageFailure("creating item", err)
		}

		if initialQuantity > 0 {
			if err := tx.UpdateCategoryCapacity(ctx, category.ID, initialQuantity); err != nil {
				return storageFailure("updating compartment capacity", err)
			}
			txn := &model.Transaction{ItemID: item.ID, Quantity: initialQuantity, Type: model.MovementReceive}
			if err := tx.InsertTransaction(ctx, txn); err != nil {
				return storageFailure("recording transaction", err)
			}
		}

		view := newItemView(item, category.Name)
		result = &view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteItem removes an item, retracting any remaining stock from the owning
// compartment first. The returned snapshot carries the pre-deletion values.
// Deletion is a structural removal, not a movement, so no transaction is
// recorded.
func (e *Engine) DeleteItem(ctx context.Context, id uint) (*ItemView, error) {
	var result *ItemView

	err := e.store.WithinTx(ctx, func(tx store.Store) error {
		item, err := tx.GetItem(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemNotFound
		}
		if err != nil {
			return storageFailure("deleting item", err)
		}

		// The conditional write re-checks the quantity read above and locks
		// the row, so a movement committed in between surfaces as a conflict
		// instead of leaving the compartment counter out of step.
		if err := tx.ZeroItemQuantity(ctx, item.ID, item.CurrentQuantity); err != nil {
			return storageFailure("clearing item stock", err)
		}
		if item.CurrentQuantity > 0 {
			if err := tx.UpdateCategoryCapacity(ctx, item.CategoryID, -item.CurrentQuantity); err != nil {
				return storageFailure("retracting compartment capacity", err)
			}
		}
		if err := tx.DeleteItem(ctx, item.ID); err != nil {
			return storageFailure("deleting item", err)
		}

		view := newItemView(item, "")
		result = &view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListCompartments returns every compartment with utilization figures and
// its items, ordered by compartment name.
func (e *Engine) ListCompartments(ctx context.Context) ([]CompartmentView, error) {
	categories, err := e.store.ListCategories(ctx)
	if err != nil {
		return nil, storageFailure("listing compartments", err)
	}
	items, err := e.store.ListItems(ctx)
	if err != nil {
		return nil, storageFailure("listing compartments", err)
	}

	itemsByCategory := make(map[uint][]ItemView, len(categories))
	for i := range items {
		item := &items[i]
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID],
			newItemView(&item.Item, ""))
	}

	views := make([]CompartmentView, 0, len(categories))
	for i := range categories {
		category := &categories[i]
		views = append(views, newCompartmentView(category, itemsByCategory[category.ID]))
	}
	return views, nil
}

// ListItems returns all items with their compartment names, ordered by item
// name.
func (e *Engine) ListItems(ctx context.Context) ([]ItemView, error) {
	items, err := e.store.ListItems(ctx)
	if err != nil {
		return nil, storageFailure("listing items", err)
	}

	views := make([]ItemView, 0, len(items))
	for i := range items {
		item := &items[i]
		views = append(views, newItemView(&item.Item, item.CategoryName))
	}
	return views, nil
}

// ListTransactions returns the full movement history, most recent first.
func (e *Engine) ListTransactions(ctx context.Context) ([]model.TransactionWithNames, error) {
	transactions, err := e.store.ListTransactions(ctx)
	if err != nil {
		return nil, storageFailure("listing transactions", err)
	}
	return transactions, nil
}
