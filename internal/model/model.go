package model

import (
	"time"
)

// MovementType identifies the direction of a stock movement.
type MovementType string

const (
	MovementSend    MovementType = "SEND"
	MovementReceive MovementType = "RECEIVE"
)

// DefaultItemMaxQuantity is the capacity ceiling applied to items created
// without an explicit ceiling, and the hard limit for items created through
// the new-item receive flow.
const DefaultItemMaxQuantity = 100

// Category represents a storage compartment with a capacity ceiling.
// CurrentCapacity is the sum of the current quantities of all items in the
// compartment and is mutated only through the inventory engine.
type Category struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	Name            string    `json:"name" gorm:"type:varchar(100);not null;unique"`
	MaxCapacity     int       `json:"max_capacity" gorm:"not null"`
	CurrentCapacity int       `json:"current_capacity" gorm:"not null;default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AvailableSpace returns the remaining capacity of the compartment.
func (c *Category) AvailableSpace() int {
	return c.MaxCapacity - c.CurrentCapacity
}

// UtilizationPercentage returns how full the compartment is, rounded to the
// nearest whole percent.
func (c *Category) UtilizationPercentage() int {
	if c.MaxCapacity == 0 {
		return 0
	}
	return int(float64(c.CurrentCapacity)/float64(c.MaxCapacity)*100 + 0.5)
}

// Item represents a stock-keeping unit belonging to exactly one category.
type Item struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	Name            string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_items_category_name"`
	CategoryID      uint      `json:"category_id" gorm:"not null;uniqueIndex:idx_items_category_name"`
	MaxQuantity     int       `json:"max_quantity" gorm:"not null;default:100"`
	CurrentQuantity int       `json:"current_quantity" gorm:"not null;default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AvailableSpace returns how many more units the item can hold.
func (i *Item) AvailableSpace() int {
	return i.MaxQuantity - i.CurrentQuantity
}

// Transaction is an immutable record of a single stock movement. Rows are
// only ever inserted; the item reference is not required to resolve after
// the item is deleted.
type Transaction struct {
	ID        uint         `json:"id" gorm:"primarykey"`
	ItemID    uint         `json:"item_id" gorm:"not null;index"`
	Quantity  int          `json:"quantity" gorm:"not null"`
	Type      MovementType `json:"type" gorm:"type:varchar(10);not null"`
	CreatedAt time.Time    `json:"created_at"`
}

// ItemWithCategory is an item row joined with its owning category's name.
type ItemWithCategory struct {
	Item
	CategoryName string `json:"category_name"`
}

// TransactionWithNames is a transaction row joined with the item and
// category names, empty when the item has since been deleted.
type TransactionWithNames struct {
	Transaction
	ItemName     string `json:"item_name"`
	CategoryName string `json:"category_name"`
}
