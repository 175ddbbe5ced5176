package inventory

import (
	"warehouse-service/internal/model"
)

// ItemView is an item snapshot decorated with its remaining space, as
// returned to callers.
type ItemView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	CategoryID      uint   `json:"category_id"`
	CategoryName    string `json:"category_name,omitempty"`
	MaxQuantity     int    `json:"max_quantity"`
	CurrentQuantity int    `json:"current_quantity"`
	AvailableSpace  int    `json:"available_space"`
}

// CompartmentView is a compartment decorated with utilization figures and
// its items.
type CompartmentView struct {
	ID                    uint       `json:"id"`
	Name                  string     `json:"name"`
	MaxCapacity           int        `json:"max_capacity"`
	CurrentCapacity       int        `json:"current_capacity"`
	AvailableSpace        int        `json:"available_space"`
	UtilizationPercentage int        `json:"utilization_percentage"`
	Items                 []ItemView `json:"items"`
}

// MovementResult is the post-state of a successful send or receive: the
// updated item and the transaction that recorded the movement.
type MovementResult struct {
	Item        ItemView          `json:"item"`
	Transaction model.Transaction `json:"transaction"`
}

func newItemView(item *model.Item, categoryName string) ItemView {
	return ItemView{
		ID:              item.ID,
		Name:            item.Name,
		CategoryID:      item.CategoryID,
		CategoryName:    categoryName,
		MaxQuantity:     item.MaxQuantity,
		CurrentQuantity: item.CurrentQuantity,
		AvailableSpace:  item.AvailableSpace(),
	}
}

func newCompartmentView(category *model.Category, items []ItemView) CompartmentView {
	return CompartmentView{
		ID:                    category.ID,
		Name:                  category.Name,
		MaxCapacity:           category.MaxCapacity,
		CurrentCapacity:       category.CurrentCapacity,
		AvailableSpace:        category.AvailableSpace(),
		UtilizationPercentage: category.UtilizationPercentage(),
		Items:                 items,
	}
}
