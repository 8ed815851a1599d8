package domain

import "time"

// InventoryItem is a stocked part or accessory.
type InventoryItem struct {
	ID              string
	SKU             string
	Name            string
	Description     *string
	Quantity        int
	MinQuantity     *int
	PurchasePrice   float64
	SellingPrice    float64
	SupplierName    *string
	SupplierContact *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LowStock reports whether the item's quantity has fallen to or below its
// reorder threshold. Items without a threshold never report low.
func (i InventoryItem) LowStock() bool {
	if i.MinQuantity == nil {
		return false
	}
	return i.Quantity <= *i.MinQuantity
}

// InventoryDraft is a validated inventory record ready for persistence.
type InventoryDraft struct {
	SKU             string
	Name            string
	Description     *string
	Quantity        int
	MinQuantity     *int
	PurchasePrice   float64
	SellingPrice    float64
	SupplierName    *string
	SupplierContact *string
}
