package dto

import "time"

// InventoryItemRequest payload for stock item create/edit.
type InventoryItemRequest struct {
	SKU             string  `json:"sku"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	Quantity        int     `json:"quantity"`
	MinQuantity     *int    `json:"min_quantity"`
	PurchasePrice   float64 `json:"purchase_price"`
	SellingPrice    float64 `json:"selling_price"`
	SupplierName    *string `json:"supplier_name"`
	SupplierContact *string `json:"supplier_contact"`
}

// InventoryItemResponse is the persisted stock item shape.
type InventoryItemResponse struct {
	ID              string    `json:"id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	Quantity        int       `json:"quantity"`
	MinQuantity     *int      `json:"min_quantity"`
	PurchasePrice   float64   `json:"purchase_price"`
	SellingPrice    float64   `json:"selling_price"`
	SupplierName    *string   `json:"supplier_name"`
	SupplierContact *string   `json:"supplier_contact"`
	LowStock        bool      `json:"low_stock"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
