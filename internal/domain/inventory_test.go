package domain

import "testing"

func TestInventoryItemLowStock(t *testing.T) {
	threshold := 5
	cases := []struct {
		name string
		item InventoryItem
		want bool
	}{
		{name: "below threshold", item: InventoryItem{Quantity: 2, MinQuantity: &threshold}, want: true},
		{name: "at threshold", item: InventoryItem{Quantity: 5, MinQuantity: &threshold}, want: true},
		{name: "above threshold", item: InventoryItem{Quantity: 6, MinQuantity: &threshold}, want: false},
		{name: "no threshold", item: InventoryItem{Quantity: 0}, want: false},
	}

	for _, tt := range cases {
		if got := tt.item.LowStock(); got != tt.want {
			t.Errorf("%s: LowStock() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
