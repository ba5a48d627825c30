package entity

// Warehouse bodega. El stock por producto vive en warehouse_inventory.
type Warehouse struct {
	ID       int64
	Name     string
	Location string
	Capacity int64
}
