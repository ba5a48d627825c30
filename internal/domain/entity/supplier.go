package entity

// Supplier proveedor; se relaciona con fabricantes vía manufacturer_suppliers.
type Supplier struct {
	ID      int64
	Name    string
	Contact string
	Address string
}
