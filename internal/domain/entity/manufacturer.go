package entity

// Manufacturer fabricante de productos.
type Manufacturer struct {
	ID      int64
	Name    string
	Contact string
	Address string
}

// ManufacturerOption par ID/nombre para poblar el select de los formularios de producto.
type ManufacturerOption struct {
	ID   int64
	Name string
}
