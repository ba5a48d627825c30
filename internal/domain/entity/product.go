package entity

// Product producto o SKU del catálogo. ManufacturerID es opcional (NULL permitido).
// ManufacturerName solo se llena en lecturas con LEFT JOIN a Manufacturers.
type Product struct {
	ID               int64
	Name             string
	Description      string
	SKU              string
	ManufacturerID   *int64
	ManufacturerName *string
}
