package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSummary fila del listado de pedidos: pedido + nombre del cliente + factura.
// Los campos de cliente y factura son punteros porque ambos JOIN son LEFT.
type OrderSummary struct {
	ID            int64
	Date          time.Time
	Status        string
	CustomerName  *string
	Amount        *decimal.Decimal
	InvoiceStatus *string
}

// OrderDetail cabecera completa de un pedido: pedido + cliente + factura.
type OrderDetail struct {
	ID              int64
	CustomerID      *int64
	Date            time.Time
	Status          string
	CustomerName    *string
	CustomerAddress *string
	CustomerContact *string
	InvoiceID       *int64
	Amount          *decimal.Decimal
	DueDate         *time.Time
	InvoiceStatus   *string
}

// OrderItem línea de pedido con los datos del producto (JOIN interno a Products).
type OrderItem struct {
	Quantity  int64
	ProductID int64
	Name      string
	SKU       string
}

// OrderView detalle compuesto de un pedido: cabecera, líneas y despachos.
type OrderView struct {
	Order     OrderDetail
	Items     []OrderItem
	Shipments []Shipment
}
