package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo vista de solo lectura sobre pedidos, facturas y despachos.
type OrderRepo struct {
	db *Provider
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(db *Provider) *OrderRepo {
	return &OrderRepo{db: db}
}

// List devuelve los pedidos con nombre de cliente y datos de factura,
// ordenados por fecha descendente.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.OrderSummary, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	rows, err := sess.Conn().Query(ctx, `
		SELECT o.id, o.order_date, o.status, c.name AS customer_name,
		       i.amount, i.status AS invoice_status
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		LEFT JOIN invoices i ON o.id = i.order_id
		ORDER BY o.order_date DESC`)
	if err != nil {
		return nil, classifyQueryError("list orders", err)
	}
	defer rows.Close()
	var list []*entity.OrderSummary
	for rows.Next() {
		var o entity.OrderSummary
		if err := rows.Scan(&o.ID, &o.Date, &o.Status, &o.CustomerName, &o.Amount, &o.InvoiceStatus); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// GetDetail compone el detalle de un pedido con tres consultas sobre la misma
// sesión: cabecera (pedido + cliente + factura), líneas y despachos. Si la
// cabecera no existe devuelve (nil, nil) sin ejecutar el resto; la primera
// falla aborta las consultas restantes. No hay transacción entre las tres
// sentencias: una lectura intercalada con escrituras concurrentes es aceptada.
func (r *OrderRepo) GetDetail(ctx context.Context, orderID int64) (*entity.OrderView, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	var view entity.OrderView
	err = sess.Conn().QueryRow(ctx, `
		SELECT o.id, o.customer_id, o.order_date, o.status,
		       c.name AS customer_name, c.address AS customer_address, c.contact AS customer_contact,
		       i.id AS invoice_id, i.amount, i.due_date, i.status AS invoice_status
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		LEFT JOIN invoices i ON o.id = i.order_id
		WHERE o.id = $1`, orderID).
		Scan(&view.Order.ID, &view.Order.CustomerID, &view.Order.Date, &view.Order.Status,
			&view.Order.CustomerName, &view.Order.CustomerAddress, &view.Order.CustomerContact,
			&view.Order.InvoiceID, &view.Order.Amount, &view.Order.DueDate, &view.Order.InvoiceStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order header: %w", err)
	}

	itemRows, err := sess.Conn().Query(ctx, `
		SELECT oi.quantity, p.id, p.name, p.sku
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1`, orderID)
	if err != nil {
		return nil, classifyQueryError("list order items", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.OrderItem
		if err := itemRows.Scan(&it.Quantity, &it.ProductID, &it.Name, &it.SKU); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		view.Items = append(view.Items, it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("order items rows: %w", err)
	}

	shipRows, err := sess.Conn().Query(ctx, `
		SELECT s.id, s.order_id, s.vehicle_id, s.destination,
		       s.departure_date, s.arrival_date, s.status,
		       v.type AS vehicle_type, v.license_plate
		FROM shipments s
		LEFT JOIN vehicles v ON s.vehicle_id = v.id
		WHERE s.order_id = $1`, orderID)
	if err != nil {
		return nil, classifyQueryError("list shipments", err)
	}
	defer shipRows.Close()
	for shipRows.Next() {
		var sh entity.Shipment
		if err := shipRows.Scan(&sh.ID, &sh.OrderID, &sh.VehicleID, &sh.Destination,
			&sh.DepartureDate, &sh.ArrivalDate, &sh.Status, &sh.VehicleType, &sh.LicensePlate); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		view.Shipments = append(view.Shipments, sh)
	}
	return &view, shipRows.Err()
}
