package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/supplychain-console/internal/domain"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

var _ repository.ReportCatalog = (*ReportRepo)(nil)

// reportDef entrada del catálogo: clave estable, título visible y consulta.
type reportDef struct {
	Key   string
	Title string
	Query string
}

// reportCatalog catálogo fijo, en el orden del índice de reportes.
// Las consultas son solo lectura y sin parámetros.
var reportCatalog = []reportDef{
	{
		Key:   "top_customers",
		Title: "Top 5 Customers by Purchase Value",
		Query: `
			SELECT c.name, SUM(i.amount) AS total_spent
			FROM customers c
			JOIN orders o ON c.id = o.customer_id
			JOIN invoices i ON o.id = i.order_id
			WHERE i.status = 'Paid'
			GROUP BY c.name
			ORDER BY total_spent DESC
			LIMIT 5`,
	},
	{
		Key:   "low_stock",
		Title: "Low-Stock Products (Stock < 100)",
		Query: `
			SELECT p.name, w.name AS warehouse_name, wi.stock
			FROM warehouse_inventory wi
			JOIN products p ON wi.product_id = p.id
			JOIN warehouses w ON wi.warehouse_id = w.id
			WHERE wi.stock < 100
			ORDER BY wi.stock ASC`,
	},
	{
		Key:   "delayed_shipments",
		Title: "Delayed Shipments (En Route past Arrival Date)",
		Query: `
			SELECT s.id AS shipment_id, o.id AS order_id, s.destination,
			       s.departure_date, s.arrival_date
			FROM shipments s
			JOIN orders o ON s.order_id = o.id
			WHERE s.status = 'En Route' AND s.arrival_date < CURRENT_DATE`,
	},
	{
		Key:   "warehouse_revenue",
		Title: "Total Paid Revenue Per Warehouse",
		Query: `
			SELECT w.name AS warehouse_name, SUM(i.amount) AS total_revenue
			FROM invoices i
			JOIN orders o ON i.order_id = o.id
			JOIN order_items oi ON o.id = oi.order_id
			JOIN warehouse_inventory wi ON oi.product_id = wi.product_id
			JOIN warehouses w ON wi.warehouse_id = w.id
			WHERE i.status = 'Paid'
			GROUP BY w.name
			ORDER BY total_revenue DESC`,
	},
	{
		Key:   "overdue_invoices",
		Title: "Overdue Pending Invoices",
		Query: `
			SELECT id AS invoice_id, order_id, amount, due_date
			FROM invoices
			WHERE status = 'Pending' AND due_date < CURRENT_DATE
			ORDER BY due_date ASC`,
	},
	{
		Key:   "product_suppliers",
		Title: "All Products and Their Suppliers",
		Query: `
			SELECT p.name AS product_name, m.name AS manufacturer_name, s.name AS supplier_name
			FROM products p
			JOIN manufacturers m ON p.manufacturer_id = m.id
			JOIN manufacturer_suppliers ms ON m.id = ms.manufacturer_id
			JOIN suppliers s ON ms.supplier_id = s.id
			ORDER BY p.name`,
	},
	{
		Key:   "vehicle_usage",
		Title: "Vehicle Shipment Frequency",
		Query: `
			SELECT v.id AS vehicle_id, v.type, v.license_plate, COUNT(s.id) AS number_of_shipments
			FROM vehicles v
			LEFT JOIN shipments s ON v.id = s.vehicle_id
			GROUP BY v.id, v.type, v.license_plate
			ORDER BY number_of_shipments DESC`,
	},
	{
		Key:   "popular_products",
		Title: "Most Popular Products (by Quantity Ordered)",
		Query: `
			SELECT p.name, SUM(oi.quantity) AS total_quantity_ordered
			FROM order_items oi
			JOIN products p ON oi.product_id = p.id
			GROUP BY p.name
			ORDER BY total_quantity_ordered DESC`,
	},
	{
		Key:   "avg_ship_duration",
		Title: "Average Shipment Duration",
		Query: `
			SELECT AVG(arrival_date - departure_date) AS average_shipping_days
			FROM shipments
			WHERE arrival_date IS NOT NULL AND departure_date IS NOT NULL`,
	},
	{
		Key:   "manufacturer_products",
		Title: "Product Count by Manufacturer",
		Query: `
			SELECT m.name, COUNT(p.id) AS number_of_products
			FROM manufacturers m
			JOIN products p ON m.id = p.manufacturer_id
			GROUP BY m.name
			ORDER BY number_of_products DESC`,
	},
}

// ReportRepo ejecuta el catálogo fijo de reportes analíticos.
type ReportRepo struct {
	db *Provider
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(db *Provider) *ReportRepo {
	return &ReportRepo{db: db}
}

// List devuelve el índice de reportes en orden estable.
func (r *ReportRepo) List() []repository.ReportInfo {
	infos := make([]repository.ReportInfo, 0, len(reportCatalog))
	for _, def := range reportCatalog {
		infos = append(infos, repository.ReportInfo{Key: def.Key, Title: def.Title})
	}
	return infos
}

// Run ejecuta el reporte identificado por key. Una clave desconocida devuelve
// domain.ErrUnknownReport sin abrir sesión. Los encabezados salen de los
// metadatos del result set; con cero filas la lista de encabezados queda vacía
// (comportamiento heredado que las plantillas asumen).
func (r *ReportRepo) Run(ctx context.Context, key string) (*repository.ReportResult, error) {
	def, ok := lookupReport(key)
	if !ok {
		return nil, domain.ErrUnknownReport
	}

	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	rows, err := sess.Conn().Query(ctx, def.Query)
	if err != nil {
		return nil, classifyQueryError("run report "+key, err)
	}
	defer rows.Close()

	headers, data, err := collectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", key, err)
	}

	if key == "avg_ship_duration" && len(data) > 0 && len(data[0]) > 0 {
		data[0][0] = formatAvgDays(data[0][0])
	}

	return &repository.ReportResult{Title: def.Title, Headers: headers, Rows: data}, nil
}

// collectRows extrae encabezados (de los metadatos del result set) y filas.
// Con cero filas la lista de encabezados queda vacía, igual que en la consola
// que este sistema reemplaza; las plantillas asumen ese contrato.
func collectRows(rows pgx.Rows) ([]string, [][]any, error) {
	fields := rows.FieldDescriptions()
	headers := make([]string, 0, len(fields))
	for _, f := range fields {
		headers = append(headers, f.Name)
	}

	var data [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, fmt.Errorf("read values: %w", err)
		}
		data = append(data, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(data) == 0 {
		headers = nil
	}
	return headers, data, nil
}

func lookupReport(key string) (reportDef, bool) {
	for _, def := range reportCatalog {
		if def.Key == key {
			return def, true
		}
	}
	return reportDef{}, false
}

// formatAvgDays convierte el promedio de días a texto con dos decimales y el
// sufijo " days". Un promedio NULL (sin despachos con ambas fechas) pasa intacto.
func formatAvgDays(v any) any {
	switch n := v.(type) {
	case decimal.Decimal:
		return n.StringFixed(2) + " days"
	case float64:
		return fmt.Sprintf("%.2f days", n)
	case int64:
		return fmt.Sprintf("%d.00 days", n)
	default:
		return v
	}
}
