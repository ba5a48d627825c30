package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre una sesión por operación.
type ProductRepo struct {
	db *Provider
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *Provider) *ProductRepo {
	return &ProductRepo{db: db}
}

// List devuelve todos los productos con el nombre de su fabricante (NULL si no tiene),
// ordenados por nombre de producto.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	rows, err := sess.Conn().Query(ctx, `
		SELECT p.id, p.name, p.description, p.sku, p.manufacturer_id, m.name AS manufacturer_name
		FROM products p
		LEFT JOIN manufacturers m ON p.manufacturer_id = m.id
		ORDER BY p.name`)
	if err != nil {
		return nil, classifyQueryError("list products", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.ManufacturerID, &p.ManufacturerName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID con el nombre del fabricante. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	var p entity.Product
	err = sess.Conn().QueryRow(ctx, `
		SELECT p.id, p.name, p.description, p.sku, p.manufacturer_id, m.name AS manufacturer_name
		FROM products p
		LEFT JOIN manufacturers m ON p.manufacturer_id = m.id
		WHERE p.id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.ManufacturerID, &p.ManufacturerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto. Un manufacturer_id inexistente devuelve domain.ErrConstraint.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		INSERT INTO products (id, name, description, sku, manufacturer_id)
		VALUES ($1, $2, $3, $4, $5)`,
		product.ID, product.Name, product.Description, product.SKU, product.ManufacturerID)
	if err != nil {
		return classifyQueryError("insert product", err)
	}
	return nil
}

// Update actualiza un producto. Cero filas afectadas no se trata como error.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		UPDATE products SET name = $2, description = $3, sku = $4, manufacturer_id = $5
		WHERE id = $1`,
		product.ID, product.Name, product.Description, product.SKU, product.ManufacturerID)
	if err != nil {
		return classifyQueryError("update product", err)
	}
	return nil
}

// Delete elimina un producto por ID. Con líneas de pedido o inventario que lo
// referencian devuelve domain.ErrConstraint.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return classifyQueryError("delete product", err)
	}
	return nil
}
