package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre una sesión por operación.
type SupplierRepo struct {
	db *Provider
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(db *Provider) *SupplierRepo {
	return &SupplierRepo{db: db}
}

// List devuelve todos los proveedores ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	rows, err := sess.Conn().Query(ctx, `
		SELECT id, name, contact, address FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, classifyQueryError("list suppliers", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Address); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	var s entity.Supplier
	err = sess.Conn().QueryRow(ctx, `
		SELECT id, name, contact, address FROM suppliers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Contact, &s.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		INSERT INTO suppliers (id, name, contact, address) VALUES ($1, $2, $3, $4)`,
		supplier.ID, supplier.Name, supplier.Contact, supplier.Address)
	if err != nil {
		return classifyQueryError("insert supplier", err)
	}
	return nil
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		UPDATE suppliers SET name = $2, contact = $3, address = $4 WHERE id = $1`,
		supplier.ID, supplier.Name, supplier.Contact, supplier.Address)
	if err != nil {
		return classifyQueryError("update supplier", err)
	}
	return nil
}

// Delete elimina un proveedor por ID. Con fabricantes asociados devuelve domain.ErrConstraint.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return classifyQueryError("delete supplier", err)
	}
	return nil
}
